package storage

import (
	"context"

	"github.com/mcoot/yahtzee-go/internal/model"
)

// Storage defines the interface for the results history.
// Only completed games are stored; a game in progress lives in memory only.
type Storage interface {
	// SaveSummary records a completed game. Saving an existing ID replaces it
	// and counts as its most recent save.
	SaveSummary(ctx context.Context, summary *model.GameSummary) error
	// GetSummary returns a single completed game
	GetSummary(ctx context.Context, id model.GameID) (*model.GameSummary, error)
	// ListSummaries returns up to limit completed games, most recent first.
	// Completion times are compared to the millisecond; games completed in the
	// same millisecond list the most recently saved first.
	// A limit of zero or less returns every stored game.
	ListSummaries(ctx context.Context, limit int) ([]*model.GameSummary, error)
	// DeleteSummary removes a completed game from the history
	DeleteSummary(ctx context.Context, id model.GameID) error
}
