package model

import "time"

// Standing is one player's final position
type Standing struct {
	Player int
	Name   string
	Totals Totals
}

// Outcome is the result of a finished game
type Outcome struct {
	Winners   []int    // Player indices sharing the top score, ascending
	Names     []string // Names of the winners, same order as Winners
	Score     int      // The top grand total
	Standings []Standing
	// Summary is the history record of the game, set once the game is finished
	Summary *GameSummary
	// Saved reports whether Summary reached the history store
	Saved bool
}

// IsTie returns true if more than one player shares the top score
func (o *Outcome) IsTie() bool {
	return len(o.Winners) > 1
}

// GameSummary is a lightweight record of a completed game
type GameSummary struct {
	ID          GameID
	Players     []string
	FinalScores []int // Grand totals, same order as Players
	Winners     []int // Indices into Players
	TopScore    int
	CompletedAt time.Time
}

// WinnerNames returns the names of the winning players
func (s *GameSummary) WinnerNames() []string {
	names := make([]string, 0, len(s.Winners))
	for _, idx := range s.Winners {
		if idx >= 0 && idx < len(s.Players) {
			names = append(names, s.Players[idx])
		}
	}
	return names
}
