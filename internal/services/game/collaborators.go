package game

import (
	"context"

	"github.com/mcoot/yahtzee-go/internal/model"
)

// Display shows game progress to the players
type Display interface {
	ShowMessage(text string)
	ShowDice(d model.Dice)
	UpdateCell(player int, category model.Category, value int)
	UpdateRunningTotal(player int, total int)
	ShowTotals(player int, totals model.Totals)
	// IsDieMarkedForReroll reports the player's reroll marks once a selection is made
	IsDieMarkedForReroll(index int) bool
}

// Input blocks until the players act. Implementations return an error only when
// input can no longer be read; invalid choices are returned as-is and rejected by the engine.
type Input interface {
	PromptPlayerCount(ctx context.Context) (int, error)
	PromptPlayerName(ctx context.Context, index int) (string, error)
	WaitForRoll(ctx context.Context, player int) error
	// WaitForRerollSelection returns once Display's per-die marks are final
	WaitForRerollSelection(ctx context.Context) error
	ChooseCategory(ctx context.Context) (model.Category, error)
	PromptYesNo(ctx context.Context, question string) (bool, error)
}
