package mocks

import (
	"context"

	"github.com/mcoot/yahtzee-go/internal/model"
)

// CellUpdate records a single UpdateCell call
type CellUpdate struct {
	Player   int
	Category model.Category
	Value    int
}

// MockConsole is a scripted Display and Input for driving the game engine in tests.
// Every prompt pops the next value from its queue and returns ErrInputClosed once
// the queue is empty, so a test that under-scripts fails instead of hanging.
type MockConsole struct {
	// Input queues
	PlayerCounts []int
	Names        []string
	Selections   []model.RerollMask
	Categories   []model.Category
	Answers      []bool
	DieValues    []int

	// Recorded output
	Messages      []string
	DiceShown     []model.Dice
	Cells         []CellUpdate
	RunningTotals map[int]int
	FinalTotals   map[int]model.Totals
	RollRequests  []int

	marks model.RerollMask
}

// NewMockConsole creates an empty MockConsole
func NewMockConsole() *MockConsole {
	return &MockConsole{
		RunningTotals: make(map[int]int),
		FinalTotals:   make(map[int]model.Totals),
	}
}

func pop[T any](queue *[]T) (T, error) {
	var zero T
	if len(*queue) == 0 {
		return zero, model.ErrInputClosed
	}
	v := (*queue)[0]
	*queue = (*queue)[1:]
	return v, nil
}

// ShowMessage records the message
func (c *MockConsole) ShowMessage(text string) {
	c.Messages = append(c.Messages, text)
}

// ShowDice records the dice
func (c *MockConsole) ShowDice(d model.Dice) {
	c.DiceShown = append(c.DiceShown, d)
}

// UpdateCell records the cell update
func (c *MockConsole) UpdateCell(player int, category model.Category, value int) {
	c.Cells = append(c.Cells, CellUpdate{Player: player, Category: category, Value: value})
}

// UpdateRunningTotal records the player's latest total
func (c *MockConsole) UpdateRunningTotal(player int, total int) {
	c.RunningTotals[player] = total
}

// ShowTotals records the player's final totals
func (c *MockConsole) ShowTotals(player int, totals model.Totals) {
	c.FinalTotals[player] = totals
}

// IsDieMarkedForReroll reads the mask popped by the last WaitForRerollSelection
func (c *MockConsole) IsDieMarkedForReroll(index int) bool {
	if index < 0 || index >= model.NumDice {
		return false
	}
	return c.marks[index]
}

// PromptPlayerCount pops the next queued player count
func (c *MockConsole) PromptPlayerCount(ctx context.Context) (int, error) {
	return pop(&c.PlayerCounts)
}

// PromptPlayerName pops the next queued name
func (c *MockConsole) PromptPlayerName(ctx context.Context, index int) (string, error) {
	return pop(&c.Names)
}

// WaitForRoll records the roll request
func (c *MockConsole) WaitForRoll(ctx context.Context, player int) error {
	c.RollRequests = append(c.RollRequests, player)
	return nil
}

// WaitForRerollSelection pops the next queued reroll mask
func (c *MockConsole) WaitForRerollSelection(ctx context.Context) error {
	mask, err := pop(&c.Selections)
	if err != nil {
		return err
	}
	c.marks = mask
	return nil
}

// ChooseCategory pops the next queued category
func (c *MockConsole) ChooseCategory(ctx context.Context) (model.Category, error) {
	return pop(&c.Categories)
}

// PromptYesNo pops the next queued answer
func (c *MockConsole) PromptYesNo(ctx context.Context, question string) (bool, error) {
	return pop(&c.Answers)
}

// PromptDieValue pops the next queued die value
func (c *MockConsole) PromptDieValue(ctx context.Context, index int) (int, error) {
	return pop(&c.DieValues)
}

// QueueTurn scripts one turn that declines every reroll and scores the given category
func (c *MockConsole) QueueTurn(category model.Category) {
	c.Selections = append(c.Selections, model.RerollMask{})
	c.Categories = append(c.Categories, category)
}

// LastMessage returns the most recent message, or empty string if none
func (c *MockConsole) LastMessage() string {
	if len(c.Messages) == 0 {
		return ""
	}
	return c.Messages[len(c.Messages)-1]
}
