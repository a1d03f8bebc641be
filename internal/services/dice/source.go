package dice

import (
	"context"
	"log/slog"

	"github.com/mcoot/yahtzee-go/internal/model"
)

// Source supplies the dice a turn opens with
type Source interface {
	// Roll fills in the opening dice for a turn
	Roll(ctx context.Context, d *model.Dice) error
	// OffersRerolls reports whether turns using this source get a roll request and reroll offers
	OffersRerolls() bool
}

// RandomSource rolls physical dice. This is normal play.
type RandomSource struct {
	roller *Roller
}

// NewRandomSource creates a new RandomSource
func NewRandomSource(roller *Roller) *RandomSource {
	return &RandomSource{roller: roller}
}

// Roll rolls all five dice
func (s *RandomSource) Roll(ctx context.Context, d *model.Dice) error {
	s.roller.RollAll(d)
	return nil
}

// OffersRerolls returns true
func (s *RandomSource) OffersRerolls() bool {
	return true
}

// DiePrompter asks for a single die value
type DiePrompter interface {
	PromptDieValue(ctx context.Context, index int) (int, error)
}

// ManualSource takes die values typed in by the player instead of rolling.
// It is a diagnostic mode for exercising specific scoring patterns.
type ManualSource struct {
	prompter DiePrompter
	logger   *slog.Logger
}

// NewManualSource creates a new ManualSource
func NewManualSource(prompter DiePrompter, logger *slog.Logger) *ManualSource {
	return &ManualSource{
		prompter: prompter,
		logger:   logger.With(slog.String("component", "manual-dice")),
	}
}

// Roll prompts for each die in turn, asking again for any value outside [1, 6]
func (s *ManualSource) Roll(ctx context.Context, d *model.Dice) error {
	for i := range d {
		for {
			v, err := s.prompter.PromptDieValue(ctx, i)
			if err != nil {
				return err
			}
			if v >= model.MinFace && v <= model.MaxFace {
				d[i] = v
				break
			}
			s.logger.Debug("rejected die value",
				slog.Int("index", i),
				slog.Int("value", v),
			)
		}
	}
	return nil
}

// OffersRerolls returns false, manual dice are scored as entered
func (s *ManualSource) OffersRerolls() bool {
	return false
}

var (
	_ Source = (*RandomSource)(nil)
	_ Source = (*ManualSource)(nil)
)
