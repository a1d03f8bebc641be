package game

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mcoot/yahtzee-go/internal/dependencies/clock"
	"github.com/mcoot/yahtzee-go/internal/dependencies/random"
	"github.com/mcoot/yahtzee-go/internal/model"
	"github.com/mcoot/yahtzee-go/internal/services/dice"
	"github.com/mcoot/yahtzee-go/internal/services/results"
	"github.com/mcoot/yahtzee-go/internal/services/rules"
	"github.com/mcoot/yahtzee-go/internal/storage"
)

const (
	// GameIDAlphabet is the character set for generating game IDs
	GameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// GameIDLength is the length of generated game IDs
	GameIDLength = 12
)

// Engine runs games: rounds, turns, rerolls and scoring
type Engine struct {
	display   Display
	input     Input
	roller    *dice.Roller
	evaluator *results.Evaluator
	storage   storage.Storage
	clock     clock.Clock
	random    random.Random
	logger    *slog.Logger
}

// NewEngine creates a new Engine
func NewEngine(
	display Display,
	input Input,
	roller *dice.Roller,
	evaluator *results.Evaluator,
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		display:   display,
		input:     input,
		roller:    roller,
		evaluator: evaluator,
		storage:   storage,
		clock:     clock,
		random:    random,
		logger:    logger.With(slog.String("component", "game-engine")),
	}
}

// NewGame asks for the players and creates a fresh game
func (e *Engine) NewGame(ctx context.Context) (*model.GameState, error) {
	count, err := e.promptPlayerCount(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, count)
	for i := range names {
		if names[i], err = e.promptPlayerName(ctx, i); err != nil {
			return nil, err
		}
	}

	id := model.GameID(e.random.String(GameIDLength, GameIDAlphabet))
	game, err := model.NewGameState(id, names, e.clock.Now())
	if err != nil {
		return nil, err
	}

	e.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("player_count", len(names)),
	)

	return game, nil
}

func (e *Engine) promptPlayerCount(ctx context.Context) (int, error) {
	for {
		count, err := e.input.PromptPlayerCount(ctx)
		if err != nil {
			return 0, err
		}
		if count >= model.MinPlayers && count <= model.MaxPlayers {
			return count, nil
		}
		e.display.ShowMessage(fmt.Sprintf("Enter a number of players from %d to %d.", model.MinPlayers, model.MaxPlayers))
	}
}

func (e *Engine) promptPlayerName(ctx context.Context, index int) (string, error) {
	for {
		name, err := e.input.PromptPlayerName(ctx, index)
		if err != nil {
			return "", err
		}
		if name = strings.TrimSpace(name); name != "" {
			return name, nil
		}
		e.display.ShowMessage("Player names cannot be blank.")
	}
}

// PlayGame plays every round to completion. Within a round each player takes one turn in order.
func (e *Engine) PlayGame(ctx context.Context, game *model.GameState, src dice.Source) error {
	for !game.IsComplete() {
		if err := e.PlayTurn(ctx, game, src); err != nil {
			return err
		}
		game.AdvanceTurn()
	}
	return nil
}

// PlayTurn runs a single turn for the current player:
// roll, up to two rerolls, choose an open category, score it.
func (e *Engine) PlayTurn(ctx context.Context, game *model.GameState, src dice.Source) error {
	if game.IsComplete() {
		return fmt.Errorf("play turn in round %d: game is already complete", game.Round)
	}

	player := game.CurrentPlayer
	game.BeginTurn(src.OffersRerolls())

	if src.OffersRerolls() {
		e.display.ShowMessage(fmt.Sprintf("%s's turn. Roll the dice.", game.CurrentPlayerName()))
		if err := e.input.WaitForRoll(ctx, player); err != nil {
			return err
		}
	}

	if err := src.Roll(ctx, &game.Dice); err != nil {
		return err
	}
	game.Phase = model.PhaseDiceRolled
	e.display.ShowDice(game.Dice)

	if err := e.offerRerolls(ctx, game); err != nil {
		return err
	}

	category, err := e.chooseCategory(ctx, game)
	if err != nil {
		return err
	}

	return e.scoreTurn(game, category)
}

// offerRerolls gives the player up to RerollsLeft chances to reroll.
// Selecting no dice declines and skips any remaining chance.
func (e *Engine) offerRerolls(ctx context.Context, game *model.GameState) error {
	for game.RerollsLeft > 0 {
		game.Phase = model.PhaseAwaitingReroll
		e.display.ShowMessage("Select the dice you wish to re-roll, or none to keep them.")
		if err := e.input.WaitForRerollSelection(ctx); err != nil {
			return err
		}

		mask := e.rerollMask()
		if !mask.Any() {
			game.DeclineRerolls()
			break
		}

		e.roller.RerollSelected(&game.Dice, mask)
		game.ConsumeReroll()
		e.display.ShowDice(game.Dice)
	}

	game.Phase = model.PhaseAwaitingCategory
	return nil
}

func (e *Engine) rerollMask() model.RerollMask {
	var mask model.RerollMask
	for i := range mask {
		mask[i] = e.display.IsDieMarkedForReroll(i)
	}
	return mask
}

// chooseCategory asks until the player picks a category still open on their card
func (e *Engine) chooseCategory(ctx context.Context, game *model.GameState) (model.Category, error) {
	e.display.ShowMessage("Pick a category to score this turn.")
	card := game.CurrentCard()
	for {
		category, err := e.input.ChooseCategory(ctx)
		if err != nil {
			return 0, err
		}
		if card.IsOpen(category) {
			return category, nil
		}
		e.display.ShowMessage("That is not a valid category. Please pick another.")
	}
}

func (e *Engine) scoreTurn(game *model.GameState, category model.Category) error {
	player := game.CurrentPlayer
	card := game.CurrentCard()

	points, err := rules.ComputeScore(game.Dice, category)
	if err != nil {
		return fmt.Errorf("score %s for player %d: %w", category, player, err)
	}
	if err := card.Record(category, points); err != nil {
		return fmt.Errorf("record %s for player %d: %w", category, player, err)
	}
	game.Phase = model.PhaseScored

	e.display.UpdateCell(player, category, points)
	e.display.UpdateRunningTotal(player, card.RunningTotal)

	e.logger.Debug("turn scored",
		slog.String("game_id", string(game.ID)),
		slog.Int("round", game.Round),
		slog.Int("player", player),
		slog.String("dice", game.Dice.String()),
		slog.String("category", category.Key()),
		slog.Int("points", points),
	)

	return nil
}

// Finish totals the score cards, announces the result and records it in the history.
// A history failure is logged and reported to the players but does not fail the game.
func (e *Engine) Finish(ctx context.Context, game *model.GameState) (*model.Outcome, error) {
	if !game.IsComplete() {
		return nil, model.ErrGameNotComplete
	}

	outcome, err := e.evaluator.Evaluate(game.Players, game.Cards)
	if err != nil {
		return nil, err
	}

	for i, card := range game.Cards {
		e.display.ShowTotals(i, card.Totals)
	}
	e.display.ShowMessage(e.evaluator.Announcement(outcome))

	// The game is over either way; a history failure only costs the record
	outcome.Summary = e.evaluator.Summarize(game.ID, game.Players, outcome, e.clock.Now())
	if err := e.storage.SaveSummary(ctx, outcome.Summary); err != nil {
		e.logger.Error("failed to save game summary",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		e.display.ShowMessage("This game could not be added to the history.")
	} else {
		outcome.Saved = true
	}

	e.logger.Info("game completed",
		slog.String("game_id", string(game.ID)),
		slog.Int("top_score", outcome.Score),
		slog.Bool("tie", outcome.IsTie()),
	)

	return outcome, nil
}

// RunSession plays games back to back until the players decline to play again
func (e *Engine) RunSession(ctx context.Context, src dice.Source) ([]*model.Outcome, error) {
	var outcomes []*model.Outcome
	for {
		game, err := e.NewGame(ctx)
		if err != nil {
			return outcomes, err
		}
		if err := e.PlayGame(ctx, game, src); err != nil {
			return outcomes, err
		}
		outcome, err := e.Finish(ctx, game)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)

		again, err := e.input.PromptYesNo(ctx, "Play again?")
		if err != nil {
			return outcomes, err
		}
		if !again {
			return outcomes, nil
		}
		e.display.ShowMessage("")
	}
}

// Interface for dependency injection
type EngineInterface interface {
	NewGame(ctx context.Context) (*model.GameState, error)
	PlayGame(ctx context.Context, game *model.GameState, src dice.Source) error
	PlayTurn(ctx context.Context, game *model.GameState, src dice.Source) error
	Finish(ctx context.Context, game *model.GameState) (*model.Outcome, error)
	RunSession(ctx context.Context, src dice.Source) ([]*model.Outcome, error)
}

var _ EngineInterface = (*Engine)(nil)
