package model

import "time"

// GameID uniquely identifies a game
type GameID string

// Player count limits
const (
	MinPlayers = 1
	MaxPlayers = 4
)

// MaxRerolls is the number of reroll opportunities offered per turn
const MaxRerolls = 2

// TurnPhase represents where the active turn is in its state machine
type TurnPhase string

const (
	PhaseAwaitingRoll     TurnPhase = "awaiting_roll"     // Waiting for the player to request a roll
	PhaseDiceRolled       TurnPhase = "dice_rolled"       // Opening roll is on the table
	PhaseAwaitingReroll   TurnPhase = "awaiting_reroll"   // Offering a reroll (RerollsLeft > 0)
	PhaseAwaitingCategory TurnPhase = "awaiting_category" // Rerolls exhausted or declined
	PhaseScored           TurnPhase = "scored"            // Category recorded, turn over
)

// GameState is the full state of a single game in progress
type GameState struct {
	ID      GameID
	Players []string // Display names in turn order

	// Turn management
	Round         int // 0-indexed, one round per category
	CurrentPlayer int // Index into Players
	Phase         TurnPhase
	Dice          Dice
	RerollsLeft   int // 2, 1 or 0. Declining a reroll drops it straight to 0.

	Cards []*ScoreCard // One per player, same order as Players

	CreatedAt time.Time
}

// NewGameState creates a game at the start of round one with empty score cards
func NewGameState(id GameID, players []string, now time.Time) (*GameState, error) {
	if len(players) < MinPlayers || len(players) > MaxPlayers {
		return nil, ErrInvalidPlayerCount
	}
	names := make([]string, len(players))
	copy(names, players)
	return &GameState{
		ID:        id,
		Players:   names,
		Phase:     PhaseAwaitingRoll,
		Cards:     NewScoreCards(len(players)),
		CreatedAt: now,
	}, nil
}

// TotalRounds returns the number of rounds in a game
func (g *GameState) TotalRounds() int {
	return NumCategories
}

// IsComplete returns true once every player has had a turn in every round
func (g *GameState) IsComplete() bool {
	return g.Round >= g.TotalRounds()
}

// CurrentCard returns the score card of the player whose turn it is
func (g *GameState) CurrentCard() *ScoreCard {
	return g.Cards[g.CurrentPlayer]
}

// CurrentPlayerName returns the display name of the player whose turn it is
func (g *GameState) CurrentPlayerName() string {
	return g.Players[g.CurrentPlayer]
}

// BeginTurn resets the per-turn state. Turns that do not offer rerolls start locked.
func (g *GameState) BeginTurn(rerolls bool) {
	g.Phase = PhaseAwaitingRoll
	g.Dice = Dice{}
	g.RerollsLeft = 0
	if rerolls {
		g.RerollsLeft = MaxRerolls
	}
}

// ConsumeReroll uses up one reroll opportunity
func (g *GameState) ConsumeReroll() {
	if g.RerollsLeft > 0 {
		g.RerollsLeft--
	}
}

// DeclineRerolls locks the reroll phase, skipping every remaining offer this turn
func (g *GameState) DeclineRerolls() {
	g.RerollsLeft = 0
}

// AdvanceTurn moves to the next player, starting a new round after the last player
func (g *GameState) AdvanceTurn() {
	g.CurrentPlayer++
	if g.CurrentPlayer >= len(g.Players) {
		g.CurrentPlayer = 0
		g.Round++
	}
	g.Phase = PhaseAwaitingRoll
}
