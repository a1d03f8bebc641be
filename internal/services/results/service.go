package results

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mcoot/yahtzee-go/internal/model"
)

// Evaluator turns finished score cards into final standings
type Evaluator struct{}

// New creates a new Evaluator
func New() *Evaluator {
	return &Evaluator{}
}

// Evaluate finalizes every card and finds the player or players with the top grand total.
// Winners are listed in player index order.
func (e *Evaluator) Evaluate(names []string, cards []*model.ScoreCard) (*model.Outcome, error) {
	if len(cards) == 0 {
		return nil, model.ErrNoPlayers
	}
	if len(names) != len(cards) {
		return nil, fmt.Errorf("%d names for %d score cards: %w", len(names), len(cards), model.ErrInvalidPlayerCount)
	}

	outcome := &model.Outcome{
		Standings: make([]model.Standing, 0, len(cards)),
	}

	// Every player is compared against the running maximum, so ties need not be adjacent
	for i, card := range cards {
		totals := card.FinalizeTotals()
		outcome.Standings = append(outcome.Standings, model.Standing{
			Player: i,
			Name:   names[i],
			Totals: totals,
		})

		switch {
		case i == 0 || totals.Grand > outcome.Score:
			outcome.Score = totals.Grand
			outcome.Winners = []int{i}
		case totals.Grand == outcome.Score:
			outcome.Winners = append(outcome.Winners, i)
		}
	}

	for _, idx := range outcome.Winners {
		outcome.Names = append(outcome.Names, names[idx])
	}

	// Standings by score descending, ties keep player order
	sort.SliceStable(outcome.Standings, func(i, j int) bool {
		return outcome.Standings[i].Totals.Grand > outcome.Standings[j].Totals.Grand
	})

	return outcome, nil
}

// Summarize builds the history record for a completed game
func (e *Evaluator) Summarize(id model.GameID, players []string, outcome *model.Outcome, completedAt time.Time) *model.GameSummary {
	scores := make([]int, len(players))
	for _, st := range outcome.Standings {
		if st.Player >= 0 && st.Player < len(scores) {
			scores[st.Player] = st.Totals.Grand
		}
	}

	names := make([]string, len(players))
	copy(names, players)
	winners := make([]int, len(outcome.Winners))
	copy(winners, outcome.Winners)

	return &model.GameSummary{
		ID:          id,
		Players:     names,
		FinalScores: scores,
		Winners:     winners,
		TopScore:    outcome.Score,
		CompletedAt: completedAt,
	}
}

// Announcement returns the end of game message congratulating the winner or naming the tied players
func (e *Evaluator) Announcement(outcome *model.Outcome) string {
	if !outcome.IsTie() {
		return fmt.Sprintf("Congratulations, %s! You won with %d points.", outcome.Names[0], outcome.Score)
	}
	return fmt.Sprintf("There was a tie between %s! They each had a score of %d.",
		strings.Join(outcome.Names, " and "), outcome.Score)
}

// Interface for dependency injection
type EvaluatorInterface interface {
	Evaluate(names []string, cards []*model.ScoreCard) (*model.Outcome, error)
	Summarize(id model.GameID, players []string, outcome *model.Outcome, completedAt time.Time) *model.GameSummary
	Announcement(outcome *model.Outcome) string
}

var _ EvaluatorInterface = (*Evaluator)(nil)
