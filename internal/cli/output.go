package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mcoot/yahtzee-go/internal/model"
	"github.com/mcoot/yahtzee-go/internal/services/rules"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case ScoreResult:
		o.printScoreResult(v)
	case GameRecord:
		o.printGameRecord(v)
	case HistoryResult:
		o.printHistoryResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// CategoryScore is the points one category would give for a roll
type CategoryScore struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Eligible bool   `json:"eligible"`
	Points   int    `json:"points"`
}

// ScoreResult is the outcome of scoring a single roll
type ScoreResult struct {
	Dice   []int           `json:"dice"`
	Scores []CategoryScore `json:"scores"`
}

// PlayerScore is one player's final total
type PlayerScore struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Winner bool   `json:"winner"`
}

// GameRecord is a completed game from the history
type GameRecord struct {
	ID          string        `json:"id"`
	CompletedAt time.Time     `json:"completed_at"`
	TopScore    int           `json:"top_score"`
	Players     []PlayerScore `json:"players"`
}

// HistoryResult is a list of completed games
type HistoryResult struct {
	Games []GameRecord `json:"games"`
}

func newScoreResult(d model.Dice, evals []rules.Evaluation) ScoreResult {
	result := ScoreResult{
		Dice:   d[:],
		Scores: make([]CategoryScore, 0, len(evals)),
	}
	for _, ev := range evals {
		result.Scores = append(result.Scores, CategoryScore{
			Category: ev.Category.Key(),
			Name:     ev.Category.String(),
			Eligible: ev.Eligible,
			Points:   ev.Points,
		})
	}
	return result
}

func newGameRecord(s *model.GameSummary) GameRecord {
	winners := make(map[int]bool, len(s.Winners))
	for _, idx := range s.Winners {
		winners[idx] = true
	}

	record := GameRecord{
		ID:          string(s.ID),
		CompletedAt: s.CompletedAt,
		TopScore:    s.TopScore,
		Players:     make([]PlayerScore, 0, len(s.Players)),
	}
	for i, name := range s.Players {
		score := 0
		if i < len(s.FinalScores) {
			score = s.FinalScores[i]
		}
		record.Players = append(record.Players, PlayerScore{Name: name, Score: score, Winner: winners[i]})
	}
	return record
}

func newHistoryResult(summaries []*model.GameSummary) HistoryResult {
	result := HistoryResult{Games: make([]GameRecord, 0, len(summaries))}
	for _, s := range summaries {
		result.Games = append(result.Games, newGameRecord(s))
	}
	return result
}

func (o *Output) printScoreResult(r ScoreResult) {
	dice := make([]string, len(r.Dice))
	for i, v := range r.Dice {
		dice[i] = fmt.Sprint(v)
	}
	fmt.Fprintf(o.w, "Dice: %s\n", strings.Join(dice, " "))
	for _, s := range r.Scores {
		marker := " "
		if s.Eligible {
			marker = "*"
		}
		fmt.Fprintf(o.w, "%s %-16s %3d\n", marker, s.Name, s.Points)
	}
}

func (o *Output) printGameRecord(r GameRecord) {
	fmt.Fprintf(o.w, "Game %s (%s)\n", r.ID, r.CompletedAt.Format(time.RFC3339))
	for _, p := range r.Players {
		marker := " "
		if p.Winner {
			marker = "*"
		}
		fmt.Fprintf(o.w, "  %s %-20s %4d\n", marker, p.Name, p.Score)
	}
}

func (o *Output) printHistoryResult(r HistoryResult) {
	if len(r.Games) == 0 {
		fmt.Fprintln(o.w, "No completed games.")
		return
	}
	for _, g := range r.Games {
		o.printGameRecord(g)
	}
}
