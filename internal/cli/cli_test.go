package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/yahtzee-go/internal/model"
	redisstorage "github.com/mcoot/yahtzee-go/internal/storage/redis"
)

type CLISuite struct {
	suite.Suite
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	// Run against defaults regardless of the developer's environment
	for _, key := range []string{
		"YAHTZEE_STORAGE", "YAHTZEE_REDIS_URL", "YAHTZEE_LOG_LEVEL", "YAHTZEE_MANUAL_DICE",
		"YAHTZEE_SEED", "YAHTZEE_HISTORY_LIMIT", "YAHTZEE_OUTPUT",
	} {
		s.T().Setenv(key, "")
		s.Require().NoError(os.Unsetenv(key))
	}
}

// run executes the CLI in-process and returns stdout, stderr and the error
func (s *CLISuite) run(stdin string, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// allSixesScript enters 6 6 6 6 6 every turn for a single player, scoring the categories in order
func allSixesScript(name string) string {
	var b strings.Builder
	b.WriteString("1\n" + name + "\n")
	for _, c := range model.AllCategories() {
		b.WriteString(strings.Repeat("6\n", model.NumDice))
		b.WriteString(c.Key() + "\n")
	}
	return b.String()
}

// keepFirstRollScript rolls, declines rerolls and scores the categories in order
func keepFirstRollScript(name string) string {
	var b strings.Builder
	b.WriteString("1\n" + name + "\n")
	for _, c := range model.AllCategories() {
		b.WriteString("\n\n" + c.Key() + "\n")
	}
	return b.String()
}

func (s *CLISuite) TestPlayManualDiceGame() {
	stdout, _, err := s.run(allSixesScript("Ann")+"n\n", "play", "--manual-dice")
	s.Require().NoError(err)

	s.Contains(stdout, "Ann: upper 30, bonus 0, lower 140, total 170")
	s.Contains(stdout, "Congratulations, Ann! You won with 170 points.")
	s.Contains(stdout, "Games played: 1")
	s.NotContains(stdout, "Roll the dice.")
}

func (s *CLISuite) TestPlayRepromptsInvalidInput() {
	script := "0\nfive\n1\n\nAnn\n"
	rest := strings.TrimPrefix(allSixesScript("Ann"), "1\nAnn\n")
	// An unknown category then a die out of range on the first turn
	rest = strings.Replace(rest, "6\n", "9\n6\n", 1)
	rest = strings.Replace(rest, "ones\n", "bogus\nones\n", 1)

	stdout, _, err := s.run(script+rest+"n\n", "play", "--manual-dice")
	s.Require().NoError(err)

	s.Contains(stdout, "Enter a number of players from 1 to 4.")
	s.Contains(stdout, "Please enter a number.")
	s.Contains(stdout, "Player names cannot be blank.")
	s.Contains(stdout, "Categories: 1 ones")
	s.Contains(stdout, "That is not a valid category. Please pick another.")
	s.Contains(stdout, "Congratulations, Ann! You won with 170 points.")
}

func (s *CLISuite) TestPlayAgainRunsSecondGame() {
	script := allSixesScript("Ann") + "y\n" + allSixesScript("Bea") + "no\n"

	stdout, _, err := s.run(script, "play", "--manual-dice")
	s.Require().NoError(err)

	s.Contains(stdout, "Congratulations, Ann! You won with 170 points.")
	s.Contains(stdout, "Congratulations, Bea! You won with 170 points.")
	s.Contains(stdout, "Games played: 2")
}

func (s *CLISuite) TestPlaySeededGameIsReproducible() {
	script := keepFirstRollScript("Ann") + "n\n"

	first, _, err := s.run(script, "play", "--seed", "42")
	s.Require().NoError(err)
	second, _, err := s.run(script, "play", "--seed", "42")
	s.Require().NoError(err)

	s.Equal(first, second)
	s.Contains(first, "Ann's turn. Roll the dice.")
	s.Contains(first, "Congratulations, Ann! You won with")
}

func (s *CLISuite) TestPlayEndsQuietlyWhenInputCloses() {
	stdout, _, err := s.run("1\nAnn\n", "play", "--manual-dice")
	s.Require().NoError(err)
	s.Contains(stdout, "Games played: 0")
}

func (s *CLISuite) TestPlayJSONListsCompletedGames() {
	stdout, _, err := s.run(allSixesScript("Ann")+"n\n", "play", "--manual-dice", "-o", "json")
	s.Require().NoError(err)

	// The summary is the last JSON document after the interactive text
	idx := strings.Index(stdout, "{\n")
	s.Require().GreaterOrEqual(idx, 0)
	var result HistoryResult
	s.Require().NoError(json.Unmarshal([]byte(stdout[idx:]), &result))
	s.Require().Len(result.Games, 1)
	s.Equal(170, result.Games[0].TopScore)
	s.Equal([]PlayerScore{{Name: "Ann", Score: 170, Winner: true}}, result.Games[0].Players)
}

func (s *CLISuite) TestScoreText() {
	stdout, _, err := s.run("", "score", "3", "3", "3", "2", "2")
	s.Require().NoError(err)

	s.Contains(stdout, "Dice: 3 3 3 2 2")
	s.Contains(stdout, "* Full House        25")
	s.Contains(stdout, "* Three of a Kind   13")
	s.Contains(stdout, "  Yahtzee            0")
}

func (s *CLISuite) TestScoreJSONSingleCategory() {
	stdout, _, err := s.run("", "score", "1", "2", "3", "4", "6", "--category", "small_straight", "-o", "json")
	s.Require().NoError(err)

	var result ScoreResult
	s.Require().NoError(json.Unmarshal([]byte(stdout), &result))
	s.Equal([]int{1, 2, 3, 4, 6}, result.Dice)
	s.Equal([]CategoryScore{{Category: "small_straight", Name: "Small Straight", Eligible: true, Points: 30}}, result.Scores)
}

func (s *CLISuite) TestScoreRejectsBadDice() {
	_, _, err := s.run("", "score", "1", "2", "3", "4", "7")
	s.ErrorIs(err, model.ErrInvalidDieValue)

	_, _, err = s.run("", "score", "1", "2", "x", "4", "5")
	s.ErrorIs(err, model.ErrInvalidDieValue)

	_, _, err = s.run("", "score", "1", "2", "3")
	s.Error(err)
}

func (s *CLISuite) TestScoreRejectsUnknownCategory() {
	_, _, err := s.run("", "score", "1", "2", "3", "4", "5", "--category", "pair")
	s.ErrorIs(err, model.ErrInvalidCategory)
}

func (s *CLISuite) TestHistoryEmpty() {
	stdout, _, err := s.run("", "history")
	s.Require().NoError(err)
	s.Contains(stdout, "No completed games.")
}

func (s *CLISuite) TestHistoryShowUnknownGame() {
	_, _, err := s.run("", "history", "show", "NOPE")
	s.ErrorIs(err, model.ErrSummaryNotFound)
}

func (s *CLISuite) TestHistoryPersistsInRedis() {
	mini := miniredis.RunT(s.T())
	url := "redis://" + mini.Addr()

	_, _, err := s.run(allSixesScript("Ann")+"n\n", "play", "--manual-dice", "--storage", "redis", "--redis-url", url)
	s.Require().NoError(err)

	stdout, _, err := s.run("", "history", "--storage", "redis", "--redis-url", url, "-o", "json")
	s.Require().NoError(err)

	var result HistoryResult
	s.Require().NoError(json.Unmarshal([]byte(stdout), &result))
	s.Require().Len(result.Games, 1)
	s.Equal("Ann", result.Games[0].Players[0].Name)

	stdout, _, err = s.run("", "history", "show", result.Games[0].ID, "--storage", "redis", "--redis-url", url)
	s.Require().NoError(err)
	s.Contains(stdout, "Game "+result.Games[0].ID)
	s.Contains(stdout, "* Ann")
}

func (s *CLISuite) TestPlayReportsOnlyThisSessionsGames() {
	mini := miniredis.RunT(s.T())
	url := "redis://" + mini.Addr()

	// Another session's game, completed later than this one will be
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	other := redisstorage.NewWithClient(client, redisstorage.DefaultConfig())
	s.Require().NoError(other.SaveSummary(context.Background(), &model.GameSummary{
		ID:          "OTHERSESSION",
		Players:     []string{"Zed"},
		FinalScores: []int{5},
		Winners:     []int{0},
		TopScore:    5,
		CompletedAt: time.Now().Add(time.Hour),
	}))
	s.Require().NoError(other.Close())

	stdout, _, err := s.run(allSixesScript("Ann")+"n\n", "play", "--manual-dice", "--storage", "redis", "--redis-url", url, "-o", "json")
	s.Require().NoError(err)

	idx := strings.Index(stdout, "{\n")
	s.Require().GreaterOrEqual(idx, 0)
	var result HistoryResult
	s.Require().NoError(json.Unmarshal([]byte(stdout[idx:]), &result))
	s.Require().Len(result.Games, 1)
	s.NotEqual("OTHERSESSION", result.Games[0].ID)
	s.Equal(170, result.Games[0].TopScore)
	s.Equal([]PlayerScore{{Name: "Ann", Score: 170, Winner: true}}, result.Games[0].Players)

	// Both games are in the shared history
	stdout, _, err = s.run("", "history", "--storage", "redis", "--redis-url", url, "-o", "json")
	s.Require().NoError(err)
	var history HistoryResult
	s.Require().NoError(json.Unmarshal([]byte(stdout), &history))
	s.Require().Len(history.Games, 2)
	s.Equal("OTHERSESSION", history.Games[0].ID)
}

func (s *CLISuite) TestInvalidStorageFromEnvironment() {
	s.T().Setenv("YAHTZEE_STORAGE", "sqlite")
	_, _, err := s.run("", "history")
	s.ErrorContains(err, "invalid storage type")
}

func (s *CLISuite) TestInvalidOutputFlag() {
	_, _, err := s.run("", "score", "1", "1", "1", "1", "1", "-o", "yaml")
	s.ErrorContains(err, "invalid output format")
}

func (s *CLISuite) TestVerboseLogsToStderr() {
	_, stderr, err := s.run(allSixesScript("Ann")+"n\n", "play", "--manual-dice", "-v")
	s.Require().NoError(err)
	s.Contains(stderr, `"msg":"turn scored"`)
	s.Contains(stderr, `"msg":"game completed"`)
}

func (s *CLISuite) TestParseRerollSelection() {
	mask, ok := parseRerollSelection("1, 3 5")
	s.True(ok)
	s.Equal(model.MaskOf(0, 2, 4), mask)

	mask, ok = parseRerollSelection("")
	s.True(ok)
	s.False(mask.Any())

	_, ok = parseRerollSelection("6")
	s.False(ok)
	_, ok = parseRerollSelection("a")
	s.False(ok)
}
