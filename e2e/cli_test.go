package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	env        []string
}

func newCLIRunner(t *testing.T) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "yahtzee-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/yahtzee")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{binaryPath: binaryPath}
}

func (r *cliRunner) withEnv(env ...string) *cliRunner {
	return &cliRunner{binaryPath: r.binaryPath, env: append(append([]string{}, r.env...), env...)}
}

func (r *cliRunner) run(stdin string, args ...string) (string, error) {
	cmd := exec.Command(r.binaryPath, args...)
	cmd.Env = append(os.Environ(), r.env...)
	cmd.Stdin = strings.NewReader(stdin)
	output, err := cmd.Output()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

var categoryKeys = []string{
	"ones", "twos", "threes", "fours", "fives", "sixes",
	"three_of_a_kind", "four_of_a_kind", "full_house",
	"small_straight", "large_straight", "yahtzee", "chance",
}

// twoPlayerScript enters fixed dice for two players: Ann always rolls 5 5 5 5 5 and Bob 1 2 3 4 5
func twoPlayerScript() string {
	var b strings.Builder
	b.WriteString("2\nAnn\nBob\n")
	for _, key := range categoryKeys {
		b.WriteString("5\n5\n5\n5\n5\n" + key + "\n")
		b.WriteString("1\n2\n3\n4\n5\n" + key + "\n")
	}
	b.WriteString("n\n")
	return b.String()
}

func TestCLIEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	mini := miniredis.RunT(t)
	runner := newCLIRunner(t).withEnv(
		"YAHTZEE_STORAGE=redis",
		"YAHTZEE_REDIS_URL=redis://"+mini.Addr(),
	)

	t.Run("score a roll", func(t *testing.T) {
		output, err := runner.run("", "score", "2", "3", "4", "5", "6", "-o", "json")
		require.NoError(t, err, "output: %s", output)

		var result struct {
			Dice   []int `json:"dice"`
			Scores []struct {
				Category string `json:"category"`
				Points   int    `json:"points"`
			} `json:"scores"`
		}
		require.NoError(t, json.Unmarshal([]byte(output), &result))
		require.Len(t, result.Scores, 13)
		assert.Equal(t, "large_straight", result.Scores[10].Category)
		assert.Equal(t, 40, result.Scores[10].Points)
		assert.Equal(t, 30, result.Scores[9].Points)
	})

	t.Run("play a manual two player game", func(t *testing.T) {
		output, err := runner.run(twoPlayerScript(), "play", "--manual-dice")
		require.NoError(t, err, "output: %s", output)

		// Ann: fives 25, 3k 25, 4k 25, yahtzee 50, chance 25
		// Bob: ones..fives 15, small 30, large 40, chance 15
		assert.Contains(t, output, "Ann: upper 25, bonus 0, lower 125, total 150")
		assert.Contains(t, output, "Bob: upper 15, bonus 0, lower 85, total 100")
		assert.Contains(t, output, "Congratulations, Ann! You won with 150 points.")
	})

	t.Run("history lists the game", func(t *testing.T) {
		output, err := runner.run("", "history", "-o", "json")
		require.NoError(t, err, "output: %s", output)

		var result struct {
			Games []struct {
				ID       string `json:"id"`
				TopScore int    `json:"top_score"`
			} `json:"games"`
		}
		require.NoError(t, json.Unmarshal([]byte(output), &result))
		require.Len(t, result.Games, 1)
		assert.Equal(t, 150, result.Games[0].TopScore)

		output, err = runner.run("", "history", "show", result.Games[0].ID)
		require.NoError(t, err, "output: %s", output)
		assert.Contains(t, output, "* Ann")
		assert.Contains(t, output, "Bob")
	})

	t.Run("bad arguments fail", func(t *testing.T) {
		_, err := runner.run("", "score", "1", "2", "3", "4", "9")
		assert.Error(t, err)

		_, err = runner.withEnv("YAHTZEE_STORAGE=sqlite").run("", "history")
		assert.Error(t, err)
	})
}
