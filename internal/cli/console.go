package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcoot/yahtzee-go/internal/model"
)

// Console is a line-based terminal Display and Input
type Console struct {
	in    *bufio.Scanner
	out   io.Writer
	names map[int]string
	marks model.RerollMask
}

// NewConsole creates a Console reading player actions from in and writing to out
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:    bufio.NewScanner(in),
		out:   out,
		names: make(map[int]string),
	}
}

func (c *Console) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", model.ErrInputClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) playerName(player int) string {
	if name, ok := c.names[player]; ok {
		return name
	}
	return fmt.Sprintf("Player %d", player+1)
}

// ShowMessage prints a line of game text
func (c *Console) ShowMessage(text string) {
	fmt.Fprintln(c.out, text)
}

// ShowDice prints the current dice
func (c *Console) ShowDice(d model.Dice) {
	fmt.Fprintf(c.out, "Dice: %s\n", d)
}

// UpdateCell reports the points a player scored in a category
func (c *Console) UpdateCell(player int, category model.Category, value int) {
	fmt.Fprintf(c.out, "%s scored %d in %s\n", c.playerName(player), value, category)
}

// UpdateRunningTotal prints a player's total so far
func (c *Console) UpdateRunningTotal(player int, total int) {
	fmt.Fprintf(c.out, "%s's total: %d\n", c.playerName(player), total)
}

// ShowTotals prints a player's final section totals
func (c *Console) ShowTotals(player int, totals model.Totals) {
	fmt.Fprintf(c.out, "%s: upper %d, bonus %d, lower %d, total %d\n",
		c.playerName(player), totals.Upper, totals.Bonus, totals.Lower, totals.Grand)
}

// IsDieMarkedForReroll reports whether the last selection included the die at index
func (c *Console) IsDieMarkedForReroll(index int) bool {
	if index < 0 || index >= model.NumDice {
		return false
	}
	return c.marks[index]
}

// PromptPlayerCount reads a number, asking again until the line parses
func (c *Console) PromptPlayerCount(ctx context.Context) (int, error) {
	for {
		line, err := c.readLine(ctx, fmt.Sprintf("Enter number of players (%d-%d): ", model.MinPlayers, model.MaxPlayers))
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(c.out, "Please enter a number.")
	}
}

// PromptPlayerName reads a name and remembers it for later output
func (c *Console) PromptPlayerName(ctx context.Context, index int) (string, error) {
	line, err := c.readLine(ctx, fmt.Sprintf("Enter name for player %d: ", index+1))
	if err != nil {
		return "", err
	}
	c.names[index] = line
	return line, nil
}

// WaitForRoll waits for the player to press Enter
func (c *Console) WaitForRoll(ctx context.Context, player int) error {
	_, err := c.readLine(ctx, "Press Enter to roll the dice.")
	return err
}

// WaitForRerollSelection reads the die positions to reroll, blank for none
func (c *Console) WaitForRerollSelection(ctx context.Context) error {
	for {
		line, err := c.readLine(ctx, "Dice to re-roll (positions 1-5, blank to keep): ")
		if err != nil {
			return err
		}
		mask, ok := parseRerollSelection(line)
		if ok {
			c.marks = mask
			return nil
		}
		fmt.Fprintln(c.out, "Positions must be numbers from 1 to 5.")
	}
}

// parseRerollSelection reads 1-based die positions separated by spaces or commas
func parseRerollSelection(line string) (model.RerollMask, bool) {
	var mask model.RerollMask
	fields := strings.FieldsFunc(line, func(r rune) bool { return r == ' ' || r == ',' })
	for _, f := range fields {
		pos, err := strconv.Atoi(f)
		if err != nil || pos < 1 || pos > model.NumDice {
			return model.RerollMask{}, false
		}
		mask[pos-1] = true
	}
	return mask, true
}

// ChooseCategory reads a category, returning NoCategory for unknown input
func (c *Console) ChooseCategory(ctx context.Context) (model.Category, error) {
	line, err := c.readLine(ctx, "Category (name or number 1-13): ")
	if err != nil {
		return model.NoCategory, err
	}
	category, err := model.ParseCategory(line)
	if err != nil {
		fmt.Fprintln(c.out, categoryHelp())
		return model.NoCategory, nil
	}
	return category, nil
}

func categoryHelp() string {
	parts := make([]string, 0, model.NumCategories)
	for _, category := range model.AllCategories() {
		parts = append(parts, fmt.Sprintf("%d %s", int(category)+1, category.Key()))
	}
	return "Categories: " + strings.Join(parts, ", ")
}

// PromptYesNo asks until the answer is yes or no
func (c *Console) PromptYesNo(ctx context.Context, question string) (bool, error) {
	for {
		line, err := c.readLine(ctx, question+" (y/n): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// PromptDieValue reads a die value; non-numeric input is returned as 0
func (c *Console) PromptDieValue(ctx context.Context, index int) (int, error) {
	line, err := c.readLine(ctx, fmt.Sprintf("Enter value for die %d: ", index+1))
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		// Out of range, the dice source asks again
		return 0, nil
	}
	return v, nil
}
