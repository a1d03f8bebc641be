package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/yahtzee-go/internal/model"
	"github.com/mcoot/yahtzee-go/internal/services/rules"
)

func newScoreCmd(opts *options) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "score <d1> <d2> <d3> <d4> <d5>",
		Short: "Score a roll against every category",
		Long: `Score five dice against every category, or a single category with --category.

Eligible categories are marked with an asterisk.`,
		Args: cobra.ExactArgs(model.NumDice),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDice(args)
			if err != nil {
				return err
			}

			evals := rules.EvaluateAll(d)
			if category != "" {
				c, err := model.ParseCategory(category)
				if err != nil {
					return fmt.Errorf("%w: %q", err, category)
				}
				evals = []rules.Evaluation{evals[c]}
			}

			NewOutput(opts.cfg.Output, cmd.OutOrStdout()).Print(newScoreResult(d, evals))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only score this category (key, name or number)")

	return cmd
}

func parseDice(args []string) (model.Dice, error) {
	var d model.Dice
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return d, fmt.Errorf("%w: %q", model.ErrInvalidDieValue, arg)
		}
		d[i] = v
	}
	if err := d.Validate(); err != nil {
		return d, err
	}
	return d, nil
}
