package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/yahtzee-go/internal/model"
)

func newPlayCmd(opts *options) *cobra.Command {
	var (
		manualDice bool
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one or more games",
		Long: `Play games of Yahtzee for one to four players until you decline to play again.

With --manual-dice every die value is typed in instead of rolled, and rerolls
are skipped. With --seed the rolls are reproducible.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			logger := opts.newLogger(cmd.ErrOrStderr()).With(slog.String("command", "play"))

			app, err := opts.newApp(logger, seed)
			if err != nil {
				return err
			}
			defer closeApp(app, logger)

			console := NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
			engine := app.NewEngine(console, console)
			src := app.DiceSource(manualDice, console)

			outcomes, err := engine.RunSession(ctx, src)
			if errors.Is(err, model.ErrInputClosed) {
				logger.Info("input closed, ending session", slog.Int("games_completed", len(outcomes)))
				err = nil
			}
			if err != nil {
				return err
			}

			// Report this session's games from their own records, newest first like history
			summaries := make([]*model.GameSummary, 0, len(outcomes))
			for i := len(outcomes) - 1; i >= 0; i-- {
				summaries = append(summaries, outcomes[i].Summary)
			}

			out := NewOutput(opts.cfg.Output, cmd.OutOrStdout())
			if opts.cfg.Output == "json" {
				out.Print(newHistoryResult(summaries))
				return nil
			}
			out.PrintMessage(fmt.Sprintf("Games played: %d", len(summaries)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&manualDice, "manual-dice", opts.cfg.ManualDice, "Type in die values instead of rolling (env: YAHTZEE_MANUAL_DICE)")
	cmd.Flags().Uint64Var(&seed, "seed", opts.cfg.Seed, "Seed for reproducible rolls, 0 for random (env: YAHTZEE_SEED)")

	return cmd
}
