package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/yahtzee-go/internal/model"
)

func newHistoryCmd(opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List completed games, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("limit must not be negative")
			}
			ctx := commandContext(cmd)
			logger := opts.newLogger(cmd.ErrOrStderr()).With(slog.String("command", "history"))

			app, err := opts.newApp(logger, 0)
			if err != nil {
				return err
			}
			defer closeApp(app, logger)

			summaries, err := app.Storage.ListSummaries(ctx, limit)
			if err != nil {
				return fmt.Errorf("listing completed games: %w", err)
			}
			NewOutput(opts.cfg.Output, cmd.OutOrStdout()).Print(newHistoryResult(summaries))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", opts.cfg.HistoryLimit, "Maximum games to list, 0 for all (env: YAHTZEE_HISTORY_LIMIT)")

	cmd.AddCommand(newHistoryShowCmd(opts))

	return cmd
}

func newHistoryShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <game-id>",
		Short: "Show one completed game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			logger := opts.newLogger(cmd.ErrOrStderr()).With(slog.String("command", "history show"))

			app, err := opts.newApp(logger, 0)
			if err != nil {
				return err
			}
			defer closeApp(app, logger)

			summary, err := app.Storage.GetSummary(ctx, model.GameID(args[0]))
			if err != nil {
				return fmt.Errorf("game %s: %w", args[0], err)
			}
			NewOutput(opts.cfg.Output, cmd.OutOrStdout()).Print(newGameRecord(summary))
			return nil
		},
	}
}
