package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := newOptions()

	rootCmd := &cobra.Command{
		Use:   "yahtzee",
		Short: "Play Yahtzee in the terminal",
		Long: `yahtzee runs games of Yahtzee for one to four players sharing a terminal.

It can also score a single roll against every category and list the results
of previously completed games.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.validate()
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.cfg.StorageType, "storage", opts.cfg.StorageType, "History storage: memory, redis (env: YAHTZEE_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&opts.cfg.RedisURL, "redis-url", opts.cfg.RedisURL, "Redis URL (env: YAHTZEE_REDIS_URL)")
	rootCmd.PersistentFlags().StringVarP(&opts.cfg.Output, "output", "o", opts.cfg.Output, "Output format: text, json (env: YAHTZEE_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose logging")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd(opts))
	rootCmd.AddCommand(newHistoryCmd(opts))
	rootCmd.AddCommand(newScoreCmd(opts))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// commandContext returns the command's context, falling back to a background one
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
