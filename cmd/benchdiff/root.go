package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "benchdiff",
		Short: "benchdiff - compare two sets of benchmark results",
		Long: `benchdiff compares a baseline set of benchmark results against an actual set.

Every test present in both runs is classified with a two-sample t-test as
GOOD, BAD, SAME, SAME?, FLAKY or N/A, and the results are written as a report.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	verbose := cmd.PersistentFlags().BoolP("verbose", "v", false, "Log every skipped file and loaded directory (same as --debug)")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if *debugLogging || *verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(newLogger(cmd, level))
	}

	cmd.AddCommand(newCompareCommand())
	cmd.AddCommand(newReportCommand())
	cmd.AddCommand(newUnitsCommand())
	cmd.AddCommand(newValidateCommand())

	return cmd
}

func newLogger(cmd *cobra.Command, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := newRootCommand()
	return rootCmd.ExecuteContext(ctx)
}
