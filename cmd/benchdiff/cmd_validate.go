package main

import (
	"fmt"
	"log/slog"

	"github.com/spboyer/benchdiff/internal/discovery"
	"github.com/spboyer/benchdiff/internal/validation"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <dir> [dir...]",
		Short: "Check result files against the result file schema",
		Long: `Check every result file (*.json, *.json.gz) under the given directories
against the result file schema and report problems per file.

The comparison itself skips files it cannot decode; validate shows why.`,
		Args: cobra.MinimumNArgs(1),
		RunE: validateCommandE,
	}
}

func validateCommandE(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	checked, failed := 0, 0

	for _, dir := range args {
		files, err := discovery.FindResultFiles(dir)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			slog.Warn("no result files found", "dir", dir)
			continue
		}

		for _, path := range files {
			errs, err := validation.ValidateResultFile(path)
			if err != nil {
				return err
			}
			checked++
			if len(errs) == 0 {
				fmt.Fprintf(out, "✓ %s\n", path) //nolint:errcheck
				continue
			}
			failed++
			fmt.Fprintf(out, "✗ %s\n", path) //nolint:errcheck
			for _, e := range errs {
				fmt.Fprintf(out, "    %s\n", e) //nolint:errcheck
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d result files failed validation", failed, checked)
	}
	return nil
}
