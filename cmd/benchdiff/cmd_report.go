package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spboyer/benchdiff/internal/reporting"
	"github.com/spf13/cobra"
)

var (
	reportOutputPath   string
	reportOutputFormat string
)

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <report.csv>",
		Short: "Render a stored CSV report in another format",
		Long: `Render a CSV report written by compare as a table, Markdown, HTML,
JSON or JUnit XML without re-running the comparison.

The report goes to standard output unless -o names a file.`,
		Args: cobra.ExactArgs(1),
		RunE: reportCommandE,
	}

	cmd.Flags().StringVarP(&reportOutputPath, "output", "o", stdoutPath, "Output file path, or - for stdout")
	cmd.Flags().StringVarP(&reportOutputFormat, "format", "f", string(reporting.FormatTable), fmt.Sprintf("Output format: one of %v", reporting.Formats))

	return cmd
}

func reportCommandE(cmd *cobra.Command, args []string) error {
	format, err := reporting.ParseFormat(reportOutputFormat)
	if err != nil {
		return err
	}

	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening report: %w", err)
	}
	rows, err := reporting.ReadCSV(in)
	in.Close() //nolint:errcheck
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	out, path, err := openReport(cmd, reportOutputPath, "", format)
	if err != nil {
		return err
	}
	toStdout := path == ""

	base := filepath.Base(args[0])
	writer, err := reporting.NewWriter(format, out, reporting.Options{
		Title: strings.TrimSuffix(base, filepath.Ext(base)),
		Color: toStdout && isTerminal(cmd.OutOrStdout()),
	})
	if err != nil {
		out.Close() //nolint:errcheck
		return err
	}

	for _, r := range rows {
		if err := writer.Write(r); err != nil {
			out.Close() //nolint:errcheck
			return err
		}
	}
	tally := reporting.TallyRows(rows)
	if err := finishReport(writer, out, path, tally); err != nil {
		return err
	}

	if !toStdout {
		slog.Info("wrote report", "path", path, "format", format)
	}
	return nil
}
