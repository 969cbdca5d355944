package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spboyer/benchdiff/internal/compare"
	"github.com/spboyer/benchdiff/internal/models"
	"github.com/spboyer/benchdiff/internal/projectconfig"
	"github.com/spboyer/benchdiff/internal/reporting"
	"github.com/spboyer/benchdiff/internal/results"
	"github.com/spboyer/benchdiff/internal/spinner"
	"github.com/spboyer/benchdiff/internal/units"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// stdoutPath makes -o write the report to standard output.
const stdoutPath = "-"

var (
	compareOutputPath       string
	compareOutputFormat     string
	compareProfile          string
	compareIDMode           string
	compareFailOnRegression bool
	compareBootstrap        bool
)

func newCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <baseline-dir> <actual-dir>",
		Short: "Compare benchmark results from two runs",
		Long: `Compare benchmark results from a baseline run against an actual run.

Every result file (*.json, *.json.gz) under each directory is loaded and
samples are grouped per test. Tests present in both runs are compared with a
two-sample t-test and written to the report in test ID order.

Without -o the report goes to a new temporary file whose path is logged.
Use -o - to write it to standard output.`,
		Args: cobra.ExactArgs(2),
		RunE: compareCommandE,
	}

	cmd.Flags().StringVarP(&compareOutputPath, "output", "o", "", "Report file path, or - for stdout")
	cmd.Flags().StringVarP(&compareOutputFormat, "format", "f", projectconfig.DefaultFormat, fmt.Sprintf("Output format: one of %v", reporting.Formats))
	cmd.Flags().StringVar(&compareProfile, "profile", projectconfig.DefaultProfile, "Unit policy profile: current or legacy")
	cmd.Flags().StringVar(&compareIDMode, "id-mode", projectconfig.DefaultIDMode, "Test identity: page-id or name")
	cmd.Flags().BoolVar(&compareFailOnRegression, "fail-on-regression", false, "Exit with code 1 when any test is BAD")
	cmd.Flags().BoolVar(&compareBootstrap, "bootstrap", false, "Add bootstrap confidence intervals for each mean")

	return cmd
}

func compareCommandE(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	cfg, err := projectconfig.Load(wd)
	if err != nil {
		return err
	}
	applyCompareFlags(cmd, cfg)

	format, err := reporting.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	profile, err := units.ParseProfile(cfg.Profile)
	if err != nil {
		return err
	}
	mode, err := results.ParseIDMode(cfg.IDMode)
	if err != nil {
		return err
	}

	logger := slog.Default()
	if cfg.Path != "" {
		logger.Debug("using project config", "path", cfg.Path)
	}

	stopSpinner := spinner.StartIf(isTerminal(cmd.ErrOrStderr()), cmd.ErrOrStderr(), "Loading results...")
	baseline, actual, err := results.LoadPair(cmd.Context(), results.NewDirLoader(mode, logger), args[0], args[1])
	stopSpinner()
	if err != nil {
		return err
	}
	logger.Info("loaded results", "baseline_tests", len(baseline), "actual_tests", len(actual))

	out, path, err := openReport(cmd, compareOutputPath, cfg.Output.Dir, format)
	if err != nil {
		return err
	}
	toStdout := path == ""

	writer, err := reporting.NewWriter(format, out, reporting.Options{
		Title: fmt.Sprintf("%s vs %s", args[0], args[1]),
		Color: toStdout && isTerminal(cmd.OutOrStdout()),
	})
	if err != nil {
		out.Close() //nolint:errcheck
		return err
	}

	opts := &compare.Options{
		Policy: units.NewPolicy(profile),
		Logger: logger,
	}
	if *cfg.Bootstrap.Enabled {
		opts.Bootstrap = &compare.BootstrapOptions{
			ConfidenceLevel: cfg.Bootstrap.Confidence,
			Seed:            *cfg.Bootstrap.Seed,
		}
	}

	var sink compare.Sink = writer
	if !toStdout {
		// Echo progress while the report goes to a file.
		stdout := cmd.OutOrStdout()
		sink = compare.SinkFunc(func(c *models.Comparison) error {
			fmt.Fprintln(stdout, c.DisplayName) //nolint:errcheck
			return writer.Write(c)
		})
	}

	tally, err := compare.New(opts).Run(baseline, actual, sink)
	if err != nil {
		out.Close() //nolint:errcheck
		if !toStdout {
			logger.Error("comparison aborted, partial report kept", "path", path)
		}
		return err
	}
	if err := finishReport(writer, out, path, tally); err != nil {
		return err
	}

	if !toStdout {
		logger.Info("wrote report", "path", path, "format", format)
	}
	logger.Info(reporting.FormatTally(tally))

	if *cfg.FailOnRegression && tally.Regressions() > 0 {
		return &RegressionError{Count: tally.Regressions()}
	}
	return nil
}

// applyCompareFlags overlays explicitly set flags onto the project config.
func applyCompareFlags(cmd *cobra.Command, cfg *projectconfig.ProjectConfig) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = compareOutputFormat
	}
	if flags.Changed("profile") {
		cfg.Profile = compareProfile
	}
	if flags.Changed("id-mode") {
		cfg.IDMode = compareIDMode
	}
	if flags.Changed("fail-on-regression") {
		cfg.FailOnRegression = &compareFailOnRegression
	}
	if flags.Changed("bootstrap") {
		cfg.Bootstrap.Enabled = &compareBootstrap
	}
}

// openReport opens the report destination. The returned path is empty when
// the report goes to stdout.
func openReport(cmd *cobra.Command, outputPath, dir string, format reporting.Format) (io.WriteCloser, string, error) {
	switch outputPath {
	case stdoutPath:
		return nopCloser{cmd.OutOrStdout()}, "", nil
	case "":
		f, err := os.CreateTemp(dir, "benchdiff-*"+format.Extension())
		if err != nil {
			return nil, "", fmt.Errorf("creating report file: %w", err)
		}
		return f, f.Name(), nil
	default:
		f, err := os.Create(outputPath)
		if err != nil {
			return nil, "", fmt.Errorf("creating report file: %w", err)
		}
		return f, outputPath, nil
	}
}

// finishReport flushes the report and closes its destination, returning the
// first error of the two.
func finishReport(w reporting.Writer, out io.Closer, path string, tally *compare.Tally) error {
	err := w.Finish(tally)
	if err != nil {
		err = fmt.Errorf("writing report: %w", err)
	}
	if cerr := out.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("closing report %s: %w", path, cerr)
	}
	return err
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
