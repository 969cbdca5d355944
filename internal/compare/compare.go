// Package compare runs the statistical comparison of a baseline benchmark run
// against an actual run.
package compare

import (
	"fmt"
	"log/slog"

	"github.com/spboyer/benchdiff/internal/models"
	"github.com/spboyer/benchdiff/internal/statistics"
	"github.com/spboyer/benchdiff/internal/units"
)

// Sink receives comparison rows in test ID order as they are produced.
type Sink interface {
	Write(c *models.Comparison) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(c *models.Comparison) error

func (f SinkFunc) Write(c *models.Comparison) error {
	return f(c)
}

// BootstrapOptions requests a bootstrap confidence interval for each series mean.
type BootstrapOptions struct {
	ConfidenceLevel float64
	// Seed < 0 uses a non-deterministic source.
	Seed int64
}

// Options configures a Comparer.
type Options struct {
	// Policy decides the improvement direction for each unit. Defaults to
	// the current profile.
	Policy *units.Policy

	// Logger receives skip warnings. Defaults to slog.Default().
	Logger *slog.Logger

	// Bootstrap, when set, adds confidence intervals to each summary.
	Bootstrap *BootstrapOptions
}

// Tally counts the outcome of a comparison pass.
type Tally struct {
	Labels  map[models.Label]int `json:"labels"`
	Skipped int                  `json:"skipped"`
}

// Compared returns the number of rows that were emitted.
func (t *Tally) Compared() int {
	n := 0
	for _, c := range t.Labels {
		n += c
	}
	return n
}

// Regressions returns the number of BAD rows.
func (t *Tally) Regressions() int {
	return t.Labels[models.LabelBad]
}

// Comparer compares two runs test by test.
type Comparer struct {
	policy    *units.Policy
	logger    *slog.Logger
	bootstrap *BootstrapOptions
}

// New creates a Comparer. opts may be nil.
func New(opts *Options) *Comparer {
	c := &Comparer{
		policy: units.NewPolicy(units.ProfileCurrent),
		logger: slog.Default(),
	}
	if opts != nil {
		if opts.Policy != nil {
			c.policy = opts.Policy
		}
		if opts.Logger != nil {
			c.logger = opts.Logger
		}
		c.bootstrap = opts.Bootstrap
	}
	return c
}

// Run compares every test present in both runs, in ascending ID order, and
// hands each result to sink before moving on to the next test.
//
// Tests with no samples in either run are skipped with a warning. A unit the
// policy does not know stops the pass before that test's row is written;
// rows already written are left in place.
func (c *Comparer) Run(baseline, actual models.RunSet, sink Sink) (*Tally, error) {
	tally := &Tally{Labels: make(map[models.Label]int)}

	for _, id := range models.SharedIDs(baseline, actual) {
		base := baseline[id]
		act := actual[id]

		if len(base.Values) == 0 || len(act.Values) == 0 {
			if len(base.Values) == 0 {
				c.logger.Warn("series is empty", "test", id, "run", "baseline")
			}
			if len(act.Values) == 0 {
				c.logger.Warn("series is empty", "test", id, "run", "actual")
			}
			tally.Skipped++
			continue
		}

		cmp, err := c.Compare(base, act)
		if err != nil {
			return tally, err
		}

		if err := sink.Write(cmp); err != nil {
			return tally, fmt.Errorf("writing result for %s: %w", id, err)
		}
		tally.Labels[cmp.Label]++
	}

	return tally, nil
}

// Compare builds the comparison row for one test. The unit is taken from the
// baseline record.
func (c *Comparer) Compare(base, act *models.TestRecord) (*models.Comparison, error) {
	bigger, err := c.policy.BiggerIsBetter(base.Unit)
	if err != nil {
		return nil, fmt.Errorf("comparing %s: %w", base.ID, err)
	}

	label, significant := Classify(base.Values, act.Values, bigger)

	cmp := &models.Comparison{
		TestID:      base.ID,
		Benchmark:   base.Benchmark,
		Page:        base.Page,
		DisplayName: base.DisplayName(),
		Unit:        base.Unit,
		Label:       label,
		Significant: significant,
		DiffPercent: ImprovementPercent(base.Values, act.Values, bigger),
		Baseline:    c.summarize(base.Values),
		Actual:      c.summarize(act.Values),
	}

	c.logger.Debug("compared", "test", base.ID, "label", label, "diff_percent", cmp.DiffPercent)
	return cmp, nil
}

func (c *Comparer) summarize(values []float64) models.SeriesSummary {
	s := statistics.Summarize(values)
	summary := models.SeriesSummary{
		Mean:   s.Mean,
		StdDev: s.StdDev,
		Count:  s.Count,
		Min:    s.Min,
		Max:    s.Max,
	}
	if c.bootstrap != nil {
		ci := statistics.BootstrapCI(values, c.bootstrap.ConfidenceLevel, c.bootstrap.Seed)
		summary.CI = &models.Interval{
			Lower:           ci.Lower,
			Upper:           ci.Upper,
			ConfidenceLevel: ci.ConfidenceLevel,
		}
	}
	return summary
}
