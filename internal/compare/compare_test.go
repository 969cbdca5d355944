package compare

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/spboyer/benchdiff/internal/models"
	"github.com/spboyer/benchdiff/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	rows []*models.Comparison
}

func (s *recordingSink) Write(c *models.Comparison) error {
	s.rows = append(s.rows, c)
	return nil
}

func record(id, unit string, values []float64) *models.TestRecord {
	return &models.TestRecord{
		ID:        id,
		Benchmark: "smoothness",
		Page:      id,
		Unit:      unit,
		Values:    values,
	}
}

func newTestComparer(buf *bytes.Buffer, profile units.Profile) *Comparer {
	return New(&Options{
		Policy: units.NewPolicy(profile),
		Logger: slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})
}

func TestRun_SortedSharedTests(t *testing.T) {
	baseline := models.RunSet{
		"c":             record("c", "fps", jitter(60, 10)),
		"a":             record("a", "ms", jitter(16, 10)),
		"b":             record("b", "ms", jitter(20, 10)),
		"only-baseline": record("only-baseline", "ms", jitter(1, 10)),
	}
	actual := models.RunSet{
		"b":           record("b", "ms", jitter(25, 10)),
		"a":           record("a", "ms", jitter(16, 10)),
		"c":           record("c", "fps", jitter(66, 10)),
		"only-actual": record("only-actual", "ms", jitter(1, 10)),
	}

	var buf bytes.Buffer
	sink := &recordingSink{}
	tally, err := newTestComparer(&buf, units.ProfileCurrent).Run(baseline, actual, sink)
	require.NoError(t, err)

	require.Len(t, sink.rows, 3)
	assert.Equal(t, "a", sink.rows[0].TestID)
	assert.Equal(t, "b", sink.rows[1].TestID)
	assert.Equal(t, "c", sink.rows[2].TestID)

	assert.Equal(t, models.LabelSame, sink.rows[0].Label)
	assert.Equal(t, models.LabelBad, sink.rows[1].Label)
	assert.InDelta(t, -25.0, sink.rows[1].DiffPercent, 1e-6)
	assert.Equal(t, models.LabelGood, sink.rows[2].Label)
	assert.InDelta(t, 10.0, sink.rows[2].DiffPercent, 1e-6)

	assert.Equal(t, 3, tally.Compared())
	assert.Equal(t, 1, tally.Regressions())
	assert.Equal(t, 0, tally.Skipped)
}

func TestRun_Deterministic(t *testing.T) {
	build := func() (models.RunSet, models.RunSet) {
		baseline := models.RunSet{}
		actual := models.RunSet{}
		for _, id := range []string{"z", "m", "q", "a", "k"} {
			baseline[id] = record(id, "ms", jitter(10, 6))
			actual[id] = record(id, "ms", jitter(11, 6))
		}
		return baseline, actual
	}

	var first []string
	for range 5 {
		baseline, actual := build()
		sink := &recordingSink{}
		_, err := New(nil).Run(baseline, actual, sink)
		require.NoError(t, err)

		var ids []string
		for _, r := range sink.rows {
			ids = append(ids, r.TestID)
		}
		if first == nil {
			first = ids
		}
		assert.Equal(t, first, ids)
	}
	assert.Equal(t, []string{"a", "k", "m", "q", "z"}, first)
}

func TestRun_SkipsEmptySeries(t *testing.T) {
	baseline := models.RunSet{
		"empty-baseline": record("empty-baseline", "ms", nil),
		"empty-both":     record("empty-both", "ms", []float64{}),
		"empty-actual":   record("empty-actual", "ms", jitter(5, 4)),
		"ok":             record("ok", "ms", jitter(5, 4)),
	}
	actual := models.RunSet{
		"empty-baseline": record("empty-baseline", "ms", jitter(5, 4)),
		"empty-both":     record("empty-both", "ms", nil),
		"empty-actual":   record("empty-actual", "ms", nil),
		"ok":             record("ok", "ms", jitter(5, 4)),
	}

	var buf bytes.Buffer
	sink := &recordingSink{}
	tally, err := newTestComparer(&buf, units.ProfileCurrent).Run(baseline, actual, sink)
	require.NoError(t, err)

	require.Len(t, sink.rows, 1)
	assert.Equal(t, "ok", sink.rows[0].TestID)
	assert.Equal(t, 3, tally.Skipped)

	logs := buf.String()
	assert.Contains(t, logs, "test=empty-baseline run=baseline")
	assert.Contains(t, logs, "test=empty-both run=baseline")
	assert.Contains(t, logs, "test=empty-both run=actual")
	assert.Contains(t, logs, "test=empty-actual run=actual")
	assert.NotContains(t, logs, "test=empty-actual run=baseline")
}

func TestRun_UnknownUnitAborts(t *testing.T) {
	baseline := models.RunSet{
		"a": record("a", "ms", jitter(5, 4)),
		"b": record("b", "furlongs", jitter(5, 4)),
		"c": record("c", "ms", jitter(5, 4)),
	}
	actual := models.RunSet{
		"a": record("a", "ms", jitter(5, 4)),
		"b": record("b", "furlongs", jitter(6, 4)),
		"c": record("c", "ms", jitter(5, 4)),
	}

	sink := &recordingSink{}
	_, err := New(nil).Run(baseline, actual, sink)
	require.ErrorIs(t, err, units.ErrUnknownUnit)
	assert.Contains(t, err.Error(), "furlongs")
	assert.Contains(t, err.Error(), "b")

	// Rows before the bad unit stay written, nothing for it or after it.
	require.Len(t, sink.rows, 1)
	assert.Equal(t, "a", sink.rows[0].TestID)
}

func TestRun_LegacyProfileRejectsScoreAlias(t *testing.T) {
	baseline := models.RunSet{"a": record("a", units.ScoreAlias, jitter(5, 4))}
	actual := models.RunSet{"a": record("a", units.ScoreAlias, jitter(5, 4))}

	var buf bytes.Buffer
	_, err := newTestComparer(&buf, units.ProfileLegacy).Run(baseline, actual, &recordingSink{})
	require.ErrorIs(t, err, units.ErrUnknownUnit)

	_, err = newTestComparer(&buf, units.ProfileCurrent).Run(baseline, actual, &recordingSink{})
	require.NoError(t, err)
}

func TestRun_SinkError(t *testing.T) {
	baseline := models.RunSet{"a": record("a", "ms", jitter(5, 4))}
	actual := models.RunSet{"a": record("a", "ms", jitter(5, 4))}

	boom := errors.New("disk full")
	_, err := New(nil).Run(baseline, actual, SinkFunc(func(*models.Comparison) error { return boom }))
	require.ErrorIs(t, err, boom)
}

func TestCompare_Summaries(t *testing.T) {
	base := &models.TestRecord{
		ID: "load/home/3", Benchmark: "load", Page: "home", PageID: "3",
		URL: "http://example.com/home.html", Unit: "ms",
		Values: []float64{10, 12, 14},
	}
	act := &models.TestRecord{
		ID: "load/home/3", Benchmark: "load", Page: "home", PageID: "3",
		Unit: "ms", Values: []float64{7},
	}

	cmp, err := New(nil).Compare(base, act)
	require.NoError(t, err)

	assert.Equal(t, "load.home:home.html", cmp.DisplayName)
	assert.Equal(t, 3, cmp.Baseline.Count)
	assert.InDelta(t, 12.0, cmp.Baseline.Mean, 1e-12)
	assert.InDelta(t, 2.0, cmp.Baseline.StdDev, 1e-12)
	assert.Equal(t, 10.0, cmp.Baseline.Min)
	assert.Equal(t, 14.0, cmp.Baseline.Max)

	assert.Equal(t, 1, cmp.Actual.Count)
	assert.True(t, math.IsInf(cmp.Actual.StdDev, 1))
	assert.Nil(t, cmp.Actual.CI)

	// smaller is better: 12 -> 7 is a 41.67% improvement
	assert.InDelta(t, 500.0/12.0, cmp.DiffPercent, 1e-9)
}

func TestCompare_Bootstrap(t *testing.T) {
	c := New(&Options{Bootstrap: &BootstrapOptions{ConfidenceLevel: 0.9, Seed: 3}})

	cmp, err := c.Compare(record("a", "fps", jitter(60, 8)), record("a", "fps", jitter(61, 8)))
	require.NoError(t, err)

	require.NotNil(t, cmp.Baseline.CI)
	require.NotNil(t, cmp.Actual.CI)
	assert.Equal(t, 0.9, cmp.Baseline.CI.ConfidenceLevel)
	assert.LessOrEqual(t, cmp.Baseline.CI.Lower, cmp.Baseline.Mean)
	assert.GreaterOrEqual(t, cmp.Actual.CI.Upper, cmp.Actual.Mean)
}
