package reporting

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/spboyer/benchdiff/internal/compare"
	"github.com/spboyer/benchdiff/internal/models"
)

// jsonFloat encodes infinities as the strings "inf"/"-inf" and NaN as null,
// since encoding/json rejects non-finite numbers.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsInf(v, 1):
		return []byte(`"inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-inf"`), nil
	case math.IsNaN(v):
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

type jsonSeries struct {
	Mean   jsonFloat        `json:"mean"`
	StdDev jsonFloat        `json:"std_dev"`
	Count  int              `json:"count"`
	Min    jsonFloat        `json:"min"`
	Max    jsonFloat        `json:"max"`
	CI     *models.Interval `json:"ci,omitempty"`
}

type jsonComparison struct {
	TestID      string       `json:"test_id"`
	Benchmark   string       `json:"benchmark"`
	Page        string       `json:"page"`
	DisplayName string       `json:"display_name"`
	Unit        string       `json:"unit"`
	Label       models.Label `json:"summary"`
	Significant bool         `json:"statistically_significant"`
	DiffPercent jsonFloat    `json:"diff_percent"`
	Baseline    jsonSeries   `json:"baseline"`
	Actual      jsonSeries   `json:"actual"`
}

type jsonReport struct {
	Results []jsonComparison `json:"results"`
	Tally   *compare.Tally   `json:"tally"`
}

type jsonWriter struct {
	w    io.Writer
	rows []jsonComparison
}

func (j *jsonWriter) Write(c *models.Comparison) error {
	j.rows = append(j.rows, jsonComparison{
		TestID:      c.TestID,
		Benchmark:   c.Benchmark,
		Page:        c.Page,
		DisplayName: c.DisplayName,
		Unit:        c.Unit,
		Label:       c.Label,
		Significant: c.Significant,
		DiffPercent: jsonFloat(c.DiffPercent),
		Baseline:    toJSONSeries(c.Baseline),
		Actual:      toJSONSeries(c.Actual),
	})
	return nil
}

func (j *jsonWriter) Finish(tally *compare.Tally) error {
	report := jsonReport{Results: j.rows, Tally: tally}
	if report.Results == nil {
		report.Results = []jsonComparison{}
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal comparison report: %w", err)
	}
	_, err = fmt.Fprintln(j.w, string(data))
	return err
}

func toJSONSeries(s models.SeriesSummary) jsonSeries {
	return jsonSeries{
		Mean:   jsonFloat(s.Mean),
		StdDev: jsonFloat(s.StdDev),
		Count:  s.Count,
		Min:    jsonFloat(s.Min),
		Max:    jsonFloat(s.Max),
		CI:     s.CI,
	}
}
