package models

// Label is the categorical outcome of comparing one test between two runs.
type Label string

const (
	LabelNA       Label = "N/A"
	LabelSame     Label = "SAME"
	LabelFlaky    Label = "FLAKY"
	LabelProbSame Label = "SAME?"
	LabelGood     Label = "GOOD"
	LabelBad      Label = "BAD"
)

// Labels lists every label in report order.
var Labels = []Label{LabelGood, LabelBad, LabelProbSame, LabelSame, LabelFlaky, LabelNA}

// IsChange reports whether the label represents a real, significant change.
func (l Label) IsChange() bool {
	return l == LabelGood || l == LabelBad
}

// SeriesSummary holds the descriptive statistics of one run's samples for a test.
type SeriesSummary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`

	// CI is populated only when bootstrap intervals are requested.
	CI *Interval `json:"ci,omitempty"`
}

// Interval is a confidence interval around a series mean.
type Interval struct {
	Lower           float64 `json:"lower"`
	Upper           float64 `json:"upper"`
	ConfidenceLevel float64 `json:"confidence_level"`
}

// Comparison is the result of comparing one test between the baseline and actual runs.
type Comparison struct {
	TestID    string `json:"test_id"`
	Benchmark string `json:"benchmark"`
	Page      string `json:"page"`

	// DisplayName is "benchmark.page", with the last URL segment appended
	// after a colon when the page URL is known.
	DisplayName string `json:"display_name"`
	Unit        string `json:"unit"`

	Label       Label `json:"summary"`
	Significant bool  `json:"statistically_significant"`

	// DiffPercent is the change of the actual mean relative to the baseline mean,
	// sign-adjusted so that a positive value is always an improvement.
	DiffPercent float64 `json:"diff_percent"`

	Baseline SeriesSummary `json:"baseline"`
	Actual   SeriesSummary `json:"actual"`
}
