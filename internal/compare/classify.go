package compare

import (
	"math"

	"github.com/spboyer/benchdiff/internal/models"
	"github.com/spboyer/benchdiff/internal/statistics"
)

const (
	// SameThresholdPercent is the change below which a non-significant
	// difference counts as no change at all.
	SameThresholdPercent = 0.1

	// NegligibleThresholdPercent is the change below which a significant
	// difference is still too small to call GOOD or BAD.
	NegligibleThresholdPercent = 1.0
)

// DiffPercent returns the change of mean(actual) relative to mean(baseline)
// in percent. It is +Inf when the baseline mean is 0.
func DiffPercent(baseline, actual []float64) float64 {
	meanA := statistics.Mean(baseline)
	if meanA == 0 {
		return math.Inf(1)
	}
	return 100 * (statistics.Mean(actual) - meanA) / math.Abs(meanA)
}

// ImprovementPercent is DiffPercent with its sign flipped for units where
// smaller is better, so a positive value is always an improvement.
func ImprovementPercent(baseline, actual []float64, biggerIsBetter bool) float64 {
	meanA := statistics.Mean(baseline)
	if meanA == 0 {
		return math.Inf(1)
	}
	diff := statistics.Mean(actual) - meanA
	if !biggerIsBetter {
		diff = -diff
	}
	return 100 * diff / math.Abs(meanA)
}

// Classify labels the change from baseline a to actual b and reports whether
// it was statistically significant. Rules are applied in order and the first
// match wins.
func Classify(a, b []float64, biggerIsBetter bool) (models.Label, bool) {
	res, err := statistics.TTest(a, b)
	if err != nil {
		return models.LabelNA, false
	}
	significant := res.Significant

	diff := statistics.Mean(b) - statistics.Mean(a)
	pct := math.Abs(DiffPercent(a, b))

	switch {
	case pct < SameThresholdPercent && !significant:
		return models.LabelSame, significant
	case !significant:
		return models.LabelFlaky, significant
	case pct < NegligibleThresholdPercent:
		return models.LabelProbSame, significant
	case (biggerIsBetter && diff > 0) || (!biggerIsBetter && diff < 0):
		return models.LabelGood, significant
	default:
		return models.LabelBad, significant
	}
}
