package statistics

import (
	"errors"
	"math"
)

// AsymptoticCriticalValue is the normal-approximation critical value used
// once the degrees of freedom run past the table.
const AsymptoticCriticalValue = 1.96

// ErrNotApplicable is returned when neither series has any spread, so the
// t-statistic would divide by zero.
var ErrNotApplicable = errors.New("significance test not applicable: both series have zero standard error")

// TTestResult holds the outcome of a two-sample t-test.
type TTestResult struct {
	// TStatistic is (mean(a) - mean(b)) / sqrt(se(a)^2 + se(b)^2).
	TStatistic float64

	// DegreesOfFreedom is the pooled approximation len(a)+len(b)-2, not the
	// Welch-Satterthwaite estimate.
	DegreesOfFreedom int

	// CriticalValue is the threshold |TStatistic| had to exceed.
	CriticalValue float64

	Significant bool
}

// CriticalValue returns the two-tailed 95% Student's t critical value stored
// at table index df. Indexes below the table's domain or at/after its end
// yield AsymptoticCriticalValue.
func CriticalValue(df int) float64 {
	if df < 2 || df >= len(criticalValues) {
		return AsymptoticCriticalValue
	}
	return criticalValues[df]
}

// TStatistic computes Welch's t-statistic for a against b using unpooled
// standard errors.
func TStatistic(a, b []float64) float64 {
	seA := StdErr(a)
	seB := StdErr(b)
	return (Mean(a) - Mean(b)) / math.Sqrt(seA*seA+seB*seB)
}

// TTest runs the two-sample t-test of a against b at 95% confidence.
//
// The table is consulted at df+1: criticalValues[i] holds the value for
// i-1 degrees of freedom, so the shift lines the lookup up with df. Changing
// it changes which results are reported as significant.
func TTest(a, b []float64) (*TTestResult, error) {
	if StdErr(a) == 0 && StdErr(b) == 0 {
		return nil, ErrNotApplicable
	}

	df := len(a) + len(b) - 2
	t := TStatistic(a, b)
	cv := CriticalValue(df + 1)

	return &TTestResult{
		TStatistic:       t,
		DegreesOfFreedom: df,
		CriticalValue:    cv,
		Significant:      math.Abs(t) > cv,
	}, nil
}

// IsSignificant reports whether the difference between the means of a and b
// is statistically significant. It is false when the test is not applicable.
func IsSignificant(a, b []float64) bool {
	res, err := TTest(a, b)
	if err != nil {
		return false
	}
	return res.Significant
}
