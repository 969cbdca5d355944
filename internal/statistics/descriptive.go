package statistics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the descriptive statistics of a sample series.
type Summary struct {
	Mean   float64
	StdDev float64
	StdErr float64
	Count  int
	Min    float64
	Max    float64
}

// Mean returns the arithmetic mean of values, or 0 for an empty series.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	return stat.Mean(values, nil)
}

// StdDev returns the Bessel-corrected sample standard deviation of values.
// A series with fewer than two samples has no defined spread and yields +Inf.
func StdDev(values []float64) float64 {
	if len(values) <= 1 {
		return math.Inf(1)
	}
	// The compensated two-pass variance can dip a hair below zero for
	// near-constant input.
	return math.Sqrt(math.Max(0, stat.Variance(values, nil)))
}

// StdErr returns the standard error of the mean, StdDev / sqrt(n).
func StdErr(values []float64) float64 {
	return StdDev(values) / math.Sqrt(float64(len(values)))
}

// Summarize collects the descriptive statistics of values. Min and Max are 0
// for an empty series.
func Summarize(values []float64) Summary {
	s := Summary{
		Mean:   Mean(values),
		StdDev: StdDev(values),
		StdErr: StdErr(values),
		Count:  len(values),
	}
	if len(values) > 0 {
		s.Min = floats.Min(values)
		s.Max = floats.Max(values)
	}
	return s
}
