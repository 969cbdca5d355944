package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, Mean([]float64{}))
	assert.Equal(t, 42.5, Mean([]float64{42.5}))
	assert.InDelta(t, 2.5, Mean([]float64{1, 2, 3, 4}), 1e-12)
}

func TestMean_OrderIndependent(t *testing.T) {
	a := []float64{16.2, 17.9, 15.4, 16.8, 18.1}
	b := []float64{18.1, 15.4, 16.8, 16.2, 17.9}
	assert.InDelta(t, Mean(a), Mean(b), 1e-12)
}

func TestStdDev_Degenerate(t *testing.T) {
	assert.True(t, math.IsInf(StdDev(nil), 1))
	assert.True(t, math.IsInf(StdDev([]float64{7}), 1))
}

func TestStdDev_BesselCorrected(t *testing.T) {
	// sum of squared deviations = 32, n-1 = 7
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, math.Sqrt(32.0/7.0), StdDev(values), 1e-12)
}

func TestStdDev_Constant(t *testing.T) {
	assert.Equal(t, 0.0, StdDev([]float64{10, 10, 10}))
}

func TestStdErr(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, StdDev(values)/math.Sqrt(8), StdErr(values), 1e-12)

	assert.True(t, math.IsInf(StdErr(nil), 1))
	assert.True(t, math.IsInf(StdErr([]float64{3}), 1))
	assert.Equal(t, 0.0, StdErr([]float64{5, 5}))
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{3, 1, 2})
	require.Equal(t, 3, s.Count)
	assert.InDelta(t, 2.0, s.Mean, 1e-12)
	assert.InDelta(t, 1.0, s.StdDev, 1e-12)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 3.0, s.Max)

	empty := Summarize(nil)
	assert.Equal(t, 0, empty.Count)
	assert.Equal(t, 0.0, empty.Min)
	assert.Equal(t, 0.0, empty.Max)
	assert.True(t, math.IsInf(empty.StdDev, 1))
}
