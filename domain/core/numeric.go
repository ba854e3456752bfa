package core

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Summary contains single-pass summary statistics for a numeric sample
type Summary struct {
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	Std      float64 `json:"std"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Count    int     `json:"count"`
}

// Summarize computes mean, variance, std and min/max in a single pass
// using Welford's online algorithm. Variance is population variance so
// that a constant sample reports exactly zero.
func Summarize(data []float64) Summary {
	if len(data) == 0 {
		return Summary{}
	}

	mean := 0.0
	m2 := 0.0
	min := data[0]
	max := data[0]

	for i, v := range data {
		delta := v - mean
		mean += delta / float64(i+1)
		m2 += delta * (v - mean)

		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	variance := m2 / float64(len(data))
	return Summary{
		Mean:     mean,
		Variance: variance,
		Std:      math.Sqrt(variance),
		Min:      min,
		Max:      max,
		Count:    len(data),
	}
}

// Percentile returns the given percentile (0-100) of the sample
func Percentile(data []float64, percent float64) (float64, error) {
	return stats.Percentile(data, percent)
}

// Median returns the median of the sample
func Median(data []float64) (float64, error) {
	return stats.Median(data)
}

// TrendSlope computes the least-squares slope of values over their index
// positions. Positive slope means the series is rising. Returns 0 for
// fewer than two points.
func TrendSlope(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	xs := make([]float64, len(values))
	for i := range xs {
		xs[i] = float64(i)
	}

	_, slope := stat.LinearRegression(xs, values, nil, false)
	if math.IsNaN(slope) {
		return 0
	}
	return slope
}

// IsFinite reports whether v is neither NaN nor infinite
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
