package methods

import (
	"math"

	"driftwatch/domain/core"
	"driftwatch/domain/drift"
)

// maxMomentScore is the score assigned when the baseline has zero
// variance but the current sample deviates from it. One full baseline
// standard deviation of shift scores 0.5 per component, so 1.0 marks
// "any deviation from a constant baseline" as unambiguous drift.
const maxMomentScore = 1.0

// StatisticalMethod compares the first two moments of the samples:
// mean shift and std shift, both normalized by the baseline std.
type StatisticalMethod struct{}

// NewStatisticalMethod creates a new moments-based method
func NewStatisticalMethod() *StatisticalMethod {
	return &StatisticalMethod{}
}

// Name returns the method name
func (m *StatisticalMethod) Name() drift.Method {
	return drift.MethodStatistical
}

// Description returns a human-readable description
func (m *StatisticalMethod) Description() string {
	return "Moment comparison: mean and std shifts normalized by the baseline std"
}

// Score returns (|meanDiff| + |stdDiff|) / (2 * baselineStd).
//
// Zero-variance convention: the ratio is undefined when the baseline std
// is 0, so when the baseline is constant the score is 0 if the current
// sample is the same constant (equal mean, zero std), and maxMomentScore
// otherwise. Any deviation from a constant baseline is treated as
// maximal drift rather than dividing by zero.
func (m *StatisticalMethod) Score(baseline *drift.Baseline, current []float64, currentStats core.Summary) float64 {
	baseStats := baseline.Statistics

	if baseStats.Std == 0 {
		if currentStats.Std == 0 && currentStats.Mean == baseStats.Mean {
			return 0
		}
		return maxMomentScore
	}

	meanDiff := math.Abs(currentStats.Mean-baseStats.Mean) / baseStats.Std
	stdDiff := math.Abs(currentStats.Std-baseStats.Std) / baseStats.Std
	return (meanDiff + stdDiff) / 2
}
