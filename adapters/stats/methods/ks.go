package methods

import (
	"math"
	"sort"

	"driftwatch/domain/core"
	"driftwatch/domain/drift"
)

// KSMethod computes the two-sample Kolmogorov-Smirnov statistic: the
// maximum gap between the two empirical CDFs.
type KSMethod struct{}

// NewKSMethod creates a new KS method
func NewKSMethod() *KSMethod {
	return &KSMethod{}
}

// Name returns the method name
func (m *KSMethod) Name() drift.Method {
	return drift.MethodKS
}

// Description returns a human-readable description
func (m *KSMethod) Description() string {
	return "Kolmogorov-Smirnov statistic: maximum gap between empirical CDFs"
}

// Score merge-scans the two sorted samples with a pointer per sample,
// advancing the pointer whose value is smaller and tracking the maximum
// |CDF difference| after each step. Exact ties advance both pointers so
// equal samples never open a spurious gap. The baseline's sorted copy is
// precomputed; only the current sample is sorted here. Result is always
// in [0,1].
func (m *KSMethod) Score(baseline *drift.Baseline, current []float64, _ core.Summary) float64 {
	baseSorted := baseline.SortedData

	curSorted := make([]float64, len(current))
	copy(curSorted, current)
	sort.Float64s(curSorted)

	nBase := float64(len(baseSorted))
	nCur := float64(len(curSorted))
	if nBase == 0 || nCur == 0 {
		return 0
	}

	maxDiff := 0.0
	i, j := 0, 0
	for i < len(baseSorted) && j < len(curSorted) {
		baseVal, curVal := baseSorted[i], curSorted[j]

		// Drain the whole run of the smaller value (both runs on a tie)
		// before measuring, so the gap is only read at points where an
		// empirical CDF actually steps.
		if baseVal <= curVal {
			for i < len(baseSorted) && baseSorted[i] == baseVal {
				i++
			}
		}
		if curVal <= baseVal {
			for j < len(curSorted) && curSorted[j] == curVal {
				j++
			}
		}

		diff := math.Abs(float64(i)/nBase - float64(j)/nCur)
		if diff > maxDiff {
			maxDiff = diff
		}
	}
	return maxDiff
}
