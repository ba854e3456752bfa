package methods

import (
	"math"

	"driftwatch/domain/core"
	"driftwatch/domain/drift"
	"driftwatch/internal/histogram"
)

// psiEpsilon floors bin proportions before the ratio/log. Prevents
// log(0) on empty bins and keeps near-empty bins from inflating the sum.
const psiEpsilon = 0.005

// PSIMethod computes the Population Stability Index between the baseline
// and current samples over a shared adaptive binning.
type PSIMethod struct{}

// NewPSIMethod creates a new PSI method
func NewPSIMethod() *PSIMethod {
	return &PSIMethod{}
}

// Name returns the method name
func (m *PSIMethod) Name() drift.Method {
	return drift.MethodPSI
}

// Description returns a human-readable description
func (m *PSIMethod) Description() string {
	return "Population Stability Index: bucketed log-ratio shift between the two distributions"
}

// Score computes PSI. Both samples are binned into the combined range,
// counts become proportions, and each bin contributes
// (cur - base) * ln(curSafe / baseSafe). The result is the absolute sum:
// always >= 0, unbounded above.
func (m *PSIMethod) Score(baseline *drift.Baseline, current []float64, currentStats core.Summary) float64 {
	bins := adaptiveBins(baseline, current)
	min, max := combinedRange(baseline, currentStats)

	basePct := histogram.Proportions(baseline.HistogramFor(bins, min, max))
	curPct := histogram.Proportions(histogram.Counts(current, bins, min, max))

	sum := 0.0
	for i := 0; i < bins; i++ {
		baseSafe := math.Max(basePct[i], psiEpsilon)
		curSafe := math.Max(curPct[i], psiEpsilon)
		sum += (curPct[i] - basePct[i]) * math.Log(curSafe/baseSafe)
	}
	return math.Abs(sum)
}
