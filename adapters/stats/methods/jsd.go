package methods

import (
	"math"

	"driftwatch/domain/core"
	"driftwatch/domain/drift"
	"driftwatch/internal/histogram"
)

// jsdEpsilon floors every probability component before the KL terms so
// empty bins never produce log(0).
const jsdEpsilon = 0.0001

// JSDMethod computes the Jensen-Shannon divergence between the binned
// baseline and current distributions. Symmetric by construction.
type JSDMethod struct{}

// NewJSDMethod creates a new JSD method
func NewJSDMethod() *JSDMethod {
	return &JSDMethod{}
}

// Name returns the method name
func (m *JSDMethod) Name() drift.Method {
	return drift.MethodJSD
}

// Description returns a human-readable description
func (m *JSDMethod) Description() string {
	return "Jensen-Shannon divergence: symmetric, smoothed KL divergence between binned distributions"
}

// Score bins both samples with the same adaptive binning as PSI,
// normalizes the histograms into probability vectors p and q, and
// returns 0.5*KL(p||m) + 0.5*KL(q||m) for the mixture m = (p+q)/2.
func (m *JSDMethod) Score(baseline *drift.Baseline, current []float64, currentStats core.Summary) float64 {
	bins := adaptiveBins(baseline, current)
	min, max := combinedRange(baseline, currentStats)

	p := histogram.Proportions(baseline.HistogramFor(bins, min, max))
	q := histogram.Proportions(histogram.Counts(current, bins, min, max))

	mix := make([]float64, bins)
	for i := 0; i < bins; i++ {
		mix[i] = (p[i] + q[i]) / 2
	}

	return 0.5*klDivergence(p, mix) + 0.5*klDivergence(q, mix)
}

// klDivergence computes KL(p||q) with an epsilon floor on every component
func klDivergence(p, q []float64) float64 {
	sum := 0.0
	for i := range p {
		pi := math.Max(p[i], jsdEpsilon)
		qi := math.Max(q[i], jsdEpsilon)
		sum += pi * math.Log(pi/qi)
	}
	return sum
}
