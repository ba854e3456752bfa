package methods

import (
	"context"

	"golang.org/x/sync/errgroup"

	"driftwatch/domain/core"
	"driftwatch/domain/drift"
	"driftwatch/internal/histogram"
)

// DetectionMethod is a pure function over two numeric samples producing a
// non-negative drift score. Implementations read the baseline's cached
// sorted copy, histograms and statistics but never mutate them.
type DetectionMethod interface {
	Name() drift.Method
	Description() string
	Score(baseline *drift.Baseline, current []float64, currentStats core.Summary) float64
}

// Engine evaluates all four detection methods against one baseline.
// Methods are read-only and independent, so they run concurrently; the
// caller's aggregator acts as the join barrier.
type Engine struct {
	methods []DetectionMethod
}

// NewEngine creates the method engine with the canonical four methods
func NewEngine() *Engine {
	return &Engine{
		methods: []DetectionMethod{
			NewPSIMethod(),
			NewKSMethod(),
			NewJSDMethod(),
			NewStatisticalMethod(),
		},
	}
}

// ScoreAll runs every method concurrently and returns the full score set
func (e *Engine) ScoreAll(ctx context.Context, baseline *drift.Baseline, current []float64) drift.Scores {
	currentStats := core.Summarize(current)

	results := make([]float64, len(e.methods))
	g, _ := errgroup.WithContext(ctx)
	for i, method := range e.methods {
		g.Go(func() error {
			results[i] = method.Score(baseline, current, currentStats)
			return nil
		})
	}
	// Methods never fail; the group is only a join barrier.
	_ = g.Wait()

	scores := drift.Scores{}
	for i, method := range e.methods {
		switch method.Name() {
		case drift.MethodPSI:
			scores.PSI = results[i]
		case drift.MethodKS:
			scores.KS = results[i]
		case drift.MethodJSD:
			scores.JSD = results[i]
		case drift.MethodStatistical:
			scores.Statistical = results[i]
		}
	}
	return scores
}

// ScoreSingle runs one method by name
func (e *Engine) ScoreSingle(name drift.Method, baseline *drift.Baseline, current []float64) (float64, bool) {
	currentStats := core.Summarize(current)
	for _, method := range e.methods {
		if method.Name() == name {
			return method.Score(baseline, current, currentStats), true
		}
	}
	return 0, false
}

// ListMethods returns the names of all registered methods
func (e *Engine) ListMethods() []drift.Method {
	names := make([]drift.Method, len(e.methods))
	for i, m := range e.methods {
		names[i] = m.Name()
	}
	return names
}

// combinedRange returns the union of the baseline and current ranges,
// the common binning range for the histogram methods.
func combinedRange(baseline *drift.Baseline, currentStats core.Summary) (float64, float64) {
	min := baseline.Statistics.Min
	if currentStats.Min < min {
		min = currentStats.Min
	}
	max := baseline.Statistics.Max
	if currentStats.Max > max {
		max = currentStats.Max
	}
	return min, max
}

// adaptiveBins picks the shared bin count from the smaller sample
func adaptiveBins(baseline *drift.Baseline, current []float64) int {
	n := len(baseline.Data)
	if len(current) < n {
		n = len(current)
	}
	return histogram.AdaptiveBinCount(n)
}
