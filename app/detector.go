package app

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"driftwatch/adapters/stats/methods"
	"driftwatch/domain/core"
	"driftwatch/domain/drift"
	"driftwatch/internal"
	"driftwatch/internal/errors"
	"driftwatch/ports"
)

// relativeTolerance is the adaptive-sampling cutoff: when the new
// sample's mean and std are both within this relative distance of the
// previous check, the previous result is reissued instead of recomputed.
const relativeTolerance = 0.05

// DetectOptions controls the per-call shortcuts. Zero value disables
// both; use detector.DefaultOptions() to inherit the configured default.
type DetectOptions struct {
	Memoization      bool // fingerprint cache lookup before computing
	AdaptiveSampling bool // reissue previous result for near-identical input
}

// lastCheck is the snapshot adaptive sampling compares new input against
type lastCheck struct {
	mean   float64
	std    float64
	result drift.Result
}

// Detector orchestrates baseline management, the four detection methods,
// aggregation, caching, history and outcome reporting.
//
// A Detector is not internally synchronized. Concurrent callers must
// serialize access to one instance or use one instance per stream; the
// four methods of a single call still run concurrently internally.
type Detector struct {
	cfg       drift.Config
	engine    *methods.Engine
	sink      ports.EpisodeSink
	logger    *internal.Logger
	sessionID string

	baseline *drift.Baseline
	cache    *resultCache
	history  *History
	last     *lastCheck
	stats    drift.Stats
}

// NewDetector creates a detector from a validated Config. The sink
// receives an episode after every successful SetBaseline and
// DetectDrift; pass an in-memory sink when no collaborator is wired.
func NewDetector(cfg drift.Config, sink ports.EpisodeSink) *Detector {
	return &Detector{
		cfg:       cfg,
		engine:    methods.NewEngine(),
		sink:      sink,
		logger:    internal.DefaultLogger,
		sessionID: uuid.New().String(),
		cache:     newResultCache(cfg.MaxCacheSize),
		history:   NewHistory(cfg.MaxHistorySize),
		stats:     drift.Stats{StartTime: time.Now()},
	}
}

// Config returns the immutable engine configuration
func (d *Detector) Config() drift.Config {
	return d.cfg
}

// SessionID returns the id attached to emitted episodes
func (d *Detector) SessionID() string {
	return d.sessionID
}

// DefaultOptions derives the per-call shortcut flags from AutoAdapt
func (d *Detector) DefaultOptions() DetectOptions {
	return DetectOptions{
		Memoization:      d.cfg.AutoAdapt,
		AdaptiveSampling: d.cfg.AutoAdapt,
	}
}

// SetBaseline validates data and replaces the reference distribution
// wholesale. Cached results and the adaptive-sampling snapshot were
// computed against the old baseline, so both are invalidated here;
// history and counters are retained.
func (d *Detector) SetBaseline(ctx context.Context, data []float64, metadata map[string]interface{}) error {
	baseline, err := drift.NewBaseline(data, metadata)
	if err != nil {
		return err
	}
	if baseline.SmallSample {
		d.logger.Warn("baseline has only %d samples; drift scores will be unreliable", baseline.Statistics.Count)
	}

	d.baseline = baseline
	d.cache = newResultCache(d.cfg.MaxCacheSize)
	d.last = nil

	d.emitEpisode(ctx, ports.Episode{
		SessionID: d.sessionID,
		Task:      "set_baseline",
		Reward:    0.8,
		Success:   true,
		Critique:  fmt.Sprintf("baseline replaced: n=%d mean=%.4f std=%.4f", baseline.Statistics.Count, baseline.Statistics.Mean, baseline.Statistics.Std),
	})
	return nil
}

// Baseline returns the live baseline, or nil before the first SetBaseline
func (d *Detector) Baseline() *drift.Baseline {
	return d.baseline
}

// DetectDrift runs detection with the configured default options
func (d *Detector) DetectDrift(ctx context.Context, current []float64) (drift.Result, error) {
	return d.DetectDriftWithOptions(ctx, current, d.DefaultOptions())
}

// DetectDriftWithOptions compares current data against the baseline.
// Order of shortcuts: memoization first (bit-identical input), then
// adaptive sampling (statistically near-identical input), then the full
// four-method computation.
func (d *Detector) DetectDriftWithOptions(ctx context.Context, current []float64, opts DetectOptions) (drift.Result, error) {
	if d.baseline == nil {
		return drift.Result{}, errors.StateError("Baseline not set: call SetBaseline before DetectDrift")
	}
	if err := drift.ValidateSample("Current", current); err != nil {
		return drift.Result{}, err
	}

	d.stats.TotalChecks++

	if opts.Memoization {
		key := core.Fingerprint(current)
		if cached, ok := d.cache.get(key); ok {
			result := cached.Clone()
			result.Timestamp = time.Now()
			result.Cached = true

			d.stats.CacheHits++
			d.recordVerdict(result)
			d.emitResultEpisode(ctx, result)
			return result, nil
		}
	}

	currentStats := core.Summarize(current)

	if opts.AdaptiveSampling && d.last != nil {
		if withinRelative(currentStats.Mean, d.last.mean, relativeTolerance) &&
			withinRelative(currentStats.Std, d.last.std, relativeTolerance) {
			result := d.last.result.Clone()
			result.Timestamp = time.Now()
			result.Skipped = true
			result.Reason = "input statistics within 5% of previous check"

			d.stats.ChecksSkipped++
			d.recordVerdict(result)
			d.emitResultEpisode(ctx, result)
			return result, nil
		}
	}

	result := d.compute(ctx, current)

	d.cache.put(core.Fingerprint(current), result)
	d.last = &lastCheck{mean: currentStats.Mean, std: currentStats.Std, result: result}
	d.recordVerdict(result)
	d.emitResultEpisode(ctx, result)
	return result, nil
}

// compute runs the four methods and aggregates them into a verdict
func (d *Detector) compute(ctx context.Context, current []float64) drift.Result {
	scores := d.engine.ScoreAll(ctx, d.baseline, current)

	minN := len(d.baseline.Data)
	if len(current) < minN {
		minN = len(current)
	}

	avg, isDrift, severity, methodVerdicts := drift.Aggregate(scores, d.cfg, minN)

	return drift.Result{
		Timestamp:     time.Now(),
		IsDrift:       isDrift,
		Severity:      severity,
		Scores:        scores,
		Methods:       methodVerdicts,
		AverageScore:  avg,
		PrimaryMethod: d.cfg.PrimaryMethod,
	}
}

// recordVerdict appends to history and bumps the drift counter
func (d *Detector) recordVerdict(result drift.Result) {
	d.history.Append(result)
	if result.IsDrift {
		d.stats.DriftDetected++
		d.logger.Info("drift detected: severity=%s avg=%.4f primary=%s", result.Severity, result.AverageScore, result.PrimaryMethod)
	}
}

// emitResultEpisode reports a detection outcome to the sink. Severity
// maps to reward so drift pushes the reward down and stability up.
func (d *Detector) emitResultEpisode(ctx context.Context, result drift.Result) {
	reward := map[drift.Severity]float64{
		drift.SeverityNone:     0.9,
		drift.SeverityLow:      0.6,
		drift.SeverityMedium:   0.4,
		drift.SeverityHigh:     0.2,
		drift.SeverityCritical: 0.1,
	}[result.Severity]

	critique := fmt.Sprintf("drift=%v severity=%s avg=%.4f primary=%s", result.IsDrift, result.Severity, result.AverageScore, result.PrimaryMethod)
	if result.Cached {
		critique += " (cached)"
	}
	if result.Skipped {
		critique += " (skipped: " + result.Reason + ")"
	}

	d.emitEpisode(ctx, ports.Episode{
		SessionID: d.sessionID,
		Task:      "detect_drift",
		Reward:    reward,
		Success:   !result.IsDrift,
		Critique:  critique,
	})
}

// emitEpisode sends to the sink, logging failures instead of failing the
// call: a lost telemetry write must not corrupt a valid result.
func (d *Detector) emitEpisode(ctx context.Context, episode ports.Episode) {
	if d.sink == nil {
		return
	}
	if _, err := d.sink.StoreEpisode(ctx, episode); err != nil {
		d.logger.Error("episode sink rejected %s episode: %v", episode.Task, errors.CollaboratorError("episode sink", err))
	}
}

// Stats returns a copy of the running counters
func (d *Detector) Stats() drift.Stats {
	return d.stats
}

// History exposes the bounded result history
func (d *Detector) History() *History {
	return d.history
}

// CacheSize returns the number of memoized results
func (d *Detector) CacheSize() int {
	return d.cache.len()
}

// withinRelative reports whether a is within tol (relative) of b.
// A zero reference matches only an exactly equal value.
func withinRelative(a, b, tol float64) bool {
	if a == b {
		return true
	}
	if b == 0 {
		return false
	}
	return math.Abs(a-b)/math.Abs(b) <= tol
}
