package drift

import (
	"time"
)

// Severity is the ordinal drift bucket derived from the aggregated score
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank orders severities for comparison (none < low < ... < critical)
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 0
	}
}

// Scores holds the raw per-method scores of one detection run.
// PSI and Statistical are unbounded above; KS and JSD live in [0,1].
type Scores struct {
	PSI         float64 `json:"psi"`
	KS          float64 `json:"ks"`
	JSD         float64 `json:"jsd"`
	Statistical float64 `json:"statistical"`
}

// ByMethod returns the score for a named method
func (s Scores) ByMethod(m Method) float64 {
	switch m {
	case MethodPSI:
		return s.PSI
	case MethodKS:
		return s.KS
	case MethodJSD:
		return s.JSD
	case MethodStatistical:
		return s.Statistical
	}
	return 0
}

// MethodVerdict is the informational per-method readout. Its IsDrift flag
// compares the raw score to the unscaled base threshold and never drives
// the final verdict.
type MethodVerdict struct {
	Score   float64 `json:"score"`
	IsDrift bool    `json:"is_drift"`
}

// Result is the outcome of one detection call, JSON-serializable
type Result struct {
	Timestamp     time.Time                `json:"timestamp"`
	IsDrift       bool                     `json:"is_drift"`
	Severity      Severity                 `json:"severity"`
	Scores        Scores                   `json:"scores"`
	Methods       map[Method]MethodVerdict `json:"methods"`
	AverageScore  float64                  `json:"average_score"`
	PrimaryMethod Method                   `json:"primary_method"`
	Cached        bool                     `json:"cached,omitempty"`
	Skipped       bool                     `json:"skipped,omitempty"`
	Reason        string                   `json:"reason,omitempty"`
}

// Clone returns a deep copy so cached results can be reissued with a
// fresh timestamp without aliasing the stored entry.
func (r Result) Clone() Result {
	out := r
	out.Methods = make(map[Method]MethodVerdict, len(r.Methods))
	for m, v := range r.Methods {
		out.Methods[m] = v
	}
	return out
}

// Stats tracks running engine counters
type Stats struct {
	TotalChecks   int64     `json:"total_checks"`
	DriftDetected int64     `json:"drift_detected"`
	ChecksSkipped int64     `json:"checks_skipped"`
	CacheHits     int64     `json:"cache_hits"`
	StartTime     time.Time `json:"start_time"`
}
