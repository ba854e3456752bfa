package app

import (
	"time"

	"driftwatch/domain/core"
	"driftwatch/domain/drift"
)

// recentWindow is how many newest entries keep their full Result;
// everything older is compressed down to the summary fields.
const recentWindow = 100

// HistoryEntry is one recorded detection outcome. Entries start full and
// are compressed in place once they age out of the recent window; the
// Compressed marker makes the transformation idempotent and one-way.
type HistoryEntry struct {
	Timestamp    time.Time      `json:"timestamp"`
	IsDrift      bool           `json:"is_drift"`
	Severity     drift.Severity `json:"severity"`
	AverageScore float64        `json:"average_score"`

	// Full result detail, dropped on compression
	Result     *drift.Result `json:"result,omitempty"`
	Compressed bool          `json:"compressed,omitempty"`
}

// History is the bounded, ordered record of past detection results,
// oldest first.
type History struct {
	maxSize int
	entries []HistoryEntry
}

// NewHistory creates a history bounded to maxSize entries
func NewHistory(maxSize int) *History {
	return &History{maxSize: maxSize}
}

// Append records a result, evicts past the bound, and compresses
// entries older than the recent window.
func (h *History) Append(result drift.Result) {
	full := result.Clone()
	h.entries = append(h.entries, HistoryEntry{
		Timestamp:    result.Timestamp,
		IsDrift:      result.IsDrift,
		Severity:     result.Severity,
		AverageScore: result.AverageScore,
		Result:       &full,
	})

	if len(h.entries) > h.maxSize {
		h.entries = h.entries[len(h.entries)-h.maxSize:]
	}

	h.compressOld()
}

// compressOld strips full results from entries beyond the recent window
func (h *History) compressOld() {
	cutoff := len(h.entries) - recentWindow
	for i := 0; i < cutoff; i++ {
		if h.entries[i].Compressed {
			continue
		}
		h.entries[i].Result = nil
		h.entries[i].Compressed = true
	}
}

// Len returns the number of retained entries
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the retained entries, oldest first
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Recent returns up to n newest entries, oldest first
func (h *History) Recent(n int) []HistoryEntry {
	if n > len(h.entries) {
		n = len(h.entries)
	}
	out := make([]HistoryEntry, n)
	copy(out, h.entries[len(h.entries)-n:])
	return out
}

// Trend returns the least-squares slope of average scores across the up
// to n newest entries. A positive slope means drift pressure is rising.
func (h *History) Trend(n int) float64 {
	recent := h.Recent(n)
	scores := make([]float64, len(recent))
	for i, e := range recent {
		scores[i] = e.AverageScore
	}
	return core.TrendSlope(scores)
}
