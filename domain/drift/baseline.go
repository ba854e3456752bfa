package drift

import (
	"sort"
	"time"

	"driftwatch/domain/core"
	"driftwatch/internal/errors"
	"driftwatch/internal/histogram"
)

// minReliableSamples is the baseline size below which downstream methods
// degrade; smaller baselines are accepted with a warning flag.
const minReliableSamples = 3

// Baseline is a validated snapshot of the reference distribution plus
// everything detection needs precomputed: a sorted copy for the KS scan,
// summary statistics, and histograms at the standard bin counts over the
// baseline's own range. Replaced wholesale on every SetBaseline; never
// partially mutated.
type Baseline struct {
	Data       []float64              `json:"data"`
	SortedData []float64              `json:"sorted_data"`
	Statistics core.Summary           `json:"statistics"`
	Histograms map[int][]uint64       `json:"histograms"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`

	// SmallSample is set when the baseline has fewer than three values.
	// Non-fatal: detection still runs, reliability degrades.
	SmallSample bool `json:"small_sample,omitempty"`
}

// ValidateSample checks that data is a non-empty, all-finite numeric
// sample. The offending index is reported for non-finite values.
func ValidateSample(name string, data []float64) error {
	if len(data) == 0 {
		return errors.ValidationErrorf("%s data cannot be empty", name)
	}
	for i, v := range data {
		if !core.IsFinite(v) {
			return errors.ValidationErrorf("%s data contains non-finite value at index %d", name, i)
		}
	}
	return nil
}

// NewBaseline validates data and builds the full snapshot
func NewBaseline(data []float64, metadata map[string]interface{}) (*Baseline, error) {
	if err := ValidateSample("Baseline", data); err != nil {
		return nil, err
	}

	owned := make([]float64, len(data))
	copy(owned, data)

	sorted := make([]float64, len(owned))
	copy(sorted, owned)
	sort.Float64s(sorted)

	summary := core.Summarize(owned)

	histograms := make(map[int][]uint64, len(histogram.StandardBinCounts))
	for _, bins := range histogram.StandardBinCounts {
		histograms[bins] = histogram.Counts(owned, bins, summary.Min, summary.Max)
	}

	return &Baseline{
		Data:        owned,
		SortedData:  sorted,
		Statistics:  summary,
		Histograms:  histograms,
		Metadata:    metadata,
		Timestamp:   time.Now(),
		SmallSample: summary.Count < minReliableSamples,
	}, nil
}

// HistogramFor returns the cached histogram for the given bin count when
// the requested range matches the baseline's own range, recomputing
// otherwise. Detection bins both samples over their combined range, so
// the cache only pays off when the current sample sits inside the
// baseline's bounds.
func (b *Baseline) HistogramFor(bins int, min, max float64) []uint64 {
	if cached, ok := b.Histograms[bins]; ok && min == b.Statistics.Min && max == b.Statistics.Max {
		return cached
	}
	return histogram.Counts(b.Data, bins, min, max)
}
