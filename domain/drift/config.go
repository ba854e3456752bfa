package drift

import (
	"driftwatch/internal/errors"
)

// Method identifies one of the four drift detection methods
type Method string

const (
	MethodPSI         Method = "psi"
	MethodKS          Method = "ks"
	MethodJSD         Method = "jsd"
	MethodStatistical Method = "statistical"
)

// Methods lists all detection methods in canonical order
var Methods = []Method{MethodPSI, MethodKS, MethodJSD, MethodStatistical}

// IsValid reports whether m names a known detection method
func (m Method) IsValid() bool {
	switch m {
	case MethodPSI, MethodKS, MethodJSD, MethodStatistical:
		return true
	}
	return false
}

const (
	DefaultMaxCacheSize  = 100
	DefaultPrimaryMethod = MethodPSI
)

// Config holds constructor-time engine settings. Built once via
// NewConfig and immutable afterwards; there is no runtime mutation path.
type Config struct {
	DriftThreshold   float64 `json:"drift_threshold"`   // base verdict threshold, (0,1]
	PredictionWindow int     `json:"prediction_window"` // days; validated here, consumed by forecasting callers
	MaxHistorySize   int     `json:"max_history_size"`  // bounded result history
	MaxCacheSize     int     `json:"max_cache_size"`    // LRU result cache capacity
	PrimaryMethod    Method  `json:"primary_method"`    // method weighted highest in aggregation
	AutoAdapt        bool    `json:"auto_adapt"`        // default for per-call cache/sampling shortcuts
}

// NewConfig validates settings and fills defaults. Invalid values fail
// construction with a CONFIG_INVALID error.
func NewConfig(driftThreshold float64, predictionWindow, maxHistorySize, maxCacheSize int, primary Method, autoAdapt bool) (Config, error) {
	if driftThreshold <= 0 || driftThreshold > 1 {
		return Config{}, errors.ConfigInvalid("drift threshold must be in (0, 1]")
	}
	if predictionWindow < 1 {
		return Config{}, errors.ConfigInvalid("prediction window must be at least 1 day")
	}
	if maxHistorySize < 1 {
		return Config{}, errors.ConfigInvalid("max history size must be at least 1")
	}
	if maxCacheSize <= 0 {
		maxCacheSize = DefaultMaxCacheSize
	}
	if primary == "" {
		primary = DefaultPrimaryMethod
	}
	if !primary.IsValid() {
		return Config{}, errors.ConfigInvalid("primary method must be one of psi, ks, jsd, statistical")
	}

	return Config{
		DriftThreshold:   driftThreshold,
		PredictionWindow: predictionWindow,
		MaxHistorySize:   maxHistorySize,
		MaxCacheSize:     maxCacheSize,
		PrimaryMethod:    primary,
		AutoAdapt:        autoAdapt,
	}, nil
}

// DefaultConfig returns the stock configuration used when callers have
// no environment overrides.
func DefaultConfig() Config {
	cfg, _ := NewConfig(0.1, 7, 1000, DefaultMaxCacheSize, DefaultPrimaryMethod, true)
	return cfg
}
