package config

import (
	"os"
	"strconv"

	"driftwatch/domain/drift"
	"driftwatch/internal/errors"
)

// Config is the complete application configuration: the validated
// engine settings plus adapter wiring.
type Config struct {
	Engine   drift.Config
	Database DatabaseConfig
	Paths    PathConfig
}

// DatabaseConfig holds the optional episode-sink database settings.
// An empty URL means the in-memory sink is used.
type DatabaseConfig struct {
	URL string
}

// PathConfig holds file system paths
type PathConfig struct {
	BaselineFile string
	ReportDir    string
}

// Load reads configuration from environment variables and validates the
// engine settings through drift.NewConfig.
func Load() (*Config, error) {
	engine, err := drift.NewConfig(
		getEnvFloatOrDefault("DRIFT_THRESHOLD", 0.1),
		getEnvIntOrDefault("PREDICTION_WINDOW_DAYS", 7),
		getEnvIntOrDefault("MAX_HISTORY_SIZE", 1000),
		getEnvIntOrDefault("MAX_CACHE_SIZE", drift.DefaultMaxCacheSize),
		drift.Method(getEnvOrDefault("PRIMARY_METHOD", string(drift.DefaultPrimaryMethod))),
		getEnvBoolOrDefault("AUTO_ADAPT", true),
	)
	if err != nil {
		return nil, errors.Wrap(err, "engine configuration invalid")
	}

	return &Config{
		Engine: engine,
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Paths: PathConfig{
			BaselineFile: getEnvOrDefault("BASELINE_FILE", ""),
			ReportDir:    getEnvOrDefault("REPORT_DIR", "."),
		},
	}, nil
}

// Helper functions for environment variable parsing

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
