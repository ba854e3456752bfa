package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driftwatch/domain/drift"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, drift.DefaultConfig(), cfg.Engine)
	assert.Empty(t, cfg.Database.URL)
	assert.Equal(t, ".", cfg.Paths.ReportDir)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DRIFT_THRESHOLD", "0.25")
	t.Setenv("PREDICTION_WINDOW_DAYS", "14")
	t.Setenv("MAX_HISTORY_SIZE", "50")
	t.Setenv("PRIMARY_METHOD", "ks")
	t.Setenv("AUTO_ADAPT", "false")
	t.Setenv("DATABASE_URL", "postgres://localhost/drift")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.25, cfg.Engine.DriftThreshold)
	assert.Equal(t, 14, cfg.Engine.PredictionWindow)
	assert.Equal(t, 50, cfg.Engine.MaxHistorySize)
	assert.Equal(t, drift.MethodKS, cfg.Engine.PrimaryMethod)
	assert.False(t, cfg.Engine.AutoAdapt)
	assert.Equal(t, "postgres://localhost/drift", cfg.Database.URL)
}

func TestLoad_InvalidThresholdRejected(t *testing.T) {
	t.Setenv("DRIFT_THRESHOLD", "1.5")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("PREDICTION_WINDOW_DAYS", "not-a-number")
	t.Setenv("AUTO_ADAPT", "maybe")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Engine.PredictionWindow)
	assert.True(t, cfg.Engine.AutoAdapt)
}
