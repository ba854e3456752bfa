package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driftwatch/internal/errors"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadColumn_CSV(t *testing.T) {
	path := writeCSV(t, "date,latency_ms,status\n2026-01-01,12.5,ok\n2026-01-02,14,ok\n2026-01-03,9.75,ok\n")

	sample, err := NewSampleReader(path).ReadColumn("latency_ms")
	require.NoError(t, err)
	assert.Equal(t, []float64{12.5, 14, 9.75}, sample)
}

func TestReadColumn_HeaderMatchIsCaseInsensitive(t *testing.T) {
	path := writeCSV(t, "Latency_MS\n1\n2\n")

	sample, err := NewSampleReader(path).ReadColumn("latency_ms")
	require.NoError(t, err)
	assert.Len(t, sample, 2)
}

func TestReadColumn_SkipsBlankCells(t *testing.T) {
	path := writeCSV(t, "value\n1\n\n3\n")

	sample, err := NewSampleReader(path).ReadColumn("value")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, sample)
}

func TestReadColumn_RaggedRowsTolerated(t *testing.T) {
	path := writeCSV(t, "a,value\nx,1\nshort-row\ny,2\n")

	sample, err := NewSampleReader(path).ReadColumn("value")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, sample)
}

func TestReadColumn_NonNumericNamesRow(t *testing.T) {
	path := writeCSV(t, "value\n1\noops\n")

	_, err := NewSampleReader(path).ReadColumn("value")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeValidationError))
	assert.Contains(t, err.Error(), "data row 2")
	assert.Contains(t, err.Error(), `"oops"`)
}

func TestReadColumn_MissingColumn(t *testing.T) {
	path := writeCSV(t, "value\n1\n")

	_, err := NewSampleReader(path).ReadColumn("missing")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))
}

func TestReadColumn_MissingFile(t *testing.T) {
	_, err := NewSampleReader(filepath.Join(t.TempDir(), "nope.csv")).ReadColumn("value")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))
}

func TestReadColumn_HeaderOnly(t *testing.T) {
	path := writeCSV(t, "value\n")

	_, err := NewSampleReader(path).ReadColumn("value")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeValidationError))
}

func TestReadColumn_EmptyColumn(t *testing.T) {
	path := writeCSV(t, "a,value\n1,\n2,\n")

	_, err := NewSampleReader(path).ReadColumn("value")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no numeric values")
}
