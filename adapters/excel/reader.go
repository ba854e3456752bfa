package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"driftwatch/internal/errors"
)

// SampleReader loads one numeric column from an Excel or CSV file into a
// []float64 sample suitable for SetBaseline / DetectDrift.
type SampleReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewSampleReader creates a reader that handles both Excel and CSV files
func NewSampleReader(filePath string) *SampleReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &SampleReader{filePath: filePath, fileType: fileType}
}

// ReadColumn reads the named column (matched against the header row,
// case-insensitive) as a numeric sample. Blank cells are skipped;
// non-numeric cells fail with a validation error naming the row.
func (r *SampleReader) ReadColumn(column string) ([]float64, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.NotFound(fmt.Sprintf("sample file %s", r.filePath))
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	default:
		rows, err = r.readExcelRows()
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, errors.ValidationError("sample file must have a header row and at least one data row")
	}

	colIdx := -1
	for i, header := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(header), column) {
			colIdx = i
			break
		}
	}
	if colIdx < 0 {
		return nil, errors.NotFound(fmt.Sprintf("column %q", column))
	}

	sample := make([]float64, 0, len(rows)-1)
	for rowNum, row := range rows[1:] {
		if colIdx >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[colIdx])
		if cell == "" {
			continue
		}
		value, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, errors.ValidationErrorf("column %q has non-numeric value %q at data row %d", column, cell, rowNum+1)
		}
		sample = append(sample, value)
	}

	if len(sample) == 0 {
		return nil, errors.ValidationErrorf("column %q contains no numeric values", column)
	}
	return sample, nil
}

// readExcelRows reads all rows of Sheet1
func (r *SampleReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Excel file")
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read Sheet1")
	}
	return rows, nil
}

// readCSVRows reads all CSV records
func (r *SampleReader) readCSVRows() ([][]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open CSV file")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse CSV file")
	}
	return rows, nil
}
