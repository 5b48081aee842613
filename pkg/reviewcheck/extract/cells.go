// Package extract reads cell values and embedded picture anchors from
// spreadsheet files.
package extract

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Cells reads the values at the given A1-style addresses from the file at
// path. The sheet parameter selects the worksheet for Excel workbooks; an
// empty string means the first sheet. CSV files ignore it. Blank and
// out-of-range cells yield empty strings, so the result always has one
// entry per requested address.
func Cells(path, sheet string, cells []string) ([]interface{}, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return workbookCells(path, sheet, cells)
	case ".csv":
		return csvCells(path, cells)
	case ".xls":
		return nil, classifyLegacy(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func workbookCells(path, sheet string, cells []string) ([]interface{}, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	name, err := resolveSheet(f, sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	values := make([]interface{}, len(cells))
	for i, cell := range cells {
		raw, err := f.GetCellValue(name, cell)
		if err != nil {
			values[i] = ""
			continue
		}
		values[i] = parseValue(raw)
	}
	return values, nil
}

// resolveSheet maps the configured sheet name to a worksheet that exists
// in the workbook. An empty name selects the first sheet.
func resolveSheet(f *excelize.File, sheet string) (string, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return "", errors.New("workbook has no sheets")
		}
		return sheets[0], nil
	}
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return "", err
	}
	if idx == -1 {
		return "", fmt.Errorf("sheet %q not found", sheet)
	}
	return sheet, nil
}

func csvCells(path string, cells []string) ([]interface{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	values := make([]interface{}, len(cells))
	for i, cell := range cells {
		col, row, err := excelize.CellNameToCoordinates(cell)
		if err != nil {
			return nil, fmt.Errorf("cell %s: %w", cell, err)
		}
		r, c := row-1, col-1
		if r >= len(rows) || c >= len(rows[r]) {
			values[i] = ""
			continue
		}
		values[i] = parseValue(rows[r][c])
	}
	return values, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
