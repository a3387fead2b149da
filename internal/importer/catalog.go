// Package importer loads the equipment reference table that drives
// machine-size selection: print-cylinder circumferences in the first
// column and paper-roll widths in the second, both in mm. CSV files
// get automatic delimiter detection; Excel files are read from the
// first sheet.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/printhaus/bagbom/internal/model"
	"github.com/xuri/excelize/v2"
)

// DetectCSVDelimiter guesses the delimiter of raw CSV content by
// trying comma, semicolon and tab and keeping whichever yields the
// most rows with a consistent multi-column shape.
func DetectCSVDelimiter(data []byte) rune {
	best := ','
	bestScore := 0
	for _, delim := range []rune{',', ';', '\t'} {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) == 0 || len(records[0]) < 2 {
			continue
		}
		score := 0
		for _, row := range records {
			if len(row) == len(records[0]) {
				score++
			}
		}
		if score > bestScore {
			best = delim
			bestScore = score
		}
	}
	return best
}

// LoadCatalogCSV reads the equipment catalog from a CSV file.
func LoadCatalogCSV(path string) (model.EquipmentCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.EquipmentCatalog{}, fmt.Errorf("reading catalog: %w", err)
	}
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = DetectCSVDelimiter(data)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return model.EquipmentCatalog{}, fmt.Errorf("reading catalog: %w", err)
	}
	return catalogFromRows(rows, path)
}

// LoadCatalogExcel reads the equipment catalog from the first sheet of
// an Excel workbook.
func LoadCatalogExcel(path string) (model.EquipmentCatalog, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return model.EquipmentCatalog{}, fmt.Errorf("opening catalog workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return model.EquipmentCatalog{}, fmt.Errorf("catalog workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return model.EquipmentCatalog{}, fmt.Errorf("reading catalog workbook: %w", err)
	}
	return catalogFromRows(rows, path)
}

// Load picks the loader by file extension: .xlsx goes through excelize,
// everything else is treated as CSV.
func Load(path string) (model.EquipmentCatalog, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return LoadCatalogExcel(path)
	}
	return LoadCatalogCSV(path)
}

// catalogFromRows parses the two size columns. A non-numeric first row
// is treated as a header and skipped; blank cells are ignored.
func catalogFromRows(rows [][]string, source string) (model.EquipmentCatalog, error) {
	var cylinders, rollWidths []float64
	for i, row := range rows {
		cyl, cylOK, err := parseSizeCell(row, 0)
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return model.EquipmentCatalog{}, fmt.Errorf("catalog %s row %d: %w", source, i+1, err)
		}
		roll, rollOK, rollErr := parseSizeCell(row, 1)
		if rollErr != nil {
			if i == 0 {
				continue
			}
			return model.EquipmentCatalog{}, fmt.Errorf("catalog %s row %d: %w", source, i+1, rollErr)
		}
		if cylOK {
			cylinders = append(cylinders, cyl)
		}
		if rollOK {
			rollWidths = append(rollWidths, roll)
		}
	}
	if len(cylinders) == 0 {
		return model.EquipmentCatalog{}, fmt.Errorf("catalog %s contains no cylinder sizes", source)
	}
	if len(rollWidths) == 0 {
		return model.EquipmentCatalog{}, fmt.Errorf("catalog %s contains no paper-roll widths", source)
	}
	return model.NewEquipmentCatalog(cylinders, rollWidths), nil
}

// parseSizeCell reads one size value from a row. Missing or blank
// cells are not an error; the columns may have different lengths.
func parseSizeCell(row []string, idx int) (float64, bool, error) {
	if idx >= len(row) {
		return 0, false, nil
	}
	cell := strings.TrimSpace(row[idx])
	if cell == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid size %q", cell)
	}
	if v <= 0 {
		return 0, false, fmt.Errorf("size must be positive, got %g", v)
	}
	return v, true, nil
}
