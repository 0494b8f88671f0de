// Package importer reads job lists from CSV and Excel files. It supports
// automatic delimiter detection, flexible column mapping, and
// case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Jobs     []model.Job
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Label     int
	Structure int
	Length    int
	Width     int
	Height    int
	Mode      int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"label":     {"label", "name", "job", "description", "desc"},
	"structure": {"structure", "type", "kind", "multiblock"},
	"length":    {"length", "len", "l", "x"},
	"width":     {"width", "w", "z"},
	"height":    {"height", "h", "y"},
	"mode":      {"mode", "heating", "cooling", "coolant"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Returns the mapping and true if a header was detected, or the positional
// mapping (structure, length, width, height, mode, label) and false.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Label: -1, Structure: -1, Length: -1, Width: -1, Height: -1, Mode: -1}
	roles := map[string]*int{
		"label":     &mapping.Label,
		"structure": &mapping.Structure,
		"length":    &mapping.Length,
		"width":     &mapping.Width,
		"height":    &mapping.Height,
		"mode":      &mapping.Mode,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					if idx := roles[role]; *idx == -1 {
						*idx = i
					}
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{Structure: 0, Length: 1, Width: 2, Height: 3, Mode: 4, Label: 5}, false
	}
	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a Job from a row using the given column mapping.
// Returns the job, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, physics model.Physics, rowLabel string, jobCount int) (model.Job, string, string) {
	structStr := getCell(row, mapping.Structure)
	if structStr == "" {
		return model.Job{}, fmt.Sprintf("%s: Missing structure value", rowLabel), ""
	}
	structure, err := model.ParseStructure(structStr)
	if err != nil {
		return model.Job{}, fmt.Sprintf("%s: Unknown structure '%s'", rowLabel, structStr), ""
	}

	var sides [3]int
	for i, c := range []struct {
		name string
		idx  int
	}{{"length", mapping.Length}, {"width", mapping.Width}, {"height", mapping.Height}} {
		s := getCell(row, c.idx)
		if s == "" {
			return model.Job{}, fmt.Sprintf("%s: Missing %s value", rowLabel, c.name), ""
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return model.Job{}, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, c.name, s), ""
		}
		sides[i] = v
	}

	job := model.Job{
		Label:     getCell(row, mapping.Label),
		Structure: structure,
		Dims:      model.Dimensions{Length: sides[0], Width: sides[1], Height: sides[2]},
	}
	if job.Label == "" {
		job.Label = fmt.Sprintf("Job %d", jobCount+1)
	}
	if err := job.Validate(physics); err != nil {
		return model.Job{}, fmt.Sprintf("%s: %v", rowLabel, err), ""
	}

	var warning string
	modeStr := getCell(row, mapping.Mode)
	if structure == model.StructureFission {
		mode, err := model.ParseCoolingMode(modeStr)
		if err != nil {
			warning = fmt.Sprintf("%s: Unknown cooling mode '%s', defaulting to %s", rowLabel, modeStr, mode)
		}
		job.Cooling = mode
	} else {
		mode, err := model.ParseHeatingMode(modeStr)
		if err != nil {
			warning = fmt.Sprintf("%s: Unknown heating mode '%s', defaulting to %s", rowLabel, modeStr, mode)
		}
		job.Heating = mode
	}

	return job, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports jobs from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string, physics model.Physics) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, physics, "Line", result.Warnings)
}

// ImportCSVFromReader imports jobs from a CSV reader with a specific delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune, physics model.Physics) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, physics, "Line", nil)
}

// ImportExcel imports jobs from the first sheet of an Excel (.xlsx) file.
func ImportExcel(path string, physics model.Physics) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	return importFromRows(rows, physics, "Row", nil)
}

// ImportFile picks the CSV or Excel importer by file extension.
func ImportFile(path string, physics model.Physics) ImportResult {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xlsm") {
		return ImportExcel(path, physics)
	}
	return ImportCSV(path, physics)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into a job.
func importFromRows(rows [][]string, physics model.Physics, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Structure == -1 {
			missing = append(missing, "Structure")
		}
		if mapping.Length == -1 {
			missing = append(missing, "Length")
		}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 4 {
		// An unrecognized header: the length column is not a number.
		if _, err := strconv.Atoi(strings.TrimSpace(rows[0][1])); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		job, errMsg, warning := parseRow(row, mapping, physics, rowLabel, len(result.Jobs))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		result.Jobs = append(result.Jobs, job)
	}

	return result
}
