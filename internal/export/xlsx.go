package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/ReactorCalc/internal/engine"
	"github.com/piwi3910/ReactorCalc/internal/model"
)

// Workbook sheet names.
const (
	SheetFission = "Fission"
	SheetBoiler  = "Boiler"
	SheetSummary = "Summary"
)

// ExportXLSX writes a workbook with the fission table, the boiler table and
// summary statistics of the sweep.
func ExportXLSX(path string, rows []model.SweepRow) error {
	if len(rows) == 0 {
		return ErrNothingToExport
	}

	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", SheetFission); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	fission := [][]interface{}{}
	for _, r := range rows {
		if !r.HasFission {
			continue
		}
		fission = append(fission, []interface{}{
			r.Dims.Length, r.Dims.Width, r.Dims.Height,
			r.WaterFission.MaxSpeed, r.WaterFission.AssemblyCount,
			r.SodiumFission.MaxSpeed, r.SodiumFission.AssemblyCount,
		})
	}
	if err := writeSheet(f, SheetFission, bold, []string{
		"length", "width", "height", "water_max_speed", "water_assemblies", "sodium_max_speed", "sodium_assemblies",
	}, fission); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetBoiler); err != nil {
		return fmt.Errorf("failed to add sheet %s: %w", SheetBoiler, err)
	}
	boiler := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		d, s := r.DirectBoiler, r.SodiumBoiler
		boiler = append(boiler, []interface{}{
			r.Dims.Length, r.Dims.Width, r.Dims.Height,
			d.SpliterLayer, d.HeatingElement, d.Production,
			s.SpliterLayer, s.HeatingElement, s.Production, s.CoolantConsumption,
		})
	}
	if err := writeSheet(f, SheetBoiler, bold, BoilerCSVHeader, boiler); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("failed to add sheet %s: %w", SheetSummary, err)
	}
	summary := engine.Summarize(rows)
	stats := make([][]interface{}, 0, len(summary.Metrics))
	for _, m := range summary.Metrics {
		stats = append(stats, []interface{}{m.Name, m.Count, m.Mean, m.StdDev, m.Min, m.Max, m.ArgMax.String()})
	}
	if err := writeSheet(f, SheetSummary, bold, []string{
		"metric", "count", "mean", "std_dev", "min", "max", "best_size",
	}, stats); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, headerStyle int, header []string, rows [][]interface{}) error {
	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", lastCol, 16)
}
