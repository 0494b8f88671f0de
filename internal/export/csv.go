package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

// utf8BOM lets spreadsheet applications detect the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FissionCSVHeader is the column set of the fission table.
var FissionCSVHeader = []string{"length", "width", "height", "water_max_speed", "sodium_max_speed"}

// BoilerCSVHeader is the column set of the boiler table.
var BoilerCSVHeader = []string{
	"length", "width", "height",
	"direct_spliter_layer", "direct_heating_element", "direct_production",
	"sodium_spliter_layer", "sodium_heating_element", "sodium_production",
	"coolant_consumption",
}

// WriteFissionCSV writes one row per swept shape with the max speed of both
// cooling modes. Shapes without a fission interior are skipped.
func WriteFissionCSV(w io.Writer, rows []model.SweepRow) error {
	return writeCSV(w, FissionCSVHeader, rows, func(r model.SweepRow) ([]string, bool) {
		if !r.HasFission {
			return nil, false
		}
		return append(dimsCells(r.Dims),
			formatFloat(r.WaterFission.MaxSpeed),
			formatFloat(r.SodiumFission.MaxSpeed),
		), true
	})
}

// WriteBoilerCSV writes one row per swept shape with the best layout of both
// heating modes. Infeasible layouts are written as zeros.
func WriteBoilerCSV(w io.Writer, rows []model.SweepRow) error {
	return writeCSV(w, BoilerCSVHeader, rows, func(r model.SweepRow) ([]string, bool) {
		d, s := r.DirectBoiler, r.SodiumBoiler
		return append(dimsCells(r.Dims),
			strconv.Itoa(d.SpliterLayer),
			strconv.Itoa(d.HeatingElement),
			strconv.FormatInt(d.Production, 10),
			strconv.Itoa(s.SpliterLayer),
			strconv.Itoa(s.HeatingElement),
			strconv.FormatInt(s.Production, 10),
			strconv.FormatInt(s.CoolantConsumption, 10),
		), true
	})
}

func writeCSV(w io.Writer, header []string, rows []model.SweepRow, record func(model.SweepRow) ([]string, bool)) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range rows {
		rec, ok := record(r)
		if !ok {
			continue
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("failed to write row %s: %w", r.Dims, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFissionCSV writes the fission table to path.
func ExportFissionCSV(path string, rows []model.SweepRow) error {
	return writeFile(path, func(w io.Writer) error { return WriteFissionCSV(w, rows) })
}

// ExportBoilerCSV writes the boiler table to path.
func ExportBoilerCSV(path string, rows []model.SweepRow) error {
	return writeFile(path, func(w io.Writer) error { return WriteBoilerCSV(w, rows) })
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func dimsCells(d model.Dimensions) []string {
	return []string{strconv.Itoa(d.Length), strconv.Itoa(d.Width), strconv.Itoa(d.Height)}
}

// formatFloat prints the shortest representation, "1" rather than "1.0".
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
