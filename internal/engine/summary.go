package engine

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

// Metric summarizes one column of a sweep.
type Metric struct {
	Name   string           `json:"name"`
	Count  int              `json:"count"`
	Mean   float64          `json:"mean"`
	StdDev float64          `json:"std_dev"`
	Min    float64          `json:"min"`
	Max    float64          `json:"max"`
	ArgMax model.Dimensions `json:"arg_max"` // First shape reaching Max
}

// Summary holds the headline statistics of a sweep.
type Summary struct {
	Rows              int      `json:"rows"`
	InfeasibleBoilers int      `json:"infeasible_boilers"`
	Metrics           []Metric `json:"metrics"`
}

// Summarize computes per-column statistics over sweep rows. Infeasible
// boiler layouts are left out of the boiler columns.
func Summarize(rows []model.SweepRow) Summary {
	s := Summary{Rows: len(rows)}

	columns := []struct {
		name  string
		value func(model.SweepRow) (float64, bool)
	}{
		{"direct_production", func(r model.SweepRow) (float64, bool) {
			return float64(r.DirectBoiler.Production), r.DirectBoiler.Feasible()
		}},
		{"sodium_coolant_consumption", func(r model.SweepRow) (float64, bool) {
			return float64(r.SodiumBoiler.CoolantConsumption), r.SodiumBoiler.Feasible()
		}},
		{"water_max_speed", func(r model.SweepRow) (float64, bool) {
			return r.WaterFission.MaxSpeed, r.HasFission
		}},
		{"sodium_max_speed", func(r model.SweepRow) (float64, bool) {
			return r.SodiumFission.MaxSpeed, r.HasFission
		}},
		{"water_efficiency", func(r model.SweepRow) (float64, bool) {
			return r.WaterFission.Efficiency, r.HasFission
		}},
	}

	for _, r := range rows {
		if !r.DirectBoiler.Feasible() || !r.SodiumBoiler.Feasible() {
			s.InfeasibleBoilers++
		}
	}

	for _, c := range columns {
		var values []float64
		var dims []model.Dimensions
		for _, r := range rows {
			if v, ok := c.value(r); ok {
				values = append(values, v)
				dims = append(dims, r.Dims)
			}
		}
		m := Metric{Name: c.name, Count: len(values)}
		if len(values) > 0 {
			m.Mean, m.StdDev = stat.MeanStdDev(values, nil)
			if len(values) == 1 {
				m.StdDev = 0
			}
			m.Min = floats.Min(values)
			m.Max = floats.Max(values)
			m.ArgMax = dims[floats.MaxIdx(values)]
		}
		s.Metrics = append(s.Metrics, m)
	}
	return s
}

// Metric returns the named metric, or false if it is not present.
func (s Summary) Metric(name string) (Metric, bool) {
	for _, m := range s.Metrics {
		if m.Name == name {
			return m, true
		}
	}
	return Metric{}, false
}
