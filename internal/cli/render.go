package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/piwi3910/ReactorCalc/internal/engine"
	"github.com/piwi3910/ReactorCalc/internal/model"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func writeBoiler(w io.Writer, d model.Dimensions, mode model.HeatingMode, b model.BoilerLayout) error {
	if !b.Feasible() {
		_, err := fmt.Fprintf(w, "Boiler %s (%s heating): no layout produces steam\n", d, mode)
		return err
	}
	tw := newTable(w)
	fmt.Fprintf(tw, "Boiler\t%s (%s heating)\n", d, mode)
	fmt.Fprintf(tw, "Separator layer\t%d\n", b.SpliterLayer)
	fmt.Fprintf(tw, "Heating elements\t%d\n", b.HeatingElement)
	fmt.Fprintf(tw, "Water tank\t%d mB\n", b.WaterTank)
	fmt.Fprintf(tw, "Steam tank\t%d mB\n", b.SteamTank)
	fmt.Fprintf(tw, "Heat rate\t%d\n", b.HeatRate)
	if mode == model.SodiumHeating {
		fmt.Fprintf(tw, "Cooled coolant tank\t%d mB\n", b.CooledCoolantTank)
		fmt.Fprintf(tw, "Hot coolant tank\t%d mB\n", b.HotCoolantTank)
		fmt.Fprintf(tw, "Coolant consumption\t%d mB/t\n", b.CoolantConsumption)
	}
	fmt.Fprintf(tw, "Production\t%d mB/t\n", b.Production)
	return tw.Flush()
}

func writeFission(w io.Writer, f model.FissionLayout) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Fission reactor\t%s (%s cooling)\n", f.Dims, f.Mode)
	fmt.Fprintf(tw, "Interior\t%dx%dx%d\n", f.Length, f.Width, f.Height)
	fmt.Fprintf(tw, "Assemblies\t%d\n", f.AssemblyCount)
	fmt.Fprintf(tw, "Surface\t%d\n", f.TotalSurface)
	fmt.Fprintf(tw, "Efficiency\t%.4f\n", f.Efficiency)
	fmt.Fprintf(tw, "Max speed\t%.4f\n", f.MaxSpeed)
	fmt.Fprintf(tw, "Removals\t%d\n", f.Removals)
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s", f.Grid)
	return err
}

func writeResults(w io.Writer, results []engine.Result, errs []error) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "LABEL\tSTRUCTURE\tMODE\tSIZE\tRESULT")
	for i, r := range results {
		var result string
		switch {
		case errs[i] != nil:
			result = "error: " + errs[i].Error()
		case r.Boiler != nil && r.Boiler.Feasible():
			result = fmt.Sprintf("separator %d, %d heaters, %d mB/t", r.Boiler.SpliterLayer, r.Boiler.HeatingElement, r.Boiler.Production)
		case r.Boiler != nil:
			result = "infeasible"
		case r.Fission != nil:
			result = fmt.Sprintf("%d assemblies, speed %.2f", r.Fission.AssemblyCount, r.Fission.MaxSpeed)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Job.Label, r.Job.Structure, r.Job.ModeName(), r.Job.Dims, result)
	}
	return tw.Flush()
}

func writeSummary(w io.Writer, s engine.Summary) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Shapes\t%d\n", s.Rows)
	fmt.Fprintf(tw, "Shapes with an infeasible boiler\t%d\n\n", s.InfeasibleBoilers)
	fmt.Fprintln(tw, "METRIC\tCOUNT\tMEAN\tSTD DEV\tMIN\tMAX\tBEST SIZE")
	for _, m := range s.Metrics {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%s\n", m.Name, m.Count, m.Mean, m.StdDev, m.Min, m.Max, m.ArgMax)
	}
	return tw.Flush()
}
