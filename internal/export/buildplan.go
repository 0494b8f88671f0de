package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

// Build plan glyphs.
const (
	glyphRod   = '#'
	glyphEmpty = '.'
)

// WriteFissionPlan writes a layer-by-layer placement plan for a fuel
// assembly, bottom layer first. A column holds a rod on layer k when its
// stack is at least k high.
func WriteFissionPlan(w io.Writer, f model.FissionLayout) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Fission reactor %s (%s cooling)\n", f.Dims, f.Mode)
	fmt.Fprintf(bw, "Assemblies: %d, max speed %.2f, efficiency %.1f%%\n", f.AssemblyCount, f.MaxSpeed, f.Efficiency*100)
	fmt.Fprintf(bw, "Interior %dx%d, %d layers. Rows run along the length.\n", f.Length, f.Width, f.Height)

	for k := 1; k <= f.Height; k++ {
		rods := 0
		var layer []byte
		for x := 0; x < f.Length; x++ {
			layer = append(layer, ' ', ' ')
			for y := 0; y < f.Width; y++ {
				if y > 0 {
					layer = append(layer, ' ')
				}
				if f.Grid.Height(x, y) >= k {
					layer = append(layer, glyphRod)
					rods++
				} else {
					layer = append(layer, glyphEmpty)
				}
			}
			layer = append(layer, '\n')
		}
		fmt.Fprintf(bw, "\nlayer %d: %d rods\n", k, rods)
		bw.Write(layer)
	}
	return bw.Flush()
}

// LayerKind is the role of one horizontal boiler layer.
type LayerKind int

const (
	BoilerCasing LayerKind = iota
	BoilerWater
	BoilerSeparator
	BoilerSteam
)

func (k LayerKind) String() string {
	switch k {
	case BoilerWater:
		return "water"
	case BoilerSeparator:
		return "pressure dispersers (separator)"
	case BoilerSteam:
		return "steam"
	default:
		return "casing"
	}
}

// BoilerLayer describes one layer of a boiler, bottom first.
type BoilerLayer struct {
	Index   int
	Kind    LayerKind
	Heaters int // Heating elements placed on this water layer
}

// BoilerLayers lays out a feasible boiler from the bottom casing to the top
// casing. Heating elements fill the lowest water layers first. An
// infeasible layout has no layers.
func BoilerLayers(b model.BoilerLayout) []BoilerLayer {
	if !b.Feasible() {
		return nil
	}
	perLayer := (b.Dims.Length - 2) * (b.Dims.Width - 2)
	remaining := b.HeatingElement

	layers := []BoilerLayer{{Index: 0, Kind: BoilerCasing}}
	for i := 1; i < b.Dims.Height-1; i++ {
		switch {
		case i < b.SpliterLayer:
			n := min(remaining, perLayer)
			remaining -= n
			layers = append(layers, BoilerLayer{Index: i, Kind: BoilerWater, Heaters: n})
		case i == b.SpliterLayer:
			layers = append(layers, BoilerLayer{Index: i, Kind: BoilerSeparator})
		default:
			layers = append(layers, BoilerLayer{Index: i, Kind: BoilerSteam})
		}
	}
	return append(layers, BoilerLayer{Index: b.Dims.Height - 1, Kind: BoilerCasing})
}

// WriteBoilerPlan writes the vertical arrangement of a boiler: heating
// elements and water below the separator, steam above it.
func WriteBoilerPlan(w io.Writer, b model.BoilerLayout) error {
	bw := bufio.NewWriter(w)
	if !b.Feasible() {
		fmt.Fprintln(bw, "No boiler layout produces steam at this size.")
		return bw.Flush()
	}

	fmt.Fprintf(bw, "Boiler %s (%s heating)\n", b.Dims, b.Mode)
	fmt.Fprintf(bw, "Production: %d mB/t", b.Production)
	if b.Mode == model.SodiumHeating {
		fmt.Fprintf(bw, ", coolant consumption: %d mB/t", b.CoolantConsumption)
	}
	fmt.Fprintln(bw)
	fmt.Fprintln(bw)

	for _, l := range BoilerLayers(b) {
		if l.Heaters > 0 {
			fmt.Fprintf(bw, "layer %2d: %d heating elements, water\n", l.Index, l.Heaters)
		} else {
			fmt.Fprintf(bw, "layer %2d: %s\n", l.Index, l.Kind)
		}
	}
	return bw.Flush()
}

// ExportBuildPlan writes the build plans of a boiler, a fission layout or
// both to one text file. Nil layouts are skipped.
func ExportBuildPlan(path string, boiler *model.BoilerLayout, fission *model.FissionLayout) error {
	if boiler == nil && fission == nil {
		return ErrNothingToExport
	}
	return writeFile(path, func(w io.Writer) error {
		if boiler != nil {
			if err := WriteBoilerPlan(w, *boiler); err != nil {
				return err
			}
			if fission != nil {
				fmt.Fprintln(w)
			}
		}
		if fission != nil {
			return WriteFissionPlan(w, *fission)
		}
		return nil
	})
}
