package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

// DXF layer names. Rod stacks go on one layer per height so a layer filter
// shows every column that needs the same number of segments.
const (
	LayerCasing = "CASING"
	LayerLabels = "LABELS"
)

// StackLayer returns the layer name for stacks of height h.
func StackLayer(h int) string {
	return fmt.Sprintf("STACK_H%02d", h)
}

// blockSize is the drawing unit per block.
const blockSize = 1.0

// ExportDXF writes a top-view blueprint of a fuel assembly: the casing
// outline, one square per occupied column and its stack height as text.
// One block is one drawing unit; rows run along -Y so row 0 is at the top.
func ExportDXF(path string, f model.FissionLayout) error {
	if f.Length == 0 || f.Width == 0 {
		return ErrNothingToExport
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer(LayerCasing, color.ColorNumber(8), table.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", LayerCasing, err)
	}
	casing := blockSize
	width := float64(f.Width) * blockSize
	length := float64(f.Length) * blockSize
	if err := rect(d, -casing, casing, width+2*casing, length+2*casing); err != nil {
		return err
	}
	if err := rect(d, 0, 0, width, length); err != nil {
		return err
	}

	heights := map[int]bool{}
	for x := 0; x < f.Length; x++ {
		for y := 0; y < f.Width; y++ {
			if h := f.Grid.Height(x, y); h > 0 {
				heights[h] = true
			}
		}
	}
	for h := 1; h <= f.Height; h++ {
		if !heights[h] {
			continue
		}
		if _, err := d.AddLayer(StackLayer(h), color.ColorNumber(1+(h-1)%6), table.LT_CONTINUOUS, false); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", StackLayer(h), err)
		}
	}
	if _, err := d.AddLayer(LayerLabels, color.ColorNumber(7), table.LT_CONTINUOUS, false); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", LayerLabels, err)
	}

	const inset = 0.1 * blockSize
	for x := 0; x < f.Length; x++ {
		for y := 0; y < f.Width; y++ {
			h := f.Grid.Height(x, y)
			if h <= 0 {
				continue
			}
			if err := d.ChangeLayer(StackLayer(h)); err != nil {
				return err
			}
			px := float64(y) * blockSize
			top := -float64(x) * blockSize
			if err := rect(d, px+inset, top-inset, blockSize-2*inset, blockSize-2*inset); err != nil {
				return err
			}
			if err := d.ChangeLayer(LayerLabels); err != nil {
				return err
			}
			if _, err := d.Text(fmt.Sprintf("%d", h), px+0.3*blockSize, top-0.7*blockSize, 0, 0.4*blockSize); err != nil {
				return fmt.Errorf("failed to add label: %w", err)
			}
		}
	}

	if err := d.ChangeLayer(LayerLabels); err != nil {
		return err
	}
	title := fmt.Sprintf("%s %s cooling, max speed %.2f", f.Dims, f.Mode, f.MaxSpeed)
	if _, err := d.Text(title, 0, 2*blockSize, 0, 0.5*blockSize); err != nil {
		return fmt.Errorf("failed to add title: %w", err)
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF: %w", err)
	}
	return nil
}

// rect draws an axis-aligned rectangle whose top-left corner is (x, y)
// with the drawing's Y axis pointing up.
func rect(d *drawing.Drawing, x, y, w, h float64) error {
	corners := [][2]float64{{x, y}, {x + w, y}, {x + w, y - h}, {x, y - h}}
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		if _, err := d.Line(a[0], a[1], 0, b[0], b[1], 0); err != nil {
			return fmt.Errorf("failed to draw line: %w", err)
		}
	}
	return nil
}
