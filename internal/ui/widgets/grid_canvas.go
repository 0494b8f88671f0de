package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/ReactorCalc/internal/export"
	"github.com/piwi3910/ReactorCalc/internal/model"
)

var (
	colorCasing    = color.NRGBA{R: 96, G: 96, B: 104, A: 255}
	colorCellLine  = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	colorCellLabel = color.NRGBA{R: 20, G: 20, B: 20, A: 255}
)

// GridCanvas renders the top view of a fuel assembly. Each interior column
// is shaded by its rod stack height and labelled with it.
type GridCanvas struct {
	widget.BaseWidget
	layout    model.FissionLayout
	maxWidth  float32
	maxHeight float32
}

func NewGridCanvas(f model.FissionLayout, maxW, maxH float32) *GridCanvas {
	gc := &GridCanvas{
		layout:    f,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	gc.ExtendBaseWidget(gc)
	return gc
}

// SetLayout replaces the rendered layout.
func (gc *GridCanvas) SetLayout(f model.FissionLayout) {
	gc.layout = f
	gc.Refresh()
}

func (gc *GridCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newGridCanvasRenderer(gc)
}

// cellSize fits the footprint plus a one-cell casing ring into the bounds.
func (gc *GridCanvas) cellSize() float32 {
	cols := float32(gc.layout.Length + 2)
	rows := float32(gc.layout.Width + 2)
	if cols <= 2 || rows <= 2 {
		return 0
	}
	return min(gc.maxWidth/cols, gc.maxHeight/rows)
}

type gridCanvasRenderer struct {
	gc      *GridCanvas
	objects []fyne.CanvasObject
}

func newGridCanvasRenderer(gc *GridCanvas) *gridCanvasRenderer {
	r := &gridCanvasRenderer{gc: gc}
	r.rebuild()
	return r
}

func (r *gridCanvasRenderer) rebuild() {
	r.objects = nil

	f := r.gc.layout
	cell := r.gc.cellSize()
	if cell == 0 {
		return
	}

	canvasW := float32(f.Length+2) * cell
	canvasH := float32(f.Width+2) * cell

	casing := canvas.NewRectangle(colorCasing)
	casing.Resize(fyne.NewSize(canvasW, canvasH))
	r.objects = append(r.objects, casing)

	for x := 0; x < f.Length; x++ {
		for y := 0; y < f.Width; y++ {
			h := f.Grid.Height(x, y)
			red, green, blue := export.HeightColor(h, f.Height)
			px := float32(x+1) * cell
			py := float32(y+1) * cell

			rect := canvas.NewRectangle(color.NRGBA{R: uint8(red), G: uint8(green), B: uint8(blue), A: 255})
			rect.StrokeColor = colorCellLine
			rect.StrokeWidth = 1
			rect.Resize(fyne.NewSize(cell, cell))
			rect.Move(fyne.NewPos(px, py))
			r.objects = append(r.objects, rect)

			if cell >= 16 {
				label := canvas.NewText(fmt.Sprintf("%d", h), colorCellLabel)
				label.TextSize = min(cell/2, 14)
				label.Alignment = fyne.TextAlignCenter
				label.Resize(fyne.NewSize(cell, cell))
				label.Move(fyne.NewPos(px, py))
				r.objects = append(r.objects, label)
			}
		}
	}
}

func (r *gridCanvasRenderer) Layout(size fyne.Size)        {}
func (r *gridCanvasRenderer) Refresh()                     { r.rebuild(); canvas.Refresh(r.gc) }
func (r *gridCanvasRenderer) Destroy()                     {}
func (r *gridCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *gridCanvasRenderer) MinSize() fyne.Size {
	cell := r.gc.cellSize()
	return fyne.NewSize(float32(r.gc.layout.Length+2)*cell, float32(r.gc.layout.Width+2)*cell)
}

// RenderFissionResult shows a fission layout with its figures.
func RenderFissionResult(f *model.FissionLayout) fyne.CanvasObject {
	if f == nil {
		return widget.NewLabel("No results yet. Enter a reactor size, then click Compute.")
	}

	header := widget.NewLabel(fmt.Sprintf("Fission reactor %s (%s cooling)", f.Dims, f.Mode))
	header.TextStyle = fyne.TextStyle{Bold: true}

	items := []fyne.CanvasObject{header}
	if f.AssemblyCount == 0 {
		warning := widget.NewLabel("WARNING: no fuel assembly fits this chamber.")
		warning.Importance = widget.DangerImportance
		items = append(items, warning)
	} else {
		items = append(items, NewGridCanvas(*f, 480, 480))
	}

	summary := widget.NewLabel(fmt.Sprintf(
		"Assemblies: %d | Surface: %d | Efficiency: %.3f | Max speed: %.2f | Removed: %d",
		f.AssemblyCount, f.TotalSurface, f.Efficiency, f.MaxSpeed, f.Removals,
	))
	summary.TextStyle = fyne.TextStyle{Bold: true}
	items = append(items, widget.NewSeparator(), summary)

	return container.NewVScroll(container.NewVBox(items...))
}
