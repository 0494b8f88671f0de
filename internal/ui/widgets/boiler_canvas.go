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

// Layer band colors.
var (
	colorWater     = color.NRGBA{R: 66, G: 133, B: 244, A: 220}
	colorHeater    = color.NRGBA{R: 230, G: 81, B: 0, A: 230}
	colorSeparator = color.NRGBA{R: 180, G: 180, B: 180, A: 255}
	colorSteam     = color.NRGBA{R: 225, G: 235, B: 245, A: 255}
)

// BoilerCanvas draws the side view of a boiler, one band per layer, bottom
// layer at the bottom. The heating element share of a water layer is drawn
// as a proportional bar.
type BoilerCanvas struct {
	widget.BaseWidget
	layout    model.BoilerLayout
	maxWidth  float32
	maxHeight float32
}

// NewBoilerCanvas creates a boiler side view fitted into maxW × maxH.
func NewBoilerCanvas(b model.BoilerLayout, maxW, maxH float32) *BoilerCanvas {
	bc := &BoilerCanvas{
		layout:    b,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	bc.ExtendBaseWidget(bc)
	return bc
}

// CreateRenderer implements fyne.Widget.
func (bc *BoilerCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newBoilerCanvasRenderer(bc)
}

type boilerCanvasRenderer struct {
	bc      *BoilerCanvas
	objects []fyne.CanvasObject
}

func newBoilerCanvasRenderer(bc *BoilerCanvas) *boilerCanvasRenderer {
	r := &boilerCanvasRenderer{bc: bc}
	r.rebuild()
	return r
}

func (r *boilerCanvasRenderer) size() (bandH, width float32) {
	h := r.bc.layout.Dims.Height
	if h <= 0 {
		return 0, 0
	}
	return min(r.bc.maxHeight/float32(h), 28), r.bc.maxWidth
}

func (r *boilerCanvasRenderer) rebuild() {
	r.objects = nil

	b := r.bc.layout
	layers := export.BoilerLayers(b)
	if len(layers) == 0 {
		return
	}

	bandH, width := r.size()
	perLayer := (b.Dims.Length - 2) * (b.Dims.Width - 2)
	top := float32(len(layers)) * bandH

	for _, l := range layers {
		y := top - float32(l.Index+1)*bandH

		var fill color.Color
		switch l.Kind {
		case export.BoilerWater:
			fill = colorWater
		case export.BoilerSeparator:
			fill = colorSeparator
		case export.BoilerSteam:
			fill = colorSteam
		default:
			fill = colorCasing
		}

		band := canvas.NewRectangle(fill)
		band.StrokeColor = colorCellLine
		band.StrokeWidth = 1
		band.Resize(fyne.NewSize(width, bandH))
		band.Move(fyne.NewPos(0, y))
		r.objects = append(r.objects, band)

		if l.Heaters > 0 && perLayer > 0 {
			w := width * float32(l.Heaters) / float32(perLayer)
			heaters := canvas.NewRectangle(colorHeater)
			heaters.Resize(fyne.NewSize(w, bandH))
			heaters.Move(fyne.NewPos(0, y))
			r.objects = append(r.objects, heaters)
		}

		text := l.Kind.String()
		if l.Heaters > 0 {
			text = fmt.Sprintf("%d heating elements", l.Heaters)
		}
		if bandH >= 12 {
			label := canvas.NewText(fmt.Sprintf("%2d  %s", l.Index, text), colorCellLabel)
			label.TextSize = min(bandH*0.6, 12)
			label.Move(fyne.NewPos(6, y+(bandH-label.TextSize)/2-1))
			r.objects = append(r.objects, label)
		}
	}
}

func (r *boilerCanvasRenderer) Layout(size fyne.Size) {}
func (r *boilerCanvasRenderer) Refresh()              { r.rebuild(); canvas.Refresh(r.bc) }
func (r *boilerCanvasRenderer) Destroy()              {}
func (r *boilerCanvasRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}
func (r *boilerCanvasRenderer) MinSize() fyne.Size {
	bandH, width := r.size()
	return fyne.NewSize(width, bandH*float32(r.bc.layout.Dims.Height))
}

// RenderBoilerResult shows a boiler layout with its figures.
func RenderBoilerResult(b *model.BoilerLayout) fyne.CanvasObject {
	if b == nil {
		return widget.NewLabel("No results yet. Enter a boiler size, then click Compute.")
	}

	header := widget.NewLabel(fmt.Sprintf("Boiler %s (%s heating)", b.Dims, b.Mode))
	header.TextStyle = fyne.TextStyle{Bold: true}
	items := []fyne.CanvasObject{header}

	if !b.Feasible() {
		warning := widget.NewLabel("WARNING: no boiler layout produces steam at this size.")
		warning.Importance = widget.DangerImportance
		return container.NewVBox(append(items, warning)...)
	}

	items = append(items, NewBoilerCanvas(*b, 420, 360), widget.NewSeparator())

	details := []string{
		fmt.Sprintf("Separator layer: %d", b.SpliterLayer),
		fmt.Sprintf("Heating elements: %d", b.HeatingElement),
		fmt.Sprintf("Water tank: %d mB", b.WaterTank),
		fmt.Sprintf("Steam tank: %d mB", b.SteamTank),
		fmt.Sprintf("Heat rate: %d", b.HeatRate),
	}
	if b.Mode == model.SodiumHeating {
		details = append(details,
			fmt.Sprintf("Coolant tanks: %d mB cooled, %d mB hot", b.CooledCoolantTank, b.HotCoolantTank),
			fmt.Sprintf("Coolant consumption: %d mB/t", b.CoolantConsumption),
		)
	}
	for _, d := range details {
		items = append(items, widget.NewLabel(d))
	}

	production := widget.NewLabel(fmt.Sprintf("Production: %d mB/t", b.Production))
	production.TextStyle = fyne.TextStyle{Bold: true}
	items = append(items, production)

	return container.NewVScroll(container.NewVBox(items...))
}
