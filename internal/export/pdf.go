// Package export writes boiler and fission layouts to spreadsheets, printable
// reports and drawings.
package export

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

// ErrNothingToExport is returned when a report has no layouts.
var ErrNothingToExport = errors.New("nothing to export")

// Report is the content of a PDF report.
type Report struct {
	Title       string
	ProfileName string
	Physics     model.Physics
	Boilers     []model.BoilerLayout
	Fissions    []model.FissionLayout
}

// ReportFromRows collects the layouts of a sweep into a report.
func ReportFromRows(title, profile string, physics model.Physics, rows []model.SweepRow) Report {
	r := Report{Title: title, ProfileName: profile, Physics: physics}
	for _, row := range rows {
		r.Boilers = append(r.Boilers,
			labelBoiler(row.DirectBoiler, row.Dims, model.DirectHeating),
			labelBoiler(row.SodiumBoiler, row.Dims, model.SodiumHeating))
		if row.HasFission {
			r.Fissions = append(r.Fissions, row.WaterFission, row.SodiumFission)
		}
	}
	return r
}

// labelBoiler fills in the size and mode of an infeasible layout so it can be
// listed. Feasible reports false either way.
func labelBoiler(b model.BoilerLayout, d model.Dimensions, mode model.HeatingMode) model.BoilerLayout {
	if !b.Feasible() {
		b.Dims = d
		b.Mode = mode
	}
	return b
}

// rgb is a fill color.
type rgb struct {
	R, G, B int
}

// heightColors shade stacks from short (light) to full height (dark). The
// same ramp is used by the viewer's grid canvas.
var heightColors = []rgb{
	{R: 255, G: 243, B: 224},
	{R: 255, G: 224, B: 178},
	{R: 255, G: 204, B: 128},
	{R: 255, G: 183, B: 77},
	{R: 255, G: 152, B: 0},
	{R: 245, G: 124, B: 0},
	{R: 230, G: 81, B: 0},
}

// HeightColor returns the shade for a stack of height h out of full.
// Empty stacks are white.
func HeightColor(h, full int) (r, g, b int) {
	if h <= 0 || full <= 0 {
		return 255, 255, 255
	}
	i := int(math.Ceil(float64(h)/float64(full)*float64(len(heightColors)))) - 1
	i = min(max(i, 0), len(heightColors)-1)
	c := heightColors[i]
	return c.R, c.G, c.B
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	statsHeight  = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF renders every fission layout on its own page with a top-view
// diagram of the fuel assembly, then a boiler table and a physics summary.
func ExportPDF(path string, report Report) error {
	if len(report.Boilers) == 0 && len(report.Fissions) == 0 {
		return ErrNothingToExport
	}
	if report.Title == "" {
		report.Title = "Reactor Layouts"
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetTitle(report.Title, true)

	for _, f := range report.Fissions {
		pdf.AddPage()
		renderFissionPage(pdf, f)
	}

	if len(report.Boilers) > 0 {
		renderBoilerPages(pdf, report.Boilers)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, report)

	return pdf.OutputFileAndClose(path)
}

// renderFissionPage draws a single fuel assembly on the current page.
func renderFissionPage(pdf *fpdf.Fpdf, f model.FissionLayout) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Fission reactor %s (%s cooling)", f.Dims, f.Mode)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Assemblies: %d | Surface: %d | Efficiency: %.1f%% | Max speed: %.2f | Removed: %d",
		f.AssemblyCount, f.TotalSurface, f.Efficiency*100, f.MaxSpeed, f.Removals)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	if f.Length == 0 || f.Width == 0 {
		return
	}

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - statsHeight

	// Rows run down the page, columns across.
	cell := math.Min(drawWidth/float64(f.Width), drawHeight/float64(f.Length))
	cell = math.Min(cell, 18)
	canvasW := cell * float64(f.Width)
	canvasH := cell * float64(f.Length)
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Casing
	pdf.SetFillColor(120, 120, 120)
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX-cell/4, offsetY-cell/4, canvasW+cell/2, canvasH+cell/2, "FD")

	pdf.SetLineWidth(0.3)
	pdf.SetDrawColor(30, 30, 30)
	for x := 0; x < f.Length; x++ {
		for y := 0; y < f.Width; y++ {
			h := f.Grid.Height(x, y)
			r, g, b := HeightColor(h, f.Height)
			px := offsetX + float64(y)*cell
			py := offsetY + float64(x)*cell
			pdf.SetFillColor(r, g, b)
			pdf.Rect(px, py, cell, cell, "FD")

			if cell >= 6 {
				pdf.SetFont("Helvetica", "", labelFontSize(cell))
				pdf.SetTextColor(0, 0, 0)
				label := fmt.Sprintf("%d", h)
				w := pdf.GetStringWidth(label)
				pdf.SetXY(px+(cell-w)/2, py+cell/2-2)
				pdf.CellFormat(w, 4, label, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, f, offsetX, offsetY, canvasW, canvasH)
	drawHeightLegend(pdf, f.Height, offsetY+canvasH+8)
}

// drawDimensionAnnotations labels the interior width below the grid and the
// interior length to its left.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, f model.FissionLayout, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%d blocks", f.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+2)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	lengthLabel := fmt.Sprintf("%d blocks", f.Length)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-6, offsetY+canvasH/2)
	lLabelW := pdf.GetStringWidth(lengthLabel)
	pdf.SetXY(offsetX-6-lLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(lLabelW, 4, lengthLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawHeightLegend renders one swatch per stack height.
func drawHeightLegend(pdf *fpdf.Fpdf, maxHeight int, startY float64) {
	if maxHeight <= 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Stack height:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	for h := 0; h <= maxHeight; h++ {
		r, g, b := HeightColor(h, maxHeight)
		pdf.SetFillColor(r, g, b)
		pdf.SetDrawColor(30, 30, 30)
		pdf.Rect(xPos, startY+0.5, 3, 3, "FD")
		label := fmt.Sprintf("%d", h)
		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(6, 4, label, "", 0, "L", false, 0, "")
		xPos += 11
	}
}

const boilerRowsPerPage = 24

// renderBoilerPages lists boiler layouts in a table, paging as needed.
func renderBoilerPages(pdf *fpdf.Fpdf, boilers []model.BoilerLayout) {
	colWidths := []float64{30, 22, 25, 25, 40, 45, 40, 40}
	headers := []string{"Size", "Heating", "Separator", "Heaters", "Production", "Coolant use", "Steam tank", "Water tank"}

	var y float64
	for i, b := range boilers {
		if i%boilerRowsPerPage == 0 {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "B", 14)
			pdf.SetXY(marginLeft, marginTop)
			pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Boiler layouts", "", 0, "L", false, 0, "")
			y = drawAreaTop

			pdf.SetFont("Helvetica", "B", 9)
			pdf.SetFillColor(230, 230, 230)
			xPos := marginLeft
			for j, header := range headers {
				pdf.SetXY(xPos, y)
				pdf.CellFormat(colWidths[j], 6, header, "1", 0, "C", true, 0, "")
				xPos += colWidths[j]
			}
			y += 6
			pdf.SetFont("Helvetica", "", 9)
		}

		rowData := boilerCells(b)
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		if !b.Feasible() {
			pdf.SetTextColor(200, 0, 0)
		}
		xPos := marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		pdf.SetTextColor(0, 0, 0)
		y += 6
	}
}

func boilerCells(b model.BoilerLayout) []string {
	if !b.Feasible() {
		return []string{b.Dims.String(), b.Mode.String(), "-", "-", "infeasible", "-", "-", "-"}
	}
	coolant := "-"
	if b.Mode == model.SodiumHeating {
		coolant = fmt.Sprintf("%d", b.CoolantConsumption)
	}
	return []string{
		b.Dims.String(),
		b.Mode.String(),
		fmt.Sprintf("%d", b.SpliterLayer),
		fmt.Sprintf("%d", b.HeatingElement),
		fmt.Sprintf("%d", b.Production),
		coolant,
		fmt.Sprintf("%d", b.SteamTank),
		fmt.Sprintf("%d", b.WaterTank),
	}
}

// renderSummaryPage draws the final page with counts and the physics used.
func renderSummaryPage(pdf *fpdf.Fpdf, report Report) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, report.Title, "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overview", "", 0, "L", false, 0, "")
	y += 9

	infeasible := 0
	for _, b := range report.Boilers {
		if !b.Feasible() {
			infeasible++
		}
	}
	profile := report.ProfileName
	if profile == "" {
		profile = "custom"
	}
	summaryItems := []keyValue{
		{"Physics profile", profile},
		{"Boiler layouts", fmt.Sprintf("%d", len(report.Boilers))},
		{"Infeasible boilers", fmt.Sprintf("%d", infeasible)},
		{"Fission layouts", fmt.Sprintf("%d", len(report.Fissions))},
	}
	y = drawKeyValues(pdf, summaryItems, y, 10)

	y += 5
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Physics", "", 0, "L", false, 0, "")
	y += 9

	p := report.Physics
	physicsItems := []keyValue{
		{"Casing thickness", fmt.Sprintf("%d", p.CasingThickness)},
		{"Water tank per block", fmt.Sprintf("%d mB", p.WaterTankVolume)},
		{"Steam tank per block", fmt.Sprintf("%d mB", p.SteamTankVolume)},
		{"Heater heat rate", fmt.Sprintf("%d", p.HeaterHeatRate)},
		{"Casing heat capacity", fmt.Sprintf("%g", p.CasingHeatCapacity)},
		{"Water cooling rate", fmt.Sprintf("%g", p.WaterCoolingRate)},
		{"Sodium cooling rate", fmt.Sprintf("%g", p.SodiumCoolingRate)},
	}
	drawKeyValues(pdf, physicsItems, y, 9)

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by ReactorCalc", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

type keyValue struct {
	label string
	value string
}

func drawKeyValues(pdf *fpdf.Fpdf, items []keyValue, y, size float64) float64 {
	pdf.SetFont("Helvetica", "", size)
	for _, item := range items {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", size)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", size)
		y += 7
	}
	return y
}

// labelFontSize returns a font size that fits a grid cell of the given side.
func labelFontSize(cell float64) float64 {
	switch {
	case cell > 14:
		return 9
	case cell > 9:
		return 7
	default:
		return 6
	}
}
