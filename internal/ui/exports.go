package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/ReactorCalc/internal/export"
)

// exportTarget is one entry of the export dialog.
type exportTarget struct {
	label    string
	fileName string
	write    func(path string) error
}

// exportTargets lists what can be exported from the current state: the
// layouts on screen and the loaded sweep.
func (a *App) exportTargets() []exportTarget {
	var targets []exportTarget

	if a.boiler != nil || a.fission != nil {
		current := export.Report{Title: "ReactorCalc layouts", ProfileName: a.profileSelect.Selected}
		current.Physics = a.physics(current.ProfileName)
		if a.boiler != nil && a.boiler.Feasible() {
			current.Boilers = append(current.Boilers, *a.boiler)
		}
		if a.fission != nil {
			current.Fissions = append(current.Fissions, *a.fission)
		}
		targets = append(targets,
			exportTarget{"Layout report (PDF)", "layout.pdf", func(p string) error { return export.ExportPDF(p, current) }},
			exportTarget{"Layout cards (PDF)", "layout-cards.pdf", func(p string) error { return export.ExportLayoutCards(p, current) }},
			exportTarget{"Build plan (TXT)", "build-plan.txt", func(p string) error { return export.ExportBuildPlan(p, a.boiler, a.fission) }},
		)
		if a.fission != nil {
			f := *a.fission
			targets = append(targets, exportTarget{"Fission blueprint (DXF)", "fission.dxf", func(p string) error { return export.ExportDXF(p, f) }})
		}
	}

	if a.study != nil && len(a.study.Rows) > 0 {
		s := *a.study
		report := export.ReportFromRows(s.Name, s.ProfileName, s.Physics, s.Rows)
		targets = append(targets,
			exportTarget{"Sweep workbook (XLSX)", "sweep.xlsx", func(p string) error { return export.ExportXLSX(p, s.Rows) }},
			exportTarget{"Sweep fission table (CSV)", "fission.csv", func(p string) error { return export.ExportFissionCSV(p, s.Rows) }},
			exportTarget{"Sweep boiler table (CSV)", "boiler.csv", func(p string) error { return export.ExportBoilerCSV(p, s.Rows) }},
			exportTarget{"Sweep report (PDF)", "sweep.pdf", func(p string) error { return export.ExportPDF(p, report) }},
			exportTarget{"Sweep cards (PDF)", "sweep-cards.pdf", func(p string) error { return export.ExportLayoutCards(p, report) }},
		)
	}
	return targets
}

// showExportDialog lets the user pick an export and a destination file.
func (a *App) showExportDialog() {
	targets := a.exportTargets()
	if len(targets) == 0 {
		dialog.ShowInformation("Nothing to export", "Compute a layout or run a sweep first.", a.window)
		return
	}

	var d dialog.Dialog
	buttons := container.NewVBox()
	for _, t := range targets {
		buttons.Add(widget.NewButton(t.label, func() {
			d.Hide()
			a.saveExport(t)
		}))
	}
	d = dialog.NewCustom("Export", "Close", buttons, a.window)
	d.Resize(fyne.NewSize(360, 0))
	d.Show()
}

func (a *App) saveExport(t exportTarget) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := t.write(path); err != nil {
			if errors.Is(err, export.ErrNothingToExport) {
				dialog.ShowInformation("Nothing to export", "The selected export has no feasible layouts.", a.window)
				return
			}
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete", fmt.Sprintf("%s saved to %s", t.label, path), a.window)
	}, a.window)
	d.SetFileName(t.fileName)
	d.Show()
}
