package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

// showSweepSettingsDialog edits the sweep range and worker count.
func (a *App) showSweepSettingsDialog() {
	s := a.config.Sweep

	intEntry := func(val int) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(strconv.Itoa(val))
		return e
	}

	minLength := intEntry(s.MinLength)
	minWidth := intEntry(s.MinWidth)
	minHeight := intEntry(s.MinHeight)
	maxHeight := intEntry(s.MaxHeight)
	workers := intEntry(s.Workers)

	count := widget.NewLabel("")
	updateCount := func(string) {
		r, err := readSweepRange(minLength, minWidth, minHeight, maxHeight)
		if err != nil || r.Validate() != nil {
			count.SetText("Invalid range")
			return
		}
		count.SetText(fmt.Sprintf("%d shapes", len(r.Dimensions())))
	}
	for _, e := range []*widget.Entry{minLength, minWidth, minHeight, maxHeight} {
		e.OnChanged = updateCount
	}
	updateCount("")

	rangeSection := widget.NewCard("Range",
		"Every height in range, widths up to the height, lengths up to the width",
		container.NewGridWithColumns(2,
			widget.NewLabel("Minimum Length"), minLength,
			widget.NewLabel("Minimum Width"), minWidth,
			widget.NewLabel("Minimum Height"), minHeight,
			widget.NewLabel("Maximum Height"), maxHeight,
			widget.NewLabel("Shapes"), count,
		))

	workerSection := widget.NewCard("Workers", "Shapes computed in parallel (0 = one per CPU)",
		container.NewGridWithColumns(2,
			widget.NewLabel("Workers"), workers,
		))

	content := container.NewVBox(rangeSection, workerSection)

	d := dialog.NewCustomConfirm("Sweep Settings", "Save", "Cancel", content, func(ok bool) {
		if !ok {
			return
		}
		r, err := readSweepRange(minLength, minWidth, minHeight, maxHeight)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(workers.Text))
		if err != nil || n < 0 {
			dialog.ShowError(fmt.Errorf("workers must be a whole number >= 0"), a.window)
			return
		}
		cfg := a.config
		cfg.Sweep = model.SweepConfig{SweepRange: r, Workers: n}
		if err := cfg.Validate(); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.config = cfg
		if err := a.saveConfig(); err != nil {
			dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
		}
	}, a.window)
	d.Resize(fyne.NewSize(460, 420))
	d.Show()
}

func readSweepRange(minLength, minWidth, minHeight, maxHeight *widget.Entry) (model.SweepRange, error) {
	var v [4]int
	for i, e := range []*widget.Entry{minLength, minWidth, minHeight, maxHeight} {
		n, err := strconv.Atoi(strings.TrimSpace(e.Text))
		if err != nil {
			return model.SweepRange{}, fmt.Errorf("%q is not a whole number", e.Text)
		}
		v[i] = n
	}
	return model.SweepRange{MinLength: v[0], MinWidth: v[1], MinHeight: v[2], MaxHeight: v[3]}, nil
}
