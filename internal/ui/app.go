package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/piwi3910/ReactorCalc/internal/engine"
	jobimporter "github.com/piwi3910/ReactorCalc/internal/importer"
	"github.com/piwi3910/ReactorCalc/internal/model"
	"github.com/piwi3910/ReactorCalc/internal/project"
	"github.com/piwi3910/ReactorCalc/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	app     fyne.App
	window  fyne.Window
	config  model.AppConfig
	theme   *ReactorTheme
	history *History
	logger  *zap.Logger

	shown   *Inputs // Inputs of the layouts on screen
	boiler  *model.BoilerLayout
	fission *model.FissionLayout
	study   *model.Study
	jobs    []engine.Result

	sweepCancel context.CancelFunc

	tabs *container.AppTabs

	// Form inputs
	lengthEntry   *widget.Entry
	widthEntry    *widget.Entry
	heightEntry   *widget.Entry
	heatingSelect *widget.Select
	coolingSelect *widget.Select
	profileSelect *widget.Select

	// UI references for dynamic updates
	boilerContainer  *fyne.Container
	fissionContainer *fyne.Container
	sweepContainer   *fyne.Container
	jobsContainer    *fyne.Container
	sweepProgress    *widget.ProgressBar
	status           *widget.Label
}

// NewApp creates the viewer state. Custom physics profiles are loaded from
// the default location; a load failure leaves only the built-in ones.
func NewApp(application fyne.App, window fyne.Window, cfg model.AppConfig, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		app:     application,
		window:  window,
		config:  cfg,
		theme:   NewReactorTheme(cfg.Theme),
		history: NewHistory(),
		logger:  logger,
	}
	application.Settings().SetTheme(a.theme)

	profiles, err := project.LoadPhysicsProfilesFromDefault()
	if err != nil {
		logger.Warn("loading custom physics profiles", zap.Error(err))
	}
	model.CustomPhysicsProfiles = profiles
	return a
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Study...", a.openStudy),
		fyne.NewMenuItem("Save Study...", a.saveStudy),
		a.recentStudiesMenu(),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Jobs...", a.importJobs),
		fyne.NewMenuItem("Open Blueprint...", a.openBlueprint),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export...", a.showExportDialog),
		fyne.NewMenuItem("Backup / Restore...", a.showImportExportDialog),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", a.undo),
		fyne.NewMenuItem("Redo", a.redo),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings...", a.showSettingsDialog),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Compute", a.compute),
		fyne.NewMenuItem("Run Sweep", func() {
			a.runSweep()
			a.tabs.SelectIndex(2)
		}),
		fyne.NewMenuItem("Sweep Settings...", a.showSweepSettingsDialog),
		fyne.NewMenuItem("Physics Profiles...", a.showProfileManager),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", a.showAboutDialog),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, helpMenu))

	canvas := a.window.Canvas()
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { a.undo() })
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { a.redo() })
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyReturn, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { a.compute() })
}

func (a *App) recentStudiesMenu() *fyne.MenuItem {
	item := fyne.NewMenuItem("Recent Studies", nil)
	var children []*fyne.MenuItem
	for _, path := range a.config.RecentStudies {
		children = append(children, fyne.NewMenuItem(path, func() {
			a.loadStudyFrom(path)
		}))
	}
	if len(children) == 0 {
		disabled := fyne.NewMenuItem("(none)", nil)
		disabled.Disabled = true
		children = append(children, disabled)
	}
	item.ChildMenu = fyne.NewMenu("", children...)
	return item
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About ReactorCalc",
		"ReactorCalc: boiler and fission reactor layout optimizer\n\n"+
			"Finds the separator height and heating element count that\n"+
			"maximize boiler steam output, and the fuel assembly arrangement\n"+
			"a fission chamber can keep cool.\n\n"+
			"Version 0.1.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.boilerContainer = container.NewStack(widgets.RenderBoilerResult(nil))
	a.fissionContainer = container.NewStack(widgets.RenderFissionResult(nil))

	a.tabs = container.NewAppTabs(
		container.NewTabItem("Boiler", a.boilerContainer),
		container.NewTabItem("Fission", a.fissionContainer),
		container.NewTabItem("Sweep", a.buildSweepPanel()),
		container.NewTabItem("Jobs", a.buildJobsPanel()),
	)
	a.tabs.SetTabLocation(container.TabLocationTop)

	a.status = widget.NewLabel("")

	root := container.NewBorder(
		a.buildInputPanel(),
		a.status,
		nil, nil,
		a.tabs,
	)
	return withToolTipLayer(root, a.window.Canvas())
}

// ─── Input Panel ───────────────────────────────────────────

func (a *App) buildInputPanel() fyne.CanvasObject {
	newSideEntry := func(placeholder, value string) *widget.Entry {
		e := widget.NewEntry()
		e.SetPlaceHolder(placeholder)
		e.SetText(value)
		e.Validator = func(text string) error {
			if _, err := strconv.Atoi(strings.TrimSpace(text)); err != nil {
				return fmt.Errorf("whole number of blocks")
			}
			return nil
		}
		return e
	}
	a.lengthEntry = newSideEntry("Length", "5")
	a.widthEntry = newSideEntry("Width", "4")
	a.heightEntry = newSideEntry("Height", "6")

	a.heatingSelect = widget.NewSelect([]string{model.DirectHeating.String(), model.SodiumHeating.String()}, nil)
	a.heatingSelect.SetSelected(model.DirectHeating.String())

	a.coolingSelect = widget.NewSelect([]string{model.WaterCooling.String(), model.SodiumCooling.String()}, nil)
	a.coolingSelect.SetSelected(model.WaterCooling.String())

	a.profileSelect = widget.NewSelect(model.PhysicsProfileNames(), nil)
	a.profileSelect.SetSelected(model.GetPhysicsProfile(a.config.Profile).Name)

	computeBtn := widget.NewButtonWithIcon("Compute", theme.MediaPlayIcon(), a.compute)
	computeBtn.Importance = widget.HighImportance

	toolbar := container.NewHBox(
		newIconButtonWithTooltip(theme.ContentUndoIcon(), "Undo (Ctrl+Z)", a.undo),
		newIconButtonWithTooltip(theme.ContentRedoIcon(), "Redo (Ctrl+Y)", a.redo),
		newIconButtonWithTooltip(theme.SettingsIcon(), "Physics profiles", a.showProfileManager),
		newIconButtonWithTooltip(theme.DocumentSaveIcon(), "Export", a.showExportDialog),
	)

	form := container.NewHBox(
		widget.NewLabel("L"), container.NewGridWrap(fyne.NewSize(60, a.lengthEntry.MinSize().Height), a.lengthEntry),
		widget.NewLabel("W"), container.NewGridWrap(fyne.NewSize(60, a.widthEntry.MinSize().Height), a.widthEntry),
		widget.NewLabel("H"), container.NewGridWrap(fyne.NewSize(60, a.heightEntry.MinSize().Height), a.heightEntry),
		widget.NewSeparator(),
		widget.NewLabel("Heating"), a.heatingSelect,
		widget.NewLabel("Cooling"), a.coolingSelect,
		widget.NewLabel("Profile"), a.profileSelect,
	)

	return container.NewVBox(
		container.NewHBox(form, layout.NewSpacer(), toolbar, computeBtn),
		widget.NewSeparator(),
	)
}

// readInputs parses the form. Side lengths must be integers; range checks
// are left to the optimizers.
func (a *App) readInputs() (Inputs, error) {
	var sides [3]int
	for i, e := range []*widget.Entry{a.lengthEntry, a.widthEntry, a.heightEntry} {
		v, err := strconv.Atoi(strings.TrimSpace(e.Text))
		if err != nil {
			return Inputs{}, fmt.Errorf("%w: %q is not a whole number", model.ErrInvalidDimensions, e.Text)
		}
		sides[i] = v
	}
	heating, err := model.ParseHeatingMode(a.heatingSelect.Selected)
	if err != nil {
		return Inputs{}, err
	}
	cooling, err := model.ParseCoolingMode(a.coolingSelect.Selected)
	if err != nil {
		return Inputs{}, err
	}
	return Inputs{
		Dims:    model.Dimensions{Length: sides[0], Width: sides[1], Height: sides[2]},
		Heating: heating,
		Cooling: cooling,
		Profile: a.profileSelect.Selected,
	}, nil
}

func (a *App) applyInputs(in Inputs) {
	a.lengthEntry.SetText(strconv.Itoa(in.Dims.Length))
	a.widthEntry.SetText(strconv.Itoa(in.Dims.Width))
	a.heightEntry.SetText(strconv.Itoa(in.Dims.Height))
	a.heatingSelect.SetSelected(in.Heating.String())
	a.coolingSelect.SetSelected(in.Cooling.String())
	a.profileSelect.SetSelected(in.Profile)
}

// physics resolves the constants for the selected profile, honoring the
// custom physics override from the settings.
func (a *App) physics(profile string) model.Physics {
	if a.config.UseCustomPhysics {
		return a.config.Physics
	}
	return model.GetPhysicsProfile(profile).Physics
}

// ─── Actions ───────────────────────────────────────────────

func (a *App) compute() {
	in, err := a.readInputs()
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	if a.shown != nil && *a.shown != in {
		a.history.Push(MakeSnapshot(*a.shown, "Compute "+a.shown.Dims.String()))
	}
	a.run(in)
}

func (a *App) run(in Inputs) {
	opt := engine.New(a.physics(in.Profile))

	boiler, err := opt.OptimizeBoiler(in.Dims, in.Heating)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	boiler.Dims = in.Dims
	boiler.Mode = in.Heating
	a.boiler = &boiler

	a.fission = nil
	if fission, err := opt.OptimizeFission(in.Dims, in.Cooling); err == nil {
		a.fission = &fission
	} else {
		a.logger.Debug("fission skipped", zap.Stringer("dims", in.Dims), zap.Error(err))
	}

	a.shown = &in
	a.refreshResults()
	a.setStatus(fmt.Sprintf("Computed %s with profile %s", in.Dims, in.Profile))
}

func (a *App) undo() {
	if a.shown == nil {
		return
	}
	snap, ok := a.history.Undo(MakeSnapshot(*a.shown, "Current"))
	if !ok {
		return
	}
	a.applyInputs(snap.Inputs)
	a.run(snap.Inputs)
	a.setStatus("Undo: " + snap.Label)
}

func (a *App) redo() {
	if a.shown == nil {
		return
	}
	snap, ok := a.history.Redo(MakeSnapshot(*a.shown, "Current"))
	if !ok {
		return
	}
	a.applyInputs(snap.Inputs)
	a.run(snap.Inputs)
	a.setStatus("Redo: " + snap.Label)
}

func (a *App) refreshResults() {
	a.boilerContainer.RemoveAll()
	a.boilerContainer.Add(widgets.RenderBoilerResult(a.boiler))
	a.boilerContainer.Refresh()

	a.fissionContainer.RemoveAll()
	if a.fission == nil && a.boiler != nil {
		a.fissionContainer.Add(widget.NewLabel(fmt.Sprintf(
			"The interior of %s does not fit the fuel assembly grid.", a.boiler.Dims)))
	} else {
		a.fissionContainer.Add(widgets.RenderFissionResult(a.fission))
	}
	a.fissionContainer.Refresh()
}

func (a *App) setStatus(text string) {
	a.status.SetText(text)
}

// ─── Sweep Panel ───────────────────────────────────────────

func (a *App) buildSweepPanel() fyne.CanvasObject {
	a.sweepContainer = container.NewStack(widget.NewLabel("No sweep yet. Use Tools > Run Sweep."))
	a.sweepProgress = widget.NewProgressBar()
	a.sweepProgress.Hide()

	runBtn := widget.NewButtonWithIcon("Run Sweep", theme.MediaPlayIcon(), a.runSweep)
	cancelBtn := widget.NewButtonWithIcon("Cancel", theme.CancelIcon(), func() {
		if a.sweepCancel != nil {
			a.sweepCancel()
		}
	})

	return container.NewBorder(
		container.NewVBox(
			container.NewHBox(
				widget.NewLabelWithStyle("Sweep", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
				layout.NewSpacer(),
				newIconButtonWithTooltip(theme.SettingsIcon(), "Sweep settings", a.showSweepSettingsDialog),
				runBtn, cancelBtn,
			),
			a.sweepProgress,
		),
		nil, nil, nil,
		a.sweepContainer,
	)
}

func (a *App) runSweep() {
	if a.sweepCancel != nil {
		dialog.ShowInformation("Sweep running", "A sweep is already running.", a.window)
		return
	}

	profile := model.GetPhysicsProfile(a.profileSelect.Selected)
	profile.Physics = a.physics(profile.Name)
	study := model.NewStudy("Sweep ("+profile.Name+")", profile, a.config.Sweep.SweepRange)
	opts := engine.SweepOptions{
		Range:   a.config.Sweep.SweepRange,
		Workers: a.config.Sweep.Workers,
		Progress: func(done, total int) {
			fyne.Do(func() { a.sweepProgress.SetValue(float64(done) / float64(total)) })
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.sweepCancel = cancel
	a.sweepProgress.SetValue(0)
	a.sweepProgress.Show()
	a.setStatus("Sweeping...")

	go func() {
		rows, err := engine.New(profile.Physics).Sweep(ctx, opts)
		fyne.Do(func() {
			a.sweepCancel = nil
			cancel()
			a.sweepProgress.Hide()
			if err != nil {
				a.setStatus("Sweep stopped: " + err.Error())
				return
			}
			study.Rows = rows
			a.study = &study
			a.refreshSweep()
			a.setStatus(fmt.Sprintf("Sweep finished: %d shapes", len(rows)))
		})
	}()
}

func (a *App) refreshSweep() {
	a.sweepContainer.RemoveAll()
	if a.study == nil || len(a.study.Rows) == 0 {
		a.sweepContainer.Add(widget.NewLabel("No sweep yet. Use Tools > Run Sweep."))
		a.sweepContainer.Refresh()
		return
	}

	rows := a.study.Rows
	headers := []string{"Size", "Direct mB/t", "Sodium mB/t", "Water speed", "Sodium speed"}
	table := widget.NewTable(
		func() (int, int) { return len(rows) + 1, len(headers) },
		func() fyne.CanvasObject { return widget.NewLabel("000x000x000 ") },
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			if id.Row == 0 {
				label.TextStyle = fyne.TextStyle{Bold: true}
				label.SetText(headers[id.Col])
				return
			}
			label.TextStyle = fyne.TextStyle{}
			label.SetText(sweepCell(rows[id.Row-1], id.Col))
		},
	)
	table.OnSelected = func(id widget.TableCellID) {
		if id.Row == 0 {
			return
		}
		in, err := a.readInputs()
		if err != nil {
			return
		}
		if a.shown != nil {
			a.history.Push(MakeSnapshot(*a.shown, "Sweep selection"))
		}
		in.Dims = rows[id.Row-1].Dims
		a.applyInputs(in)
		a.run(in)
	}

	summary := engineSummaryText(engine.Summarize(rows))
	a.sweepContainer.Add(container.NewBorder(nil, widget.NewLabel(summary), nil, nil, table))
	a.sweepContainer.Refresh()
}

func sweepCell(r model.SweepRow, col int) string {
	switch col {
	case 0:
		return r.Dims.String()
	case 1:
		return strconv.FormatInt(r.DirectBoiler.Production, 10)
	case 2:
		return strconv.FormatInt(r.SodiumBoiler.Production, 10)
	case 3:
		if r.HasFission {
			return strconv.FormatFloat(r.WaterFission.MaxSpeed, 'f', 2, 64)
		}
	case 4:
		if r.HasFission {
			return strconv.FormatFloat(r.SodiumFission.MaxSpeed, 'f', 2, 64)
		}
	}
	return "-"
}

func engineSummaryText(s engine.Summary) string {
	var parts []string
	for _, m := range s.Metrics {
		parts = append(parts, fmt.Sprintf("%s: mean %.1f, max %.1f", m.Name, m.Mean, m.Max))
	}
	return fmt.Sprintf("%d shapes. %s", s.Rows, strings.Join(parts, " | "))
}

// ─── Jobs Panel ────────────────────────────────────────────

func (a *App) buildJobsPanel() fyne.CanvasObject {
	a.jobsContainer = container.NewVBox()
	a.refreshJobs()

	importBtn := widget.NewButtonWithIcon("Import Jobs", theme.FolderOpenIcon(), a.importJobs)
	clearBtn := widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), func() {
		a.jobs = nil
		a.refreshJobs()
	})

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Imported Jobs", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			importBtn, clearBtn,
		),
		nil, nil, nil,
		container.NewVScroll(a.jobsContainer),
	)
}

func (a *App) refreshJobs() {
	a.jobsContainer.RemoveAll()

	if len(a.jobs) == 0 {
		a.jobsContainer.Add(widget.NewLabel("No jobs imported yet. Click 'Import Jobs' to load a CSV or Excel file."))
		return
	}

	header := container.NewGridWithColumns(5,
		widget.NewLabelWithStyle("Label", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Structure", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Size", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Result", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
	)
	a.jobsContainer.Add(header)
	a.jobsContainer.Add(widget.NewSeparator())

	for _, r := range a.jobs {
		result := "-"
		switch {
		case r.Boiler != nil && r.Boiler.Feasible():
			result = fmt.Sprintf("%d mB/t", r.Boiler.Production)
		case r.Fission != nil:
			result = fmt.Sprintf("%d assemblies, speed %.2f", r.Fission.AssemblyCount, r.Fission.MaxSpeed)
		}
		a.jobsContainer.Add(container.NewGridWithColumns(5,
			widget.NewLabel(r.Job.Label),
			widget.NewLabel(r.Job.Structure.String()+" ("+r.Job.ModeName()+")"),
			widget.NewLabel(r.Job.Dims.String()),
			widget.NewLabel(result),
			widget.NewButtonWithIcon("", theme.VisibilityIcon(), func() {
				a.showJob(r)
			}),
		))
	}
}

func (a *App) showJob(r engine.Result) {
	in, err := a.readInputs()
	if err != nil {
		in = Inputs{Profile: a.profileSelect.Selected}
	}
	if a.shown != nil {
		a.history.Push(MakeSnapshot(*a.shown, "Job "+r.Job.Label))
	}
	in.Dims = r.Job.Dims
	if r.Job.Structure == model.StructureFission {
		in.Cooling = r.Job.Cooling
	} else {
		in.Heating = r.Job.Heating
	}
	a.applyInputs(in)
	a.run(in)
	if r.Job.Structure == model.StructureFission {
		a.tabs.SelectIndex(1)
	} else {
		a.tabs.SelectIndex(0)
	}
}

func (a *App) importJobs() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		physics := a.physics(a.profileSelect.Selected)
		a.handleImportResult(jobimporter.ImportFile(reader.URI().Path(), physics), physics)
	}, a.window)
}

// openBlueprint evaluates a fuel assembly read from a DXF file and shows it
// on the Fission tab.
func (a *App) openBlueprint() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		physics := a.physics(a.profileSelect.Selected)
		bp, err := jobimporter.ImportDXF(reader.URI().Path(), physics)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		f, err := engine.New(physics).EvaluateFission(bp.Dims, bp.Mode, bp.Grid)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.fission = &f
		a.refreshResults()
		a.tabs.SelectIndex(1)
		a.setStatus(fmt.Sprintf("Blueprint %s: %d assemblies", reader.URI().Name(), f.AssemblyCount))
	}, a.window)
}

func (a *App) handleImportResult(result jobimporter.ImportResult, physics model.Physics) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}

	for _, w := range result.Warnings {
		a.logger.Info("import warning", zap.String("warning", w))
	}

	if len(result.Jobs) == 0 {
		return
	}

	results, errs := engine.New(physics).RunAll(result.Jobs)
	for i, err := range errs {
		if err != nil {
			a.logger.Warn("job failed", zap.String("job", result.Jobs[i].Label), zap.Error(err))
			continue
		}
		a.jobs = append(a.jobs, results[i])
	}
	a.refreshJobs()
	a.tabs.SelectIndex(3)

	msg := fmt.Sprintf("Successfully imported %d jobs.", len(result.Jobs))
	if len(result.Errors) > 0 {
		msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
	}
	dialog.ShowInformation("Import Complete", msg, a.window)
}

// ─── Studies ───────────────────────────────────────────────

func (a *App) saveStudy() {
	if a.study == nil {
		dialog.ShowInformation("No sweep", "Run a sweep before saving a study.", a.window)
		return
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetText(a.study.Name)
	dialog.ShowForm("Save Study", "Save", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Name", nameEntry)},
		func(ok bool) {
			if !ok {
				return
			}
			if name := strings.TrimSpace(nameEntry.Text); name != "" {
				a.study.Name = name
			}
			path, err := project.SaveStudy(project.DefaultStudiesDir(), a.study)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.rememberStudy(path)
			a.setStatus("Saved study to " + path)
		},
		a.window,
	)
}

func (a *App) openStudy() {
	infos, err := project.ListStudies(project.DefaultStudiesDir())
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	if len(infos) == 0 {
		dialog.ShowInformation("No studies", "No saved studies found in "+project.DefaultStudiesDir(), a.window)
		return
	}

	var d dialog.Dialog
	list := widget.NewList(
		func() int { return len(infos) },
		func() fyne.CanvasObject { return widget.NewLabel("Study name (000 rows)") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			info := infos[id]
			obj.(*widget.Label).SetText(fmt.Sprintf("%s (%d rows, %s)", info.Name, info.Rows, info.UpdatedAt))
		},
	)
	list.OnSelected = func(id widget.ListItemID) {
		d.Hide()
		a.loadStudyFrom(infos[id].Path)
	}
	d = dialog.NewCustom("Open Study", "Cancel", list, a.window)
	d.Resize(fyne.NewSize(500, 400))
	d.Show()
}

func (a *App) loadStudyFrom(path string) {
	study, err := project.LoadStudy(path)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.study = &study
	a.config.Sweep.SweepRange = study.Range
	a.refreshSweep()
	a.rememberStudy(path)
	a.tabs.SelectIndex(2)
	a.setStatus("Opened study " + study.Name)
}

func (a *App) rememberStudy(path string) {
	project.AddRecentStudy(&a.config, path)
	if err := a.saveConfig(); err != nil {
		a.logger.Warn("saving recent studies", zap.Error(err))
	}
	a.SetupMenus()
}
