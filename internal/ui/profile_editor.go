package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/ReactorCalc/internal/model"
	"github.com/piwi3910/ReactorCalc/internal/project"
)

// physicsField binds one Physics constant to a text entry.
type physicsField struct {
	label string
	entry *widget.Entry
	get   func(model.Physics) string
	set   func(*model.Physics, string) error
}

// physicsForm edits every constant of a Physics value.
type physicsForm struct {
	fields []physicsField
}

func intField(label string, ptr func(*model.Physics) *int) physicsField {
	return physicsField{
		label: label,
		get:   func(p model.Physics) string { return strconv.Itoa(*ptr(&p)) },
		set: func(p *model.Physics, s string) error {
			v, err := strconv.Atoi(s)
			if err != nil {
				return err
			}
			*ptr(p) = v
			return nil
		},
	}
}

func int64Field(label string, ptr func(*model.Physics) *int64) physicsField {
	return physicsField{
		label: label,
		get:   func(p model.Physics) string { return strconv.FormatInt(*ptr(&p), 10) },
		set: func(p *model.Physics, s string) error {
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return err
			}
			*ptr(p) = v
			return nil
		},
	}
}

func floatField(label string, ptr func(*model.Physics) *float64) physicsField {
	return physicsField{
		label: label,
		get:   func(p model.Physics) string { return strconv.FormatFloat(*ptr(&p), 'g', -1, 64) },
		set: func(p *model.Physics, s string) error {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return err
			}
			*ptr(p) = v
			return nil
		},
	}
}

func newPhysicsForm(p model.Physics) *physicsForm {
	f := &physicsForm{fields: []physicsField{
		intField("Casing Thickness", func(p *model.Physics) *int { return &p.CasingThickness }),
		int64Field("Water Tank (mB/block)", func(p *model.Physics) *int64 { return &p.WaterTankVolume }),
		int64Field("Heater Heat Rate", func(p *model.Physics) *int64 { return &p.HeaterHeatRate }),
		int64Field("Steam Tank (mB/block)", func(p *model.Physics) *int64 { return &p.SteamTankVolume }),
		floatField("Coolant Cooling Efficiency", func(p *model.Physics) *float64 { return &p.CoolantCoolingEfficiency }),
		floatField("Casing Heat Capacity", func(p *model.Physics) *float64 { return &p.CasingHeatCapacity }),
		floatField("Heated Coolant Temp", func(p *model.Physics) *float64 { return &p.HeatedCoolantTemp }),
		floatField("Steam Energy Efficiency", func(p *model.Physics) *float64 { return &p.SteamEnergyEfficiency }),
		floatField("Water Thermal Enthalpy", func(p *model.Physics) *float64 { return &p.WaterThermalEnthalpy }),
		floatField("Sodium Thermal Enthalpy", func(p *model.Physics) *float64 { return &p.SodiumThermalEnthalpy }),
		floatField("Boiler Water Conductivity", func(p *model.Physics) *float64 { return &p.BoilerWaterConductivity }),
		floatField("Cooled Coolant Ratio", func(p *model.Physics) *float64 { return &p.CooledCoolantRatio }),
		int64Field("Hot Coolant Ratio", func(p *model.Physics) *int64 { return &p.HotCoolantRatio }),
		floatField("Water Cooling Rate", func(p *model.Physics) *float64 { return &p.WaterCoolingRate }),
		floatField("Sodium Cooling Rate", func(p *model.Physics) *float64 { return &p.SodiumCoolingRate }),
		intField("Grid Bound", func(p *model.Physics) *int { return &p.GridBound }),
	}}
	for i := range f.fields {
		e := widget.NewEntry()
		e.SetText(f.fields[i].get(p))
		f.fields[i].entry = e
	}
	return f
}

func (f *physicsForm) items() []*widget.FormItem {
	items := make([]*widget.FormItem, 0, len(f.fields))
	for _, fld := range f.fields {
		items = append(items, widget.NewFormItem(fld.label, fld.entry))
	}
	return items
}

// read applies the entries on top of base and validates the result.
func (f *physicsForm) read(base model.Physics) (model.Physics, error) {
	p := base
	for _, fld := range f.fields {
		if err := fld.set(&p, strings.TrimSpace(fld.entry.Text)); err != nil {
			return base, fmt.Errorf("%s: %q is not a number", fld.label, fld.entry.Text)
		}
	}
	if err := p.Validate(); err != nil {
		return base, err
	}
	return p, nil
}

// showProfileManager opens the profile management window where users can
// view, create, edit, duplicate, delete, import and export physics profiles.
func (a *App) showProfileManager() {
	w := a.app.NewWindow("Physics Profile Manager")
	w.Resize(fyne.NewSize(760, 560))

	var listWidget *widget.List
	selectedIdx := -1

	profiles := model.AllPhysicsProfiles()
	detailContainer := container.NewVBox(widget.NewLabel("Select a profile to view details."))

	reload := func() {
		profiles = model.AllPhysicsProfiles()
		selectedIdx = -1
		listWidget.UnselectAll()
		listWidget.Refresh()
		detailContainer.RemoveAll()
		detailContainer.Add(widget.NewLabel("Select a profile to view details."))
		detailContainer.Refresh()
		a.refreshProfileSelector()
	}

	listWidget = widget.NewList(
		func() int {
			return len(profiles)
		},
		func() fyne.CanvasObject {
			return container.NewHBox(
				widget.NewIcon(theme.DocumentIcon()),
				widget.NewLabel("Profile Name"),
				layout.NewSpacer(),
				widget.NewLabel("(built-in)"),
			)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			box := obj.(*fyne.Container)
			p := profiles[id]
			box.Objects[1].(*widget.Label).SetText(p.Name)
			if p.IsBuiltIn {
				box.Objects[3].(*widget.Label).SetText("(built-in)")
			} else {
				box.Objects[3].(*widget.Label).SetText("(custom)")
			}
		},
	)

	listWidget.OnSelected = func(id widget.ListItemID) {
		selectedIdx = id
		a.showProfileDetail(detailContainer, profiles[id], w, reload)
	}

	selected := func(action string) (model.PhysicsProfile, bool) {
		if selectedIdx < 0 || selectedIdx >= len(profiles) {
			dialog.ShowInformation("No Selection", "Select a profile to "+action+".", w)
			return model.PhysicsProfile{}, false
		}
		return profiles[selectedIdx], true
	}

	newBtn := widget.NewButtonWithIcon("New", theme.ContentAddIcon(), func() {
		a.showNewProfileDialog(w, model.NewCustomPhysicsProfile(""), "New Custom Profile", reload)
	})

	duplicateBtn := widget.NewButtonWithIcon("Duplicate", theme.ContentCopyIcon(), func() {
		src, ok := selected("duplicate")
		if !ok {
			return
		}
		dup := src
		dup.Name = src.Name + " (Copy)"
		dup.Description = "Copy of " + src.Name
		a.showNewProfileDialog(w, dup, "Duplicate Profile", reload)
	})

	importBtn := widget.NewButtonWithIcon("Import", theme.FolderOpenIcon(), func() {
		a.importProfileDialog(w, reload)
	})

	exportBtn := widget.NewButtonWithIcon("Export", theme.DocumentSaveIcon(), func() {
		if p, ok := selected("export"); ok {
			a.exportProfileDialog(p, w)
		}
	})

	deleteBtn := widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), func() {
		p, ok := selected("delete")
		if !ok {
			return
		}
		if p.IsBuiltIn {
			dialog.ShowInformation("Cannot Delete", "Built-in profiles cannot be deleted.", w)
			return
		}
		dialog.ShowConfirm("Delete Profile",
			fmt.Sprintf("Delete custom profile %q?", p.Name),
			func(ok bool) {
				if !ok {
					return
				}
				if err := model.RemoveCustomPhysicsProfile(p.Name); err != nil {
					dialog.ShowError(err, w)
					return
				}
				a.persistCustomProfiles(w)
				reload()
			},
			w,
		)
	})

	toolbar := container.NewHBox(newBtn, duplicateBtn, importBtn, exportBtn, deleteBtn)

	listPanel := container.NewBorder(
		widget.NewLabelWithStyle("Profiles", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		toolbar,
		nil, nil,
		listWidget,
	)

	detailPanel := container.NewBorder(
		widget.NewLabelWithStyle("Profile Details", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		container.NewVScroll(detailContainer),
	)

	split := container.NewHSplit(listPanel, detailPanel)
	split.SetOffset(0.4)

	w.SetContent(split)
	w.Show()
}

// showProfileDetail populates the detail pane with the profile constants.
func (a *App) showProfileDetail(c *fyne.Container, p model.PhysicsProfile, w fyne.Window, onChanged func()) {
	c.RemoveAll()

	grid := container.NewGridWithColumns(2)
	for _, fld := range newPhysicsForm(p.Physics).fields {
		grid.Add(widget.NewLabel(fld.label + ":"))
		grid.Add(widget.NewLabel(fld.get(p.Physics)))
	}

	if p.IsBuiltIn {
		c.Add(widget.NewLabel("Built-in profiles are read-only. Duplicate to customize."))
	} else {
		c.Add(widget.NewButtonWithIcon("Edit Profile", theme.DocumentCreateIcon(), func() {
			a.showEditProfileDialog(p, w, onChanged)
		}))
	}

	c.Add(container.NewVBox(
		widget.NewLabelWithStyle(p.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel(p.Description),
		widget.NewSeparator(),
		grid,
	))
	c.Refresh()
}

// showNewProfileDialog asks for a name and registers a copy of base.
func (a *App) showNewProfileDialog(w fyne.Window, base model.PhysicsProfile, title string, onCreated func()) {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("My Custom Profile")
	nameEntry.SetText(base.Name)

	form := dialog.NewForm(title, "Create", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Profile Name", nameEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			p := base
			p.Name = nameEntry.Text
			if err := model.AddCustomPhysicsProfile(p); err != nil {
				dialog.ShowError(err, w)
				return
			}
			a.persistCustomProfiles(w)
			onCreated()
		},
		w,
	)
	form.Resize(fyne.NewSize(400, 150))
	form.Show()
}

// showEditProfileDialog edits the name, description and constants of a
// custom profile.
func (a *App) showEditProfileDialog(p model.PhysicsProfile, w fyne.Window, onSaved func()) {
	nameEntry := widget.NewEntry()
	nameEntry.SetText(p.Name)

	descEntry := widget.NewEntry()
	descEntry.SetText(p.Description)

	physicsForm := newPhysicsForm(p.Physics)

	editWindow := a.app.NewWindow("Edit Profile: " + p.Name)

	saveBtn := widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() {
		name := strings.TrimSpace(nameEntry.Text)
		if name == "" {
			dialog.ShowError(fmt.Errorf("profile name cannot be empty"), editWindow)
			return
		}
		physics, err := physicsForm.read(p.Physics)
		if err != nil {
			dialog.ShowError(err, editWindow)
			return
		}

		updated := model.PhysicsProfile{
			Name:        name,
			Description: descEntry.Text,
			Physics:     physics,
		}
		if err := model.UpdateCustomPhysicsProfile(p.Name, updated); err != nil {
			dialog.ShowError(err, editWindow)
			return
		}
		a.persistCustomProfiles(w)
		onSaved()
		editWindow.Close()
	})
	saveBtn.Importance = widget.HighImportance

	general := widget.NewForm(
		widget.NewFormItem("Name", nameEntry),
		widget.NewFormItem("Description", descEntry),
	)
	constants := widget.NewForm(physicsForm.items()...)

	tabs := container.NewAppTabs(
		container.NewTabItem("General", general),
		container.NewTabItem("Constants", container.NewVScroll(constants)),
	)

	editWindow.SetContent(container.NewBorder(
		nil,
		container.NewHBox(layout.NewSpacer(), saveBtn),
		nil, nil,
		tabs,
	))
	editWindow.Resize(fyne.NewSize(560, 600))
	editWindow.Show()
}

// importProfileDialog opens a file dialog to import a profile from JSON.
func (a *App) importProfileDialog(w fyne.Window, onImported func()) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		profile, err := project.ImportProfile(reader.URI().Path())
		if err != nil {
			dialog.ShowError(fmt.Errorf("failed to import profile: %w", err), w)
			return
		}

		if err := model.AddCustomPhysicsProfile(profile); err != nil {
			dialog.ShowError(err, w)
			return
		}
		a.persistCustomProfiles(w)
		onImported()
		dialog.ShowInformation("Import Complete",
			fmt.Sprintf("Profile %q imported successfully.", profile.Name), w)
	}, w)
}

// exportProfileDialog opens a file save dialog to export a profile to JSON.
func (a *App) exportProfileDialog(p model.PhysicsProfile, w fyne.Window) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()

		if err := project.ExportProfile(writer.URI().Path(), p); err != nil {
			dialog.ShowError(fmt.Errorf("failed to export profile: %w", err), w)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Profile %q exported successfully.", p.Name), w)
	}, w)
	d.SetFileName(strings.ReplaceAll(strings.ToLower(p.Name), " ", "_") + "_physics.json")
	d.Show()
}

// persistCustomProfiles saves the current custom profiles to disk.
func (a *App) persistCustomProfiles(w fyne.Window) {
	if err := project.SavePhysicsProfiles(project.DefaultProfilesPath(), model.CustomPhysicsProfiles); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save profiles: %w", err), w)
	}
}

// refreshProfileSelector reloads the profile names in the input panel.
func (a *App) refreshProfileSelector() {
	if a.profileSelect == nil {
		return
	}
	current := a.profileSelect.Selected
	a.profileSelect.SetOptions(model.PhysicsProfileNames())
	a.profileSelect.SetSelected(model.GetPhysicsProfile(current).Name)
}
