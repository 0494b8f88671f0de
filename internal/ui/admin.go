package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/piwi3910/ReactorCalc/internal/model"
	"github.com/piwi3910/ReactorCalc/internal/project"
)

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	profileSelect := widget.NewSelect(model.PhysicsProfileNames(), func(selected string) {
		cfg.Profile = selected
	})
	profileSelect.SetSelected(model.GetPhysicsProfile(cfg.Profile).Name)

	customCheck := widget.NewCheck("Use the constants below instead of a profile", func(b bool) {
		cfg.UseCustomPhysics = b
	})
	customCheck.Checked = cfg.UseCustomPhysics

	physicsForm := newPhysicsForm(cfg.Physics)

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("Default Profile", profileSelect),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Custom Physics", customCheck),
	}
	formItems = append(formItems, physicsForm.items()...)

	d := dialog.NewForm("Settings", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			physics, err := physicsForm.read(cfg.Physics)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			cfg.Physics = physics
			if err := cfg.Validate(); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.config = cfg
			a.theme.SetVariant(cfg.Theme)
			a.app.Settings().SetTheme(a.theme)
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			} else {
				dialog.ShowInformation("Settings Saved", "Application settings have been saved.", a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(520, 640))
	d.Show()
}

// showImportExportDialog displays the backup and restore dialog.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export All Data...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()
			path := writer.URI().Path()
			studies := a.loadAllStudies()
			if err := project.ExportAllData(path, a.config, model.CustomPhysicsProfiles, studies); err != nil {
				dialog.ShowError(err, a.window)
			} else {
				dialog.ShowInformation("Export Complete",
					fmt.Sprintf("Settings, %d custom profiles and %d studies exported to:\n%s",
						len(model.CustomPhysicsProfiles), len(studies), path), a.window)
			}
		}, a.window)
		d.SetFileName("reactorcalc-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import All Data...", func() {
		dialog.ShowConfirm("Import Data",
			"Importing data will replace your settings and custom physics profiles.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					defer reader.Close()
					backup, err := project.ImportAllData(reader.URI().Path())
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					if err := a.restoreBackup(backup); err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Data imported successfully from backup created at %s.", backup.CreatedAt), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export settings, custom physics profiles and saved studies to a backup file,\nor import from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Backup / Restore", "Close", content, a.window)
	d.Resize(fyne.NewSize(480, 250))
	d.Show()
}

// loadAllStudies reads every saved study. Unreadable files are skipped.
func (a *App) loadAllStudies() []model.Study {
	infos, err := project.ListStudies(project.DefaultStudiesDir())
	if err != nil {
		a.logger.Warn("listing studies", zap.Error(err))
		return nil
	}
	var studies []model.Study
	for _, info := range infos {
		s, err := project.LoadStudy(info.Path)
		if err != nil {
			a.logger.Warn("loading study", zap.String("path", info.Path), zap.Error(err))
			continue
		}
		studies = append(studies, s)
	}
	return studies
}

func (a *App) restoreBackup(backup project.BackupData) error {
	var skipped []string
	model.CustomPhysicsProfiles = nil
	for _, p := range backup.Profiles {
		if err := model.AddCustomPhysicsProfile(p); err != nil {
			skipped = append(skipped, p.Name)
		}
	}
	if err := project.SavePhysicsProfiles(project.DefaultProfilesPath(), model.CustomPhysicsProfiles); err != nil {
		return fmt.Errorf("failed to save imported profiles: %w", err)
	}

	for i := range backup.Studies {
		if _, err := project.SaveStudy(project.DefaultStudiesDir(), &backup.Studies[i]); err != nil {
			return fmt.Errorf("failed to save imported study %q: %w", backup.Studies[i].Name, err)
		}
	}

	a.config = backup.Config
	if err := a.saveConfig(); err != nil {
		return fmt.Errorf("failed to save imported settings: %w", err)
	}
	a.refreshProfileSelector()
	a.SetupMenus()

	if len(skipped) > 0 {
		a.logger.Warn("profiles not restored", zap.String("names", strings.Join(skipped, ", ")))
	}
	return nil
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(project.DefaultConfigPath(), a.config)
}
