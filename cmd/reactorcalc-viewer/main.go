// ReactorCalc Viewer is the desktop front end: it computes single layouts,
// runs sweeps and job lists, and exports tables and blueprints.
//
// Build:
//   go build -o reactorcalc-viewer ./cmd/reactorcalc-viewer
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/piwi3910/ReactorCalc/internal/logging"
	"github.com/piwi3910/ReactorCalc/internal/project"
	"github.com/piwi3910/ReactorCalc/internal/ui"
)

func main() {
	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting viewer", zap.String("profile", cfg.Profile))

	application := app.NewWithID("com.piwi3910.reactorcalc")
	window := application.NewWindow("ReactorCalc")

	appUI := ui.NewApp(application, window, cfg, logger)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1200, 800))
	window.CenterOnScreen()
	window.ShowAndRun()
}
