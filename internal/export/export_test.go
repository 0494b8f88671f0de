package export

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/piwi3910/ReactorCalc/internal/engine"
	"github.com/piwi3910/ReactorCalc/internal/model"
)

// buildTestRows sweeps every shape from 3x3x4 to 5x5x5.
func buildTestRows(t *testing.T) []model.SweepRow {
	t.Helper()
	rows, err := engine.New(model.DefaultPhysics()).Sweep(context.Background(), engine.SweepOptions{
		Range: model.SweepRange{MinLength: 3, MinWidth: 3, MinHeight: 4, MaxHeight: 5},
	})
	require.NoError(t, err)
	return rows
}

func buildTestFission(t *testing.T, l, w, h int, mode model.CoolingMode) model.FissionLayout {
	t.Helper()
	f, err := engine.New(model.DefaultPhysics()).OptimizeFission(model.Dimensions{Length: l, Width: w, Height: h}, mode)
	require.NoError(t, err)
	return f
}

func buildTestBoiler(t *testing.T, l, w, h int, mode model.HeatingMode) model.BoilerLayout {
	t.Helper()
	b, err := engine.New(model.DefaultPhysics()).OptimizeBoiler(model.Dimensions{Length: l, Width: w, Height: h}, mode)
	require.NoError(t, err)
	return b
}

func buildTestReport(t *testing.T) Report {
	return ReportFromRows("Test", "Default", model.DefaultPhysics(), buildTestRows(t))
}
