package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

func TestExportPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, ExportPDF(path, buildTestReport(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 1000, "PDF seems too small: %d bytes", len(data))
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestExportPDF_BoilersOnly(t *testing.T) {
	report := Report{
		ProfileName: "Default",
		Physics:     model.DefaultPhysics(),
		Boilers:     []model.BoilerLayout{buildTestBoiler(t, 5, 4, 6, model.DirectHeating)},
	}
	require.NoError(t, ExportPDF(filepath.Join(t.TempDir(), "boilers.pdf"), report))
}

func TestExportPDF_LargestReactor(t *testing.T) {
	report := Report{
		Physics:  model.DefaultPhysics(),
		Fissions: []model.FissionLayout{buildTestFission(t, 18, 18, 18, model.WaterCooling)},
	}
	require.NoError(t, ExportPDF(filepath.Join(t.TempDir(), "big.pdf"), report))
}

func TestExportPDF_Empty(t *testing.T) {
	err := ExportPDF(filepath.Join(t.TempDir(), "empty.pdf"), Report{})
	assert.ErrorIs(t, err, ErrNothingToExport)
}

func TestReportFromRows_LabelsInfeasibleBoilers(t *testing.T) {
	report := buildTestReport(t)
	require.Len(t, report.Boilers, 18)
	require.Len(t, report.Fissions, 18)

	first := report.Boilers[0]
	assert.False(t, first.Feasible())
	assert.Equal(t, model.Dimensions{Length: 3, Width: 3, Height: 4}, first.Dims)
	assert.Equal(t, model.SodiumHeating, report.Boilers[1].Mode)
	assert.Equal(t, []string{"3x3x4", "direct", "-", "-", "infeasible", "-", "-", "-"}, boilerCells(first))
}

func TestHeightColor(t *testing.T) {
	r, g, b := HeightColor(0, 5)
	assert.Equal(t, []int{255, 255, 255}, []int{r, g, b})

	full := heightColors[len(heightColors)-1]
	r, g, b = HeightColor(5, 5)
	assert.Equal(t, []int{full.R, full.G, full.B}, []int{r, g, b})

	low := heightColors[0]
	r, g, b = HeightColor(1, 15)
	assert.Equal(t, []int{low.R, low.G, low.B}, []int{r, g, b})
}
