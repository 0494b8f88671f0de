package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.xlsx")
	require.NoError(t, ExportXLSX(path, buildTestRows(t)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetFission, SheetBoiler, SheetSummary}, f.GetSheetList())

	rows, err := f.GetRows(SheetFission)
	require.NoError(t, err)
	require.Len(t, rows, 10)
	assert.Equal(t, "water_max_speed", rows[0][3])
	assert.Equal(t, []string{"5", "5", "5", "18", "18", "18", "18"}, rows[9])

	rows, err = f.GetRows(SheetBoiler)
	require.NoError(t, err)
	require.Len(t, rows, 10)
	assert.Equal(t, "752000", rows[9][5])

	rows, err = f.GetRows(SheetSummary)
	require.NoError(t, err)
	require.Greater(t, len(rows), 1)
	assert.Equal(t, "direct_production", rows[1][0])
	assert.Equal(t, "5x5x5", rows[1][6])
}

func TestExportXLSXEmpty(t *testing.T) {
	err := ExportXLSX(filepath.Join(t.TempDir(), "empty.xlsx"), nil)
	assert.ErrorIs(t, err, ErrNothingToExport)
}
