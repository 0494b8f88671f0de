package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFissionCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFissionCSV(&buf, buildTestRows(t)))

	require.True(t, bytes.HasPrefix(buf.Bytes(), utf8BOM))
	records, err := csv.NewReader(bytes.NewReader(buf.Bytes()[len(utf8BOM):])).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 10)
	assert.Equal(t, FissionCSVHeader, records[0])
	assert.Equal(t, []string{"3", "3", "4", "1", "1"}, records[1])
	assert.Equal(t, []string{"5", "5", "5", "18", "18"}, records[9])
}

func TestWriteBoilerCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBoilerCSV(&buf, buildTestRows(t)))

	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(buf.Bytes(), utf8BOM))).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 10)
	assert.Equal(t, BoilerCSVHeader, records[0])
	assert.Equal(t, []string{"3", "3", "4", "0", "0", "0", "0", "0", "0", "0"}, records[1], "infeasible boiler")
	assert.Equal(t, []string{"5", "5", "5", "3", "3", "752000", "3", "2", "640000", "4456639"}, records[9])
}

func TestExportCSVFiles(t *testing.T) {
	dir := t.TempDir()
	rows := buildTestRows(t)

	fission := filepath.Join(dir, "reactor.csv")
	boiler := filepath.Join(dir, "boiler.csv")
	require.NoError(t, ExportFissionCSV(fission, rows))
	require.NoError(t, ExportBoilerCSV(boiler, rows))

	for _, path := range []string{fission, boiler} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(100))
	}
}

func TestExportCSVBadPath(t *testing.T) {
	err := ExportFissionCSV(filepath.Join(t.TempDir(), "missing", "x.csv"), nil)
	assert.Error(t, err)
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "1", formatFloat(1.0))
	assert.Equal(t, "93.59238297872339", formatFloat(93.59238297872339))
}
