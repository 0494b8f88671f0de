package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

func testStudy(name string) model.Study {
	study := model.NewStudy(name, model.PhysicsProfiles[0], model.SweepRange{MinLength: 3, MinWidth: 3, MinHeight: 4, MaxHeight: 5})
	grid, _ := model.GridFromRows([][]int{{3, 5, 5}, {5, 0, 5}, {5, 5, 5}})
	study.Rows = append(study.Rows, model.SweepRow{
		Dims:         model.Dimensions{Length: 5, Width: 5, Height: 5},
		DirectBoiler: model.BoilerLayout{Dims: model.Dimensions{Length: 5, Width: 5, Height: 5}, SpliterLayer: 3, HeatingElement: 3, Production: 752000},
		WaterFission: model.FissionLayout{Grid: grid, AssemblyCount: 38},
		HasFission:   true,
	})
	return study
}

func TestSaveAndLoadStudy(t *testing.T) {
	dir := t.TempDir()
	study := testStudy("Small sweep")

	path, err := SaveStudy(dir, &study)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, study.ID+StudyExt), path)

	loaded, err := LoadStudy(path)
	require.NoError(t, err)
	assert.Equal(t, study.ID, loaded.ID)
	assert.Equal(t, "Small sweep", loaded.Name)
	assert.Equal(t, study.Range, loaded.Range)
	require.Len(t, loaded.Rows, 1)
	assert.Equal(t, int64(752000), loaded.Rows[0].DirectBoiler.Production)
	assert.Equal(t, [][]int{{3, 5, 5}, {5, 0, 5}, {5, 5, 5}}, loaded.Rows[0].WaterFission.Grid.Rows())
}

func TestSaveStudyRequiresID(t *testing.T) {
	_, err := SaveStudy(t.TempDir(), &model.Study{Name: "no id"})
	assert.Error(t, err)
}

func TestLoadStudyInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad"+StudyExt)
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))

	_, err := LoadStudy(path)
	assert.Error(t, err)
}

func TestListStudies(t *testing.T) {
	dir := t.TempDir()

	first := testStudy("First")
	_, err := SaveStudy(dir, &first)
	require.NoError(t, err)

	second := testStudy("Second")
	_, err = SaveStudy(dir, &second)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken"+StudyExt), []byte("{"), 0644))

	infos, err := ListStudies(dir)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	for _, info := range infos {
		assert.Equal(t, 1, info.Rows)
	}
}

func TestListStudiesMissingDir(t *testing.T) {
	infos, err := ListStudies(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, infos)
}
