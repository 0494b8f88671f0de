package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

func TestRun_DispatchesByStructure(t *testing.T) {
	opt := newTestOptimizer()

	r, err := opt.Run(model.Job{Structure: model.StructureBoiler, Dims: dims(5, 4, 6)})
	require.NoError(t, err)
	require.NotNil(t, r.Boiler)
	assert.Nil(t, r.Fission)
	assert.Equal(t, int64(912_000), r.Boiler.Production)
	assert.True(t, r.Feasible())

	r, err = opt.Run(model.Job{Structure: model.StructureFission, Dims: dims(5, 5, 8), Cooling: model.SodiumCooling})
	require.NoError(t, err)
	require.NotNil(t, r.Fission)
	assert.Nil(t, r.Boiler)
	assert.Equal(t, 45, r.Fission.AssemblyCount)
	assert.True(t, r.Feasible())
}

func TestRun_InfeasibleBoiler(t *testing.T) {
	r, err := newTestOptimizer().Run(model.Job{Structure: model.StructureBoiler, Dims: dims(3, 3, 4)})
	require.NoError(t, err)
	assert.False(t, r.Feasible())
}

func TestRun_UnknownStructure(t *testing.T) {
	_, err := newTestOptimizer().Run(model.Job{Structure: model.Structure(7), Dims: dims(5, 4, 6)})
	assert.ErrorIs(t, err, model.ErrUnknownMode)
}

func TestRunAll_KeepsJobOrder(t *testing.T) {
	jobs := []model.Job{
		{Structure: model.StructureBoiler, Dims: dims(5, 4, 6)},
		{Structure: model.StructureFission, Dims: dims(1, 4, 6)},
		{Structure: model.StructureFission, Dims: dims(4, 4, 6)},
	}
	results, errs := newTestOptimizer().RunAll(jobs)
	require.Len(t, results, 3)

	assert.NoError(t, errs[0])
	assert.ErrorIs(t, errs[1], model.ErrInvalidDimensions)
	assert.NoError(t, errs[2])
	assert.Equal(t, 12, results[2].Fission.AssemblyCount)
}
