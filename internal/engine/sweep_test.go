package engine

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

func smallRange() model.SweepRange {
	return model.SweepRange{MinLength: 3, MinWidth: 3, MinHeight: 4, MaxHeight: 5}
}

func TestSweep_RowsInCanonicalOrder(t *testing.T) {
	rows, err := newTestOptimizer().Sweep(context.Background(), SweepOptions{Range: smallRange(), Workers: 4})
	require.NoError(t, err)
	require.Len(t, rows, 9)

	for i, d := range smallRange().Dimensions() {
		assert.Equal(t, d, rows[i].Dims)
		assert.True(t, rows[i].HasFission)
	}

	// 3x3x4 has no steam but still gets a single-rod reactor.
	assert.False(t, rows[0].DirectBoiler.Feasible())
	assert.Equal(t, 1.0, rows[0].WaterFission.MaxSpeed)

	last := rows[8]
	assert.Equal(t, dims(5, 5, 5), last.Dims)
	assert.Equal(t, int64(752_000), last.DirectBoiler.Production)
	assert.Equal(t, int64(4_456_639), last.SodiumBoiler.CoolantConsumption)
	assert.Equal(t, 18.0, last.WaterFission.MaxSpeed)
	assert.Equal(t, 18.0, last.SodiumFission.MaxSpeed)
}

func TestSweep_IndependentOfWorkerCount(t *testing.T) {
	opt := newTestOptimizer()
	r := model.SweepRange{MinLength: 3, MinWidth: 3, MinHeight: 4, MaxHeight: 8}

	serial, err := opt.Sweep(context.Background(), SweepOptions{Range: r, Workers: 1})
	require.NoError(t, err)
	parallel, err := opt.Sweep(context.Background(), SweepOptions{Range: r, Workers: 8})
	require.NoError(t, err)

	if diff := cmp.Diff(serial, parallel, cmp.AllowUnexported(model.Grid{})); diff != "" {
		t.Errorf("sweep differs by worker count (-serial +parallel):\n%s", diff)
	}
}

func TestSweep_ReportsProgress(t *testing.T) {
	var calls atomic.Int64
	var lastTotal atomic.Int64
	_, err := newTestOptimizer().Sweep(context.Background(), SweepOptions{
		Range:   smallRange(),
		Workers: 2,
		Progress: func(done, total int) {
			calls.Add(1)
			lastTotal.Store(int64(total))
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), calls.Load())
	assert.Equal(t, int64(9), lastTotal.Load())
}

func TestSweep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rows, err := newTestOptimizer().Sweep(ctx, SweepOptions{Range: model.DefaultSweepRange()})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, rows)
}

func TestSweep_InvalidRange(t *testing.T) {
	_, err := newTestOptimizer().Sweep(context.Background(), SweepOptions{Range: model.SweepRange{MinLength: 1, MinWidth: 3, MinHeight: 4, MaxHeight: 5}})
	assert.ErrorIs(t, err, model.ErrInvalidDimensions)
}

func TestSummarize(t *testing.T) {
	rows, err := newTestOptimizer().Sweep(context.Background(), SweepOptions{Range: smallRange()})
	require.NoError(t, err)

	s := Summarize(rows)
	assert.Equal(t, 9, s.Rows)
	assert.Equal(t, 1, s.InfeasibleBoilers)

	prod, ok := s.Metric("direct_production")
	require.True(t, ok)
	assert.Equal(t, 8, prod.Count)
	assert.Equal(t, 176_000.0, prod.Min)
	assert.Equal(t, 752_000.0, prod.Max)
	assert.Equal(t, dims(5, 5, 5), prod.ArgMax)
	assert.InDelta(t, 416_000.0, prod.Mean, 1e-6)
	assert.Greater(t, prod.StdDev, 0.0)

	speed, ok := s.Metric("water_max_speed")
	require.True(t, ok)
	assert.Equal(t, 9, speed.Count)
	assert.Equal(t, 1.0, speed.Min)
	assert.Equal(t, 18.0, speed.Max)

	_, ok = s.Metric("nope")
	assert.False(t, ok)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Rows)
	for _, m := range s.Metrics {
		assert.Equal(t, 0, m.Count)
		assert.Equal(t, 0.0, m.Mean)
	}
}
