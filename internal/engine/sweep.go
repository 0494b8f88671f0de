package engine

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

// SweepOptions controls a batch sweep.
type SweepOptions struct {
	Range    model.SweepRange
	Workers  int                   // 0 = one per CPU
	Progress func(done, total int) // Optional, called from worker goroutines
}

// Sweep computes both boiler modes and both fission modes for every shape in
// the range. Shapes are spread over a bounded worker pool; each search stays
// sequential. Rows come back in (height, width, length) order whatever the
// worker count. Cancelling ctx stops scheduling new shapes and returns its error.
func (o *Optimizer) Sweep(ctx context.Context, opts SweepOptions) ([]model.SweepRow, error) {
	if err := opts.Range.Validate(); err != nil {
		return nil, err
	}
	dims := opts.Range.Dimensions()
	rows := make([]model.SweepRow, len(dims))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var done atomic.Int64
	for i, d := range dims {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows[i] = o.sweepRow(d)
			if opts.Progress != nil {
				opts.Progress(int(done.Add(1)), len(dims))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

func (o *Optimizer) sweepRow(d model.Dimensions) model.SweepRow {
	row := model.SweepRow{
		Dims:         d,
		DirectBoiler: o.searchBoiler(d, model.DirectHeating),
		SodiumBoiler: o.searchBoiler(d, model.SodiumHeating),
	}
	if d.ValidateFission(o.Physics) == nil {
		row.HasFission = true
		row.WaterFission = o.reduceFission(d, model.WaterCooling)
		row.SodiumFission = o.reduceFission(d, model.SodiumCooling)
	}
	return row
}
