package engine

import (
	"fmt"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

// OptimizeFission shapes the fuel assembly of a reactor with the given
// exterior dimensions. The interior starts completely filled and loses one
// rod segment at a time until the chamber can cool every remaining assembly.
func (o *Optimizer) OptimizeFission(d model.Dimensions, mode model.CoolingMode) (model.FissionLayout, error) {
	if err := d.ValidateFission(o.Physics); err != nil {
		return model.FissionLayout{}, err
	}
	return o.reduceFission(d, mode), nil
}

func (o *Optimizer) reduceFission(d model.Dimensions, mode model.CoolingMode) model.FissionLayout {
	length, width, height := o.Physics.FissionInterior(d)
	grid := model.NewGrid(length, width, height)

	removals := 0
	for {
		f := o.measure(d, mode, grid)
		if model.FissionFeasible(f.AssemblyCount, f.MaxSpeed) || !RemoveWorstAssembly(&grid) {
			f.Removals = removals
			return f
		}
		removals++
	}
}

// EvaluateFission measures a hand-made fuel assembly without changing it.
// The grid must match the interior footprint and no stack may exceed the
// interior height.
func (o *Optimizer) EvaluateFission(d model.Dimensions, mode model.CoolingMode, grid model.Grid) (model.FissionLayout, error) {
	if err := d.ValidateFission(o.Physics); err != nil {
		return model.FissionLayout{}, err
	}
	length, width, height := o.Physics.FissionInterior(d)
	if grid.Length() != length || grid.Width() != width {
		return model.FissionLayout{}, fmt.Errorf("%w: grid is %dx%d, interior is %dx%d",
			model.ErrInvalidDimensions, grid.Length(), grid.Width(), length, width)
	}
	for x := 0; x < length; x++ {
		for y := 0; y < width; y++ {
			if h := grid.Height(x, y); h > height {
				return model.FissionLayout{}, fmt.Errorf("%w: stack at (%d, %d) is %d high, interior is %d",
					model.ErrInvalidDimensions, x, y, h, height)
			}
		}
	}
	return o.measure(d, mode, grid), nil
}

func (o *Optimizer) measure(d model.Dimensions, mode model.CoolingMode, grid model.Grid) model.FissionLayout {
	length, width, height := o.Physics.FissionInterior(d)
	count := grid.AssemblyCount()
	efficiency := grid.Efficiency()
	return model.FissionLayout{
		Dims:          d,
		Mode:          mode,
		Length:        length,
		Width:         width,
		Height:        height,
		Grid:          grid,
		AssemblyCount: count,
		TotalSurface:  grid.TotalSurface(),
		Efficiency:    efficiency,
		MaxSpeed:      o.Physics.FissionMaxSpeed(length, width, height, efficiency, count, mode),
	}
}

// RemoveWorstAssembly takes one rod segment off the most crowded stack.
//
// Stacks are scanned row by row. The candidate starts at the origin with an
// adjacency of zero and moves only to a stack with strictly more occupied
// neighbours. If the candidate ends up on an empty cell (the origin was empty
// and nothing beat it) the last occupied stack in scan order is reduced
// instead. A grid with nothing left is not modified and false is returned.
func RemoveWorstAssembly(g *model.Grid) bool {
	worstX, worstY, worst := 0, 0, 0
	lastX, lastY, found := 0, 0, false
	for x := 0; x < g.Length(); x++ {
		for y := 0; y < g.Width(); y++ {
			if !g.Occupied(x, y) {
				continue
			}
			lastX, lastY, found = x, y, true
			if adj := g.Adjacency(x, y); adj > worst {
				worstX, worstY, worst = x, y, adj
			}
		}
	}
	if !found {
		return false
	}
	if g.Occupied(worstX, worstY) {
		return g.Decrement(worstX, worstY)
	}
	return g.Decrement(lastX, lastY)
}
