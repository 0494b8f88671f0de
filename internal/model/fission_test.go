package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridFillsFootprintOnly(t *testing.T) {
	g := NewGrid(2, 3, 4)

	assert.Equal(t, 2, g.Length())
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 24, g.AssemblyCount())
	assert.Equal(t, Cell{State: CellColumn, Height: 4}, g.At(1, 2))
	assert.Equal(t, CellOutside, g.At(2, 0).State)
	assert.Equal(t, CellOutside, g.At(0, 3).State)
}

func TestGridAccessorOutOfRange(t *testing.T) {
	g := NewGrid(MaxGridSize, MaxGridSize, 3)

	for _, xy := range [][2]int{{-1, 0}, {0, -1}, {MaxGridSize, 0}, {0, MaxGridSize}, {100, 100}} {
		c := g.At(xy[0], xy[1])
		assert.Equal(t, Cell{}, c, "coordinate %v", xy)
		assert.False(t, g.Occupied(xy[0], xy[1]))
		assert.False(t, g.Decrement(xy[0], xy[1]))
	}
}

func TestGridAdjacency(t *testing.T) {
	g, err := GridFromRows([][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, g.Adjacency(0, 0))
	assert.Equal(t, 2, g.Adjacency(0, 1))
	assert.Equal(t, 0, g.Adjacency(1, 1), "empty cell")
	assert.Equal(t, 0, g.Adjacency(5, 5), "outside cell")
}

func TestGridExposedSurface(t *testing.T) {
	g := NewGrid(1, 1, 1)
	assert.Equal(t, 6, g.ExposedSurface(0, 0))
	assert.Equal(t, 6, g.TotalSurface())
	assert.Equal(t, 1.0, g.Efficiency())

	g = NewGrid(2, 2, 3)
	assert.Equal(t, 8, g.ExposedSurface(0, 0))
	assert.Equal(t, 32, g.TotalSurface())
	assert.InDelta(t, 32.0/48.0, g.Efficiency(), 1e-12)
}

func TestGridSurfaceOnlyCountsTallerSides(t *testing.T) {
	g, err := GridFromRows([][]int{{3, 5}})
	require.NoError(t, err)

	// 5 rises 2 above its neighbour, 5 above each missing side.
	assert.Equal(t, 2+2+5+5+5, g.ExposedSurface(0, 1))
	assert.Equal(t, 2+3+3+3, g.ExposedSurface(0, 0))
}

func TestGridEfficiencyEmptyAndCapped(t *testing.T) {
	g := NewGrid(3, 3, 0)
	assert.Equal(t, 0, g.AssemblyCount())
	assert.Equal(t, 0.0, g.Efficiency())

	g, err := GridFromRows([][]int{{1, 0, 1}})
	require.NoError(t, err)
	assert.Equal(t, 1.0, g.Efficiency())
}

func TestGridDecrementNeverNegative(t *testing.T) {
	g := NewGrid(1, 2, 1)

	assert.True(t, g.Decrement(0, 0))
	assert.False(t, g.Decrement(0, 0))
	assert.Equal(t, 0, g.Height(0, 0))
	assert.Equal(t, CellColumn, g.At(0, 0).State)
	assert.Equal(t, 1, g.AssemblyCount())
}

func TestGridFromRowsRejectsBadShapes(t *testing.T) {
	_, err := GridFromRows([][]int{{1, 2}, {1}})
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = GridFromRows([][]int{{1, -1}})
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = GridFromRows(make([][]int, MaxGridSize+1))
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestGridJSONUsesRows(t *testing.T) {
	g, err := GridFromRows([][]int{{3, 5, 5}, {5, 0, 5}})
	require.NoError(t, err)

	data, err := json.Marshal(g)
	require.NoError(t, err)
	assert.JSONEq(t, `[[3,5,5],[5,0,5]]`, string(data))

	var back Grid
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, g.Rows(), back.Rows())
	assert.Equal(t, g.TotalSurface(), back.TotalSurface())
}

func TestGridString(t *testing.T) {
	g, err := GridFromRows([][]int{{3, 5}, {10, 0}})
	require.NoError(t, err)
	assert.Equal(t, "row 0:  3  5\nrow 1: 10  0\n", g.String())
}
