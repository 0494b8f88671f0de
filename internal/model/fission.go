package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MaxGridSize is the fixed side length of the fuel assembly grid.
const MaxGridSize = 16

// CellState tags a grid cell as inside or outside the reactor footprint.
type CellState uint8

const (
	CellOutside CellState = iota // Not part of the footprint, never mutated
	CellColumn                   // A footprint column holding a rod stack (possibly empty)
)

// Cell is one grid position. Height is only meaningful for CellColumn.
type Cell struct {
	State  CellState
	Height int
}

// Occupied reports whether the cell is a column with at least one rod segment.
func (c Cell) Occupied() bool {
	return c.State == CellColumn && c.Height > 0
}

// Grid is the top view of a fuel assembly: one rod stack per footprint column.
// Rows run along the reactor length (x), columns along its width (y).
type Grid struct {
	cells  [MaxGridSize][MaxGridSize]Cell
	length int
	width  int
}

// NewGrid builds a length×width footprint with every column filled to height.
// Sizes beyond MaxGridSize are clipped; callers validate before building.
func NewGrid(length, width, height int) Grid {
	g := Grid{
		length: clampSide(length),
		width:  clampSide(width),
	}
	if height < 0 {
		height = 0
	}
	for x := 0; x < g.length; x++ {
		for y := 0; y < g.width; y++ {
			g.cells[x][y] = Cell{State: CellColumn, Height: height}
		}
	}
	return g
}

func clampSide(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxGridSize {
		return MaxGridSize
	}
	return n
}

// Length returns the footprint length.
func (g *Grid) Length() int { return g.length }

// Width returns the footprint width.
func (g *Grid) Width() int { return g.width }

// At returns the cell at (x, y). Any coordinate outside the footprint yields
// an Outside cell with zero height.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= g.length || y >= g.width {
		return Cell{}
	}
	return g.cells[x][y]
}

// Height returns the stack height at (x, y), zero outside the footprint.
func (g *Grid) Height(x, y int) int {
	return g.At(x, y).Height
}

// Occupied reports whether (x, y) holds at least one rod segment.
func (g *Grid) Occupied(x, y int) bool {
	return g.At(x, y).Occupied()
}

// Decrement removes one rod segment at (x, y). It refuses (returning false)
// for outside or empty cells, so heights never go negative.
func (g *Grid) Decrement(x, y int) bool {
	if !g.Occupied(x, y) {
		return false
	}
	g.cells[x][y].Height--
	return true
}

// Adjacency counts the orthogonal neighbours of an occupied cell that are
// themselves occupied. Zero for empty or outside cells.
func (g *Grid) Adjacency(x, y int) int {
	if !g.Occupied(x, y) {
		return 0
	}
	n := 0
	for _, d := range neighbours {
		if g.Occupied(x+d[0], y+d[1]) {
			n++
		}
	}
	return n
}

// ExposedSurface estimates the cooled surface of an occupied stack: the
// height it rises above each neighbour, plus the top and bottom faces.
func (g *Grid) ExposedSurface(x, y int) int {
	if !g.Occupied(x, y) {
		return 0
	}
	own := g.Height(x, y)
	surface := 2
	for _, d := range neighbours {
		if diff := own - g.Height(x+d[0], y+d[1]); diff > 0 {
			surface += diff
		}
	}
	return surface
}

var neighbours = [4][2]int{{-1, 0}, {1, 0}, {0, 1}, {0, -1}}

// AssemblyCount is the total number of rod segments in the grid.
func (g *Grid) AssemblyCount() int {
	count := 0
	for x := 0; x < g.length; x++ {
		for y := 0; y < g.width; y++ {
			if c := g.cells[x][y]; c.Occupied() {
				count += c.Height
			}
		}
	}
	return count
}

// TotalSurface sums the exposed surface over the footprint.
func (g *Grid) TotalSurface() int {
	total := 0
	for x := 0; x < g.length; x++ {
		for y := 0; y < g.width; y++ {
			total += g.ExposedSurface(x, y)
		}
	}
	return total
}

// Efficiency is the share of rod faces that are cooled, capped at 1.
// An empty grid has zero efficiency.
func (g *Grid) Efficiency() float64 {
	count := g.AssemblyCount()
	if count == 0 {
		return 0
	}
	e := float64(g.TotalSurface()) / float64(count) / 4.0
	if e < 1 {
		return e
	}
	return 1
}

// Rows returns a copy of the footprint heights, one slice per row.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.length)
	for x := range rows {
		rows[x] = make([]int, g.width)
		for y := range rows[x] {
			rows[x][y] = g.cells[x][y].Height
		}
	}
	return rows
}

// GridFromRows rebuilds a grid from footprint heights as produced by Rows.
func GridFromRows(rows [][]int) (Grid, error) {
	if len(rows) > MaxGridSize {
		return Grid{}, fmt.Errorf("%w: %d rows exceed the %d grid", ErrInvalidDimensions, len(rows), MaxGridSize)
	}
	g := Grid{length: len(rows)}
	for x, row := range rows {
		if x == 0 {
			g.width = len(row)
		}
		if len(row) != g.width || len(row) > MaxGridSize {
			return Grid{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidDimensions, x, len(row), g.width)
		}
		for y, h := range row {
			if h < 0 {
				return Grid{}, fmt.Errorf("%w: negative height at (%d, %d)", ErrInvalidDimensions, x, y)
			}
			g.cells[x][y] = Cell{State: CellColumn, Height: h}
		}
	}
	return g, nil
}

func (g Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Rows())
}

func (g *Grid) UnmarshalJSON(b []byte) error {
	var rows [][]int
	if err := json.Unmarshal(b, &rows); err != nil {
		return err
	}
	parsed, err := GridFromRows(rows)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// String renders one line per row, e.g. "row 0:  3  5  5".
func (g Grid) String() string {
	var b strings.Builder
	for x := 0; x < g.length; x++ {
		fmt.Fprintf(&b, "row%2d:", x)
		for y := 0; y < g.width; y++ {
			fmt.Fprintf(&b, " %2d", g.cells[x][y].Height)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// FissionLayout is the frozen result of a fuel assembly reduction.
type FissionLayout struct {
	Dims          Dimensions  `json:"dims"`
	Mode          CoolingMode `json:"mode"`
	Length        int         `json:"interior_length"`
	Width         int         `json:"interior_width"`
	Height        int         `json:"interior_height"`
	Grid          Grid        `json:"grid"`
	AssemblyCount int         `json:"assembly_count"`
	TotalSurface  int         `json:"total_surface"`
	Efficiency    float64     `json:"efficiency"`
	MaxSpeed      float64     `json:"max_speed"`
	Removals      int         `json:"removals"`
}
