package importer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

// ErrNotABlueprint is returned when a DXF file carries no reactor title.
var ErrNotABlueprint = errors.New("not a reactor blueprint")

// Blueprint is a fuel assembly read back from a DXF drawing.
type Blueprint struct {
	Dims model.Dimensions
	Mode model.CoolingMode
	Grid model.Grid
}

// stackLabel is a stack height drawn inside its footprint cell.
type stackLabel struct {
	x, y, height int
}

// ImportDXF reads a blueprint as written by the DXF export. The title text
// ("5x5x8 water cooling, ...") gives the reactor size and mode; every
// numeric text is the height of the stack whose cell it sits in. Cells
// without a label are empty. Labels may be edited or deleted in a CAD
// program before the drawing is read back.
func ImportDXF(path string, physics model.Physics) (Blueprint, error) {
	drawing, err := dxf.Open(path)
	if err != nil {
		return Blueprint{}, fmt.Errorf("cannot open DXF file: %w", err)
	}

	var bp Blueprint
	titled := false
	var labels []stackLabel
	for _, ent := range drawing.Entities() {
		text, ok := ent.(*entity.Text)
		if !ok || len(text.Coord1) < 2 {
			continue
		}
		value := strings.TrimSpace(text.Value)
		if h, err := strconv.Atoi(value); err == nil {
			labels = append(labels, stackLabel{
				x:      int(math.Floor(-text.Coord1[1])),
				y:      int(math.Floor(text.Coord1[0])),
				height: h,
			})
			continue
		}
		if d, mode, ok := parseTitle(value); ok {
			bp.Dims, bp.Mode, titled = d, mode, true
		}
	}
	if !titled {
		return Blueprint{}, fmt.Errorf("%w: %s", ErrNotABlueprint, path)
	}
	if err := bp.Dims.ValidateFission(physics); err != nil {
		return Blueprint{}, err
	}

	length, width, _ := physics.FissionInterior(bp.Dims)
	rows := make([][]int, length)
	for x := range rows {
		rows[x] = make([]int, width)
	}
	for _, l := range labels {
		if l.x < 0 || l.x >= length || l.y < 0 || l.y >= width {
			return Blueprint{}, fmt.Errorf("%w: stack label at (%d, %d) is outside the %dx%d interior",
				model.ErrInvalidDimensions, l.x, l.y, length, width)
		}
		rows[l.x][l.y] = l.height
	}
	bp.Grid, err = model.GridFromRows(rows)
	if err != nil {
		return Blueprint{}, err
	}
	return bp, nil
}

// parseTitle reads "LxWxH MODE cooling" from the start of a title text.
func parseTitle(s string) (model.Dimensions, model.CoolingMode, bool) {
	var d model.Dimensions
	var mode string
	if _, err := fmt.Sscanf(s, "%dx%dx%d %s", &d.Length, &d.Width, &d.Height, &mode); err != nil {
		return model.Dimensions{}, 0, false
	}
	cooling, err := model.ParseCoolingMode(mode)
	if err != nil {
		return model.Dimensions{}, 0, false
	}
	return d, cooling, true
}
