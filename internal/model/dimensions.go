package model

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned by the boundary layers when exterior
// dimensions fall outside the supported ranges.
var ErrInvalidDimensions = errors.New("invalid dimensions")

// Documented exterior dimension ranges (in blocks).
const (
	MinSide   = 3
	MaxSide   = 18
	MinHeight = 4
	MaxHeight = 18
)

// Dimensions are the exterior block dimensions of a multiblock, casing included.
type Dimensions struct {
	Length int `json:"length" yaml:"length"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%dx%d", d.Length, d.Width, d.Height)
}

// Area returns the exterior footprint area.
func (d Dimensions) Area() int {
	return d.Length * d.Width
}

// Volume returns the exterior volume.
func (d Dimensions) Volume() int {
	return d.Length * d.Width * d.Height
}

// Validate checks the dimensions against the documented ranges.
func (d Dimensions) Validate() error {
	if d.Length < MinSide || d.Length > MaxSide {
		return fmt.Errorf("%w: length %d must be between %d and %d", ErrInvalidDimensions, d.Length, MinSide, MaxSide)
	}
	if d.Width < MinSide || d.Width > MaxSide {
		return fmt.Errorf("%w: width %d must be between %d and %d", ErrInvalidDimensions, d.Width, MinSide, MaxSide)
	}
	if d.Height < MinHeight || d.Height > MaxHeight {
		return fmt.Errorf("%w: height %d must be between %d and %d", ErrInvalidDimensions, d.Height, MinHeight, MaxHeight)
	}
	return nil
}

// ValidateFission additionally checks that the interior footprint fits the
// fuel assembly grid for the given physics.
func (d Dimensions) ValidateFission(p Physics) error {
	if err := d.Validate(); err != nil {
		return err
	}
	l, w, h := p.FissionInterior(d)
	bound := p.GridBound
	if bound <= 0 || bound > MaxGridSize {
		bound = MaxGridSize
	}
	if l < 1 || w < 1 || h < 1 {
		return fmt.Errorf("%w: %s leaves no interior for the fuel assembly", ErrInvalidDimensions, d)
	}
	if l > bound || w > bound {
		return fmt.Errorf("%w: interior footprint %dx%d exceeds the %dx%d grid", ErrInvalidDimensions, l, w, bound, bound)
	}
	return nil
}
