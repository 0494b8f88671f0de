package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SweepRow holds every computation for one set of exterior dimensions.
type SweepRow struct {
	Dims          Dimensions    `json:"dims"`
	DirectBoiler  BoilerLayout  `json:"direct_boiler"`
	SodiumBoiler  BoilerLayout  `json:"sodium_boiler"`
	WaterFission  FissionLayout `json:"water_fission"`
	SodiumFission FissionLayout `json:"sodium_fission"`
	HasFission    bool          `json:"has_fission"` // False when the interior does not fit the grid
}

// SweepRange bounds a sweep. Width never exceeds height and length never
// exceeds width, so every shape is visited once.
type SweepRange struct {
	MinLength int `json:"min_length" yaml:"min_length" mapstructure:"min_length"`
	MinWidth  int `json:"min_width" yaml:"min_width" mapstructure:"min_width"`
	MinHeight int `json:"min_height" yaml:"min_height" mapstructure:"min_height"`
	MaxHeight int `json:"max_height" yaml:"max_height" mapstructure:"max_height"`
}

// DefaultSweepRange covers every documented exterior size.
func DefaultSweepRange() SweepRange {
	return SweepRange{MinLength: MinSide, MinWidth: MinSide, MinHeight: MinHeight, MaxHeight: MaxHeight}
}

// Dimensions enumerates the range in (height, width, length) order.
func (r SweepRange) Dimensions() []Dimensions {
	var out []Dimensions
	for h := r.MinHeight; h <= r.MaxHeight; h++ {
		for w := r.MinWidth; w <= h; w++ {
			for l := r.MinLength; l <= w; l++ {
				out = append(out, Dimensions{Length: l, Width: w, Height: h})
			}
		}
	}
	return out
}

// Validate checks that the range stays within the documented sizes.
func (r SweepRange) Validate() error {
	lo := Dimensions{Length: r.MinLength, Width: r.MinWidth, Height: r.MinHeight}
	if err := lo.Validate(); err != nil {
		return err
	}
	hi := Dimensions{Length: r.MinLength, Width: r.MinWidth, Height: r.MaxHeight}
	return hi.Validate()
}

func (r SweepRange) String() string {
	return fmt.Sprintf("heights %d-%d, widths from %d, lengths from %d", r.MinHeight, r.MaxHeight, r.MinWidth, r.MinLength)
}

// Study is a saved, named sweep.
type Study struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
	ProfileName string     `json:"profile_name"`
	Physics     Physics    `json:"physics"`
	Range       SweepRange `json:"range"`
	Rows        []SweepRow `json:"rows"`
}

// NewStudy creates an empty study for the given profile.
func NewStudy(name string, profile PhysicsProfile, r SweepRange) Study {
	now := time.Now().UTC().Format(time.RFC3339)
	if name == "" {
		name = "Untitled"
	}
	return Study{
		ID:          uuid.New().String(),
		Name:        name,
		CreatedAt:   now,
		UpdatedAt:   now,
		ProfileName: profile.Name,
		Physics:     profile.Physics,
		Range:       r,
		Rows:        []SweepRow{},
	}
}
