package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned when a mode or structure name cannot be parsed.
var ErrUnknownMode = errors.New("unknown mode")

// Structure identifies which multiblock a job targets.
type Structure int

const (
	StructureBoiler  Structure = iota // Boiler partition search
	StructureFission                  // Fission fuel assembly reduction
)

func (s Structure) String() string {
	switch s {
	case StructureFission:
		return "fission"
	default:
		return "boiler"
	}
}

// ParseStructure converts a user-supplied structure name.
func ParseStructure(s string) (Structure, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "boiler", "b":
		return StructureBoiler, nil
	case "fission", "reactor", "fission reactor", "f":
		return StructureFission, nil
	default:
		return StructureBoiler, fmt.Errorf("%w: structure %q", ErrUnknownMode, s)
	}
}

func (s Structure) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Structure) UnmarshalText(b []byte) error {
	v, err := ParseStructure(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// HeatingMode selects how the boiler is heated, and therefore which value the
// layout search maximizes.
type HeatingMode int

const (
	DirectHeating HeatingMode = iota // Heating elements only, maximize steam production
	SodiumHeating                    // Hot sodium coolant, maximize coolant consumption
)

func (m HeatingMode) String() string {
	switch m {
	case SodiumHeating:
		return "sodium"
	default:
		return "direct"
	}
}

// ParseHeatingMode converts a user-supplied heating mode name.
func ParseHeatingMode(s string) (HeatingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "direct", "directheating", "direct heating", "d":
		return DirectHeating, nil
	case "sodium", "sodiumheating", "sodium heating", "s", "na":
		return SodiumHeating, nil
	default:
		return DirectHeating, fmt.Errorf("%w: heating mode %q", ErrUnknownMode, s)
	}
}

func (m HeatingMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *HeatingMode) UnmarshalText(b []byte) error {
	v, err := ParseHeatingMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// CoolingMode selects the coolant circulated through the fission chamber.
type CoolingMode int

const (
	WaterCooling  CoolingMode = iota // Water coolant
	SodiumCooling                    // Sodium coolant, roughly twice the cooling rate
)

func (m CoolingMode) String() string {
	switch m {
	case SodiumCooling:
		return "sodium"
	default:
		return "water"
	}
}

// ParseCoolingMode converts a user-supplied cooling mode name.
func ParseCoolingMode(s string) (CoolingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "water", "watercooling", "water cooling", "w":
		return WaterCooling, nil
	case "sodium", "sodiumcooling", "sodium cooling", "s", "na":
		return SodiumCooling, nil
	default:
		return WaterCooling, fmt.Errorf("%w: cooling mode %q", ErrUnknownMode, s)
	}
}

func (m CoolingMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *CoolingMode) UnmarshalText(b []byte) error {
	v, err := ParseCoolingMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
