package model

import (
	"errors"
	"fmt"
	"strings"
)

// PhysicsProfile is a named set of balance constants.
type PhysicsProfile struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Physics     Physics `json:"physics" yaml:"physics"`
	IsBuiltIn   bool    `json:"is_built_in" yaml:"-"`
}

// Built-in physics profiles. The first entry is the fallback.
var PhysicsProfiles = []PhysicsProfile{
	{
		Name:        "Default",
		Description: "Reference balance used by the published tables",
		Physics:     DefaultPhysics(),
		IsBuiltIn:   true,
	},
	{
		Name:        "Doubled Steam",
		Description: "Steam blocks hold twice as much, shifting the separator down",
		Physics:     doubledSteam(),
		IsBuiltIn:   true,
	},
}

func doubledSteam() Physics {
	p := DefaultPhysics()
	p.SteamTankVolume *= 2
	return p
}

// CustomPhysicsProfiles holds user-defined profiles loaded at startup.
var CustomPhysicsProfiles []PhysicsProfile

// AllPhysicsProfiles returns the built-in profiles followed by custom ones.
func AllPhysicsProfiles() []PhysicsProfile {
	all := make([]PhysicsProfile, 0, len(PhysicsProfiles)+len(CustomPhysicsProfiles))
	all = append(all, PhysicsProfiles...)
	all = append(all, CustomPhysicsProfiles...)
	return all
}

// GetPhysicsProfile returns the profile with the given name, or Default.
func GetPhysicsProfile(name string) PhysicsProfile {
	for _, p := range AllPhysicsProfiles() {
		if p.Name == name {
			return p
		}
	}
	return PhysicsProfiles[0]
}

// PhysicsProfileNames lists every available profile name.
func PhysicsProfileNames() []string {
	var names []string
	for _, p := range AllPhysicsProfiles() {
		names = append(names, p.Name)
	}
	return names
}

// ErrProfileExists is returned when a profile name is already taken.
var ErrProfileExists = errors.New("profile already exists")

// NewCustomPhysicsProfile starts a custom profile from the default constants.
func NewCustomPhysicsProfile(name string) PhysicsProfile {
	return PhysicsProfile{
		Name:        name,
		Description: "Custom profile",
		Physics:     DefaultPhysics(),
	}
}

// AddCustomPhysicsProfile registers a custom profile. Names are unique
// across built-in and custom profiles, ignoring case.
func AddCustomPhysicsProfile(p PhysicsProfile) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return errors.New("profile name cannot be empty")
	}
	for _, existing := range AllPhysicsProfiles() {
		if strings.EqualFold(existing.Name, name) {
			return fmt.Errorf("%w: %q", ErrProfileExists, name)
		}
	}
	if err := p.Physics.Validate(); err != nil {
		return fmt.Errorf("profile %q: %w", name, err)
	}
	p.Name = name
	p.IsBuiltIn = false
	CustomPhysicsProfiles = append(CustomPhysicsProfiles, p)
	return nil
}

// UpdateCustomPhysicsProfile replaces the custom profile called oldName.
func UpdateCustomPhysicsProfile(oldName string, p PhysicsProfile) error {
	idx := -1
	for i, existing := range CustomPhysicsProfiles {
		if existing.Name == oldName {
			idx = i
			continue
		}
		if strings.EqualFold(existing.Name, p.Name) {
			return fmt.Errorf("%w: %q", ErrProfileExists, p.Name)
		}
	}
	if idx < 0 {
		return fmt.Errorf("custom profile %q not found", oldName)
	}
	for _, b := range PhysicsProfiles {
		if strings.EqualFold(b.Name, p.Name) {
			return fmt.Errorf("%w: %q", ErrProfileExists, p.Name)
		}
	}
	if err := p.Physics.Validate(); err != nil {
		return fmt.Errorf("profile %q: %w", p.Name, err)
	}
	p.IsBuiltIn = false
	CustomPhysicsProfiles[idx] = p
	return nil
}

// RemoveCustomPhysicsProfile deletes a custom profile. Built-in profiles
// cannot be removed.
func RemoveCustomPhysicsProfile(name string) error {
	for i, p := range CustomPhysicsProfiles {
		if p.Name == name {
			CustomPhysicsProfiles = append(CustomPhysicsProfiles[:i], CustomPhysicsProfiles[i+1:]...)
			return nil
		}
	}
	for _, b := range PhysicsProfiles {
		if b.Name == name {
			return fmt.Errorf("profile %q is built-in", name)
		}
	}
	return fmt.Errorf("custom profile %q not found", name)
}
