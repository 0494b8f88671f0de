package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

// DefaultProfilesPath returns the default file path for custom physics profiles.
func DefaultProfilesPath() string {
	return filepath.Join(DefaultConfigDir(), "profiles.json")
}

// SavePhysicsProfiles saves custom profiles to a JSON file.
func SavePhysicsProfiles(path string, profiles []model.PhysicsProfile) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPhysicsProfiles loads custom profiles from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadPhysicsProfiles(path string) ([]model.PhysicsProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.PhysicsProfile{}, nil
		}
		return nil, err
	}

	var profiles []model.PhysicsProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, err
	}

	// Loaded profiles are never built-in
	for i := range profiles {
		profiles[i].IsBuiltIn = false
	}
	return profiles, nil
}

// LoadPhysicsProfilesFromDefault loads custom profiles from the default path.
func LoadPhysicsProfilesFromDefault() ([]model.PhysicsProfile, error) {
	return LoadPhysicsProfiles(DefaultProfilesPath())
}

// ExportProfile exports a single profile to a JSON file (for sharing).
func ExportProfile(path string, profile model.PhysicsProfile) error {
	profile.IsBuiltIn = false
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportProfile imports a single profile from a JSON file. The constants
// must pass Physics.Validate.
func ImportProfile(path string) (model.PhysicsProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.PhysicsProfile{}, err
	}

	profile := model.PhysicsProfile{Physics: model.DefaultPhysics()}
	if err := json.Unmarshal(data, &profile); err != nil {
		return model.PhysicsProfile{}, err
	}

	profile.IsBuiltIn = false
	if profile.Name == "" {
		return model.PhysicsProfile{}, errors.New("imported profile has no name")
	}
	if err := profile.Physics.Validate(); err != nil {
		return model.PhysicsProfile{}, fmt.Errorf("imported profile %q: %w", profile.Name, err)
	}
	return profile, nil
}
