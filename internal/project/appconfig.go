package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

// maxRecentStudies caps the recent-studies list kept in the config.
const maxRecentStudies = 10

// DefaultConfigDir returns the default directory for application data.
// On all platforms this is ~/.reactorcalc/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".reactorcalc")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
// Fields missing from the file keep their default values.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	config := model.DefaultAppConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	if config.RecentStudies == nil {
		config.RecentStudies = []string{}
	}
	return config, nil
}

// AddRecentStudy moves path to the front of the recent list, dropping
// duplicates and anything past the cap.
func AddRecentStudy(config *model.AppConfig, path string) {
	recent := []string{path}
	for _, p := range config.RecentStudies {
		if p != path && len(recent) < maxRecentStudies {
			recent = append(recent, p)
		}
	}
	config.RecentStudies = recent
}
