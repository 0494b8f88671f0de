// Package config layers application settings: built-in defaults, an
// optional YAML file, REACTORCALC_* environment variables and command-line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/piwi3910/ReactorCalc/internal/model"
	"github.com/piwi3910/ReactorCalc/internal/project"
)

// EnvPrefix is prepended to every environment override, e.g.
// REACTORCALC_SWEEP_WORKERS=4.
const EnvPrefix = "REACTORCALC"

// ErrConfigExists is returned by WriteDefault when it would overwrite a file.
var ErrConfigExists = errors.New("config file already exists")

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"profile":    "profile",
	"workers":    "sweep.workers",
	"min-height": "sweep.min_height",
	"max-height": "sweep.max_height",
	"addr":       "server.addr",
	"out":        "output.dir",
	"format":     "output.formats",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// DefaultPath returns ~/.reactorcalc/config.yaml.
func DefaultPath() string {
	return filepath.Join(project.DefaultConfigDir(), "config.yaml")
}

// New returns a viper instance primed with the defaults and environment
// lookups.
func New() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := setDefaults(v, model.DefaultAppConfig()); err != nil {
		return nil, err
	}
	return v, nil
}

// setDefaults registers every key of cfg so environment variables can
// override nested fields.
func setDefaults(v *viper.Viper, cfg model.AppConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode defaults: %w", err)
	}
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("failed to decode defaults: %w", err)
	}
	flatten(v, "", tree)
	return nil
}

func flatten(v *viper.Viper, prefix string, tree map[string]any) {
	for k, val := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := val.(map[string]any); ok {
			flatten(v, key, sub)
			continue
		}
		v.SetDefault(key, val)
	}
}

// BindFlags binds whichever of the known flags fs defines.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}
	return nil
}

// Load reads the config file at path into v and decodes the merged
// settings. An empty path falls back to DefaultPath when that file exists.
func Load(v *viper.Viper, path string) (model.AppConfig, error) {
	if path == "" {
		if _, err := os.Stat(DefaultPath()); err == nil {
			path = DefaultPath()
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return model.AppConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg model.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return model.AppConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.RecentStudies == nil {
		cfg.RecentStudies = []string{}
	}
	if err := cfg.Validate(); err != nil {
		return model.AppConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// WriteDefault writes a starter YAML file holding the default settings.
// An existing file is kept unless force is set.
func WriteDefault(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}
	data, err := yaml.Marshal(model.DefaultAppConfig())
	if err != nil {
		return fmt.Errorf("failed to encode defaults: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
