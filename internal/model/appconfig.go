package model

import (
	"errors"
	"fmt"
	"strings"
)

// AppConfig holds application-wide preferences and default settings.
// It is loaded by the config package from defaults, an optional file,
// REACTORCALC_* environment variables and command-line flags.
type AppConfig struct {
	// Physics profile applied to every computation. Physics overrides it
	// when UseCustomPhysics is set.
	Profile          string  `json:"profile" yaml:"profile" mapstructure:"profile"`
	UseCustomPhysics bool    `json:"use_custom_physics" yaml:"use_custom_physics" mapstructure:"use_custom_physics"`
	Physics          Physics `json:"physics" yaml:"physics" mapstructure:"physics"`

	Sweep  SweepConfig  `json:"sweep" yaml:"sweep" mapstructure:"sweep"`
	Server ServerConfig `json:"server" yaml:"server" mapstructure:"server"`
	Output OutputConfig `json:"output" yaml:"output" mapstructure:"output"`
	Log    LogConfig    `json:"log" yaml:"log" mapstructure:"log"`

	RecentStudies []string `json:"recent_studies" yaml:"recent_studies" mapstructure:"recent_studies"`
	Theme         string   `json:"theme" yaml:"theme" mapstructure:"theme"` // "light", "dark", "system"
}

// SweepConfig bounds the batch sweep and its worker pool.
type SweepConfig struct {
	SweepRange `yaml:",inline" mapstructure:",squash"`
	Workers    int `json:"workers" yaml:"workers" mapstructure:"workers"` // 0 = one per CPU
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`
}

// OutputConfig sets where and how sweep results are written.
type OutputConfig struct {
	Dir     string   `json:"dir" yaml:"dir" mapstructure:"dir"`
	Formats []string `json:"formats" yaml:"formats" mapstructure:"formats"` // csv, xlsx, pdf, dxf
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level  string `json:"level" yaml:"level" mapstructure:"level"`    // debug, info, warn, error
	Format string `json:"format" yaml:"format" mapstructure:"format"` // console or json
}

// Supported export formats.
var OutputFormats = []string{"csv", "xlsx", "pdf", "dxf"}

// DefaultAppConfig returns an AppConfig populated with the reference physics
// and the full documented sweep range.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Profile: PhysicsProfiles[0].Name,
		Physics: DefaultPhysics(),
		Sweep: SweepConfig{
			SweepRange: DefaultSweepRange(),
			Workers:    0,
		},
		Server: ServerConfig{Addr: ":8080"},
		Output: OutputConfig{
			Dir:     "out",
			Formats: []string{"csv"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		RecentStudies: []string{},
		Theme:         "system",
	}
}

// ResolvePhysics returns the constants computations should use.
func (c AppConfig) ResolvePhysics() Physics {
	if c.UseCustomPhysics {
		return c.Physics
	}
	return GetPhysicsProfile(c.Profile).Physics
}

// Validate reports every invalid setting at once.
func (c AppConfig) Validate() error {
	var errs []error
	if err := c.ResolvePhysics().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("physics: %w", err))
	}
	if err := c.Sweep.SweepRange.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("sweep: %w", err))
	}
	if c.Sweep.Workers < 0 {
		errs = append(errs, fmt.Errorf("sweep: workers must be >= 0, got %d", c.Sweep.Workers))
	}
	for _, f := range c.Output.Formats {
		if !isOutputFormat(f) {
			errs = append(errs, fmt.Errorf("output: unsupported format %q", f))
		}
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log: unsupported format %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

func isOutputFormat(f string) bool {
	for _, known := range OutputFormats {
		if strings.EqualFold(f, known) {
			return true
		}
	}
	return false
}
