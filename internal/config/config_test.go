package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

func load(t *testing.T, path string) (model.AppConfig, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	v, err := New()
	require.NoError(t, err)
	return Load(v, path)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(t, "")
	require.NoError(t, err)

	want := model.DefaultAppConfig()
	assert.Equal(t, want.Profile, cfg.Profile)
	assert.Equal(t, want.Physics, cfg.Physics)
	assert.Equal(t, want.Sweep, cfg.Sweep)
	assert.Equal(t, want.Server.Addr, cfg.Server.Addr)
	assert.Equal(t, []string{"csv"}, cfg.Output.Formats)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reactorcalc.yaml")
	content := `
profile: Doubled Steam
sweep:
  max_height: 10
  workers: 3
physics:
  heater_heat_rate: 640000
output:
  formats: [csv, xlsx]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := load(t, path)
	require.NoError(t, err)

	assert.Equal(t, "Doubled Steam", cfg.Profile)
	assert.Equal(t, 10, cfg.Sweep.MaxHeight)
	assert.Equal(t, model.MinHeight, cfg.Sweep.MinHeight)
	assert.Equal(t, 3, cfg.Sweep.Workers)
	assert.Equal(t, int64(640000), cfg.Physics.HeaterHeatRate)
	assert.Equal(t, model.DefaultPhysics().WaterTankVolume, cfg.Physics.WaterTankVolume)
	assert.Equal(t, []string{"csv", "xlsx"}, cfg.Output.Formats)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reactorcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sweep:\n  workers: 3\n"), 0644))
	t.Setenv("REACTORCALC_SWEEP_WORKERS", "7")
	t.Setenv("REACTORCALC_LOG_FORMAT", "json")

	cfg, err := load(t, path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Sweep.Workers)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestBindFlagsOverrideEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("REACTORCALC_SERVER_ADDR", ":9000")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("addr", ":8080", "")
	fs.Int("workers", 0, "")
	fs.Bool("json", false, "")
	require.NoError(t, fs.Parse([]string{"--addr", ":9999"}))

	v, err := New()
	require.NoError(t, err)
	require.NoError(t, BindFlags(v, fs))

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	// Unset flags fall through to the defaults.
	assert.Equal(t, 0, cfg.Sweep.Workers)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  formats: [docx]\nsweep:\n  max_height: 40\n"), 0644))

	_, err := load(t, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output:")
	assert.Contains(t, err.Error(), "sweep:")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := load(t, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefault(path, false))
	err := WriteDefault(path, false)
	assert.ErrorIs(t, err, ErrConfigExists)
	require.NoError(t, WriteDefault(path, true))

	cfg, err := load(t, path)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultAppConfig().Physics, cfg.Physics)
	assert.Equal(t, model.DefaultSweepRange(), cfg.Sweep.SweepRange)
}
