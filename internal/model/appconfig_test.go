package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAppConfigIsValid(t *testing.T) {
	cfg := DefaultAppConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "system", cfg.Theme)
	assert.NotNil(t, cfg.RecentStudies)
	assert.Equal(t, DefaultPhysics(), cfg.ResolvePhysics())
}

func TestResolvePhysicsPrefersCustom(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.Physics.SteamTankVolume = 1

	assert.Equal(t, int64(160_000), cfg.ResolvePhysics().SteamTankVolume)

	cfg.UseCustomPhysics = true
	assert.Equal(t, int64(1), cfg.ResolvePhysics().SteamTankVolume)
}

func TestAppConfigValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.Sweep.Workers = -1
	cfg.Sweep.MinLength = 2
	cfg.Output.Formats = []string{"csv", "docx"}
	cfg.Log.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"workers", "sweep:", "docx", "xml"} {
		assert.Contains(t, err.Error(), want)
	}
}
