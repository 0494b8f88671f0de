package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPhysicsIsValid(t *testing.T) {
	require.NoError(t, DefaultPhysics().Validate())
}

func TestPhysicsValidateCollectsErrors(t *testing.T) {
	p := DefaultPhysics()
	p.CasingThickness = 0
	p.WaterCoolingRate = 0
	p.GridBound = 17

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "casing_thickness")
	assert.Contains(t, err.Error(), "water_cooling_rate")
	assert.Contains(t, err.Error(), "grid_bound")
}

func TestPhysicsValidateRejectsCasingWithoutInterior(t *testing.T) {
	p := DefaultPhysics()
	p.CasingThickness = 2

	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "leaves no interior")
}

func TestMaxHeatingElementWithoutInterior(t *testing.T) {
	p := DefaultPhysics()
	p.CasingThickness = 2
	d := Dimensions{Length: 3, Width: 3, Height: 10}

	for spliter := 1; spliter < p.MaxSpliterLayer(d); spliter++ {
		assert.Zero(t, p.MaxHeatingElement(d, spliter), "spliter %d", spliter)
	}
	assert.Zero(t, DefaultPhysics().MaxHeatingElement(Dimensions{Length: 5, Width: 4, Height: 6}, 0))
}

func TestBoilerFormulas(t *testing.T) {
	p := DefaultPhysics()
	d := Dimensions{Length: 5, Width: 4, Height: 6}

	assert.Equal(t, 4800.0, p.BoilerHeatCapacity(d))
	assert.Equal(t, 5, p.MaxSpliterLayer(d))
	assert.Equal(t, 18, p.MaxHeatingElement(d, 4))
	assert.Equal(t, 0, p.MaxHeatingElement(d, 1))

	water := p.WaterTank(d, 4, 3)
	heat := p.HeatRate(3)
	steam := p.SteamTank(d, 4)
	assert.Equal(t, int64(912_000), water)
	assert.Equal(t, int64(960_000), heat)
	assert.Equal(t, int64(6_400_000), steam)
	assert.Equal(t, int64(912_000), p.Production(water, heat, steam))
	assert.Equal(t, int64(10_240_000), p.CooledCoolantTank(steam))
	assert.Equal(t, int64(14_592_000), p.HotCoolantTank(water))
}

func TestCoolantConsumptionBoundedByDemand(t *testing.T) {
	p := DefaultPhysics()
	d := Dimensions{Length: 5, Width: 4, Height: 6}
	hc := p.BoilerHeatCapacity(d)

	b := EvaluateBoiler(p, d, SodiumHeating, hc, 4, 2)
	assert.Equal(t, int64(640_000), b.Production)
	assert.Equal(t, int64(5_373_561), b.CoolantConsumption)
	assert.Equal(t, b.CoolantConsumption, b.Value())
	assert.LessOrEqual(t, b.CoolantConsumption, b.CooledCoolantTank)
}

func TestFissionFormulas(t *testing.T) {
	p := DefaultPhysics()
	l, w, h := p.FissionInterior(Dimensions{Length: 3, Width: 3, Height: 4})
	assert.Equal(t, []int{1, 1, 1}, []int{l, w, h})

	// 3·3·4 exterior minus a 1·1·2 working column
	assert.Equal(t, 34.0, p.ChamberVolume(1, 1, 1))
	assert.Equal(t, 1.0, p.FissionMaxSpeed(1, 1, 1, 1.0, 1, WaterCooling))
	assert.InDelta(t, 34*0.82685*0.5, p.FissionMaxSpeed(1, 1, 1, 0.5, 100, SodiumCooling), 1e-9)
}

func TestFissionFeasible(t *testing.T) {
	assert.True(t, FissionFeasible(10, 10))
	assert.True(t, FissionFeasible(10, 9.01))
	assert.False(t, FissionFeasible(10, 9))
}

func TestDimensionsValidate(t *testing.T) {
	tests := []struct {
		name string
		d    Dimensions
		ok   bool
	}{
		{"smallest", Dimensions{3, 3, 4}, true},
		{"largest", Dimensions{18, 18, 18}, true},
		{"short", Dimensions{3, 3, 3}, false},
		{"narrow", Dimensions{3, 2, 5}, false},
		{"too long", Dimensions{19, 3, 5}, false},
		{"too tall", Dimensions{3, 3, 19}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.d.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidDimensions)
			}
		})
	}
}

func TestDimensionsValidateFissionGridBound(t *testing.T) {
	p := DefaultPhysics()
	assert.NoError(t, Dimensions{18, 18, 18}.ValidateFission(p))

	p.GridBound = 8
	err := Dimensions{12, 5, 6}.ValidateFission(p)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	assert.Contains(t, err.Error(), "10x3")

	p = DefaultPhysics()
	p.CasingThickness = 2
	assert.ErrorIs(t, Dimensions{4, 4, 6}.ValidateFission(p), ErrInvalidDimensions)
}
