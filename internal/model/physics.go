package model

import (
	"errors"
	"fmt"
)

// Physics holds the per-block constants of one game balance version.
// Both optimizers read every volume, rate and efficiency from here.
type Physics struct {
	CasingThickness int `json:"casing_thickness" yaml:"casing_thickness" mapstructure:"casing_thickness"` // Wall allowance in blocks

	// Boiler
	WaterTankVolume          int64   `json:"water_tank_volume" yaml:"water_tank_volume" mapstructure:"water_tank_volume"`                            // mB per water block
	HeaterHeatRate           int64   `json:"heater_heat_rate" yaml:"heater_heat_rate" mapstructure:"heater_heat_rate"`                               // Heat per heating element
	SteamTankVolume          int64   `json:"steam_tank_volume" yaml:"steam_tank_volume" mapstructure:"steam_tank_volume"`                            // mB per steam block
	CoolantCoolingEfficiency float64 `json:"coolant_cooling_efficiency" yaml:"coolant_cooling_efficiency" mapstructure:"coolant_cooling_efficiency"` // Share of hot coolant heat transferred
	CasingHeatCapacity       float64 `json:"casing_heat_capacity" yaml:"casing_heat_capacity" mapstructure:"casing_heat_capacity"`                   // Per casing block
	HeatedCoolantTemp        float64 `json:"heated_coolant_temp" yaml:"heated_coolant_temp" mapstructure:"heated_coolant_temp"`                      // Temperature of incoming hot coolant
	SteamEnergyEfficiency    float64 `json:"steam_energy_efficiency" yaml:"steam_energy_efficiency" mapstructure:"steam_energy_efficiency"`
	WaterThermalEnthalpy     float64 `json:"water_thermal_enthalpy" yaml:"water_thermal_enthalpy" mapstructure:"water_thermal_enthalpy"`
	SodiumThermalEnthalpy    float64 `json:"sodium_thermal_enthalpy" yaml:"sodium_thermal_enthalpy" mapstructure:"sodium_thermal_enthalpy"`
	BoilerWaterConductivity  float64 `json:"boiler_water_conductivity" yaml:"boiler_water_conductivity" mapstructure:"boiler_water_conductivity"`
	CooledCoolantRatio       float64 `json:"cooled_coolant_ratio" yaml:"cooled_coolant_ratio" mapstructure:"cooled_coolant_ratio"` // Cooled coolant tank per mB of steam tank
	HotCoolantRatio          int64   `json:"hot_coolant_ratio" yaml:"hot_coolant_ratio" mapstructure:"hot_coolant_ratio"`          // Hot coolant tank per mB of water tank

	// Fission reactor
	WaterCoolingRate  float64 `json:"water_cooling_rate" yaml:"water_cooling_rate" mapstructure:"water_cooling_rate"`
	SodiumCoolingRate float64 `json:"sodium_cooling_rate" yaml:"sodium_cooling_rate" mapstructure:"sodium_cooling_rate"`
	GridBound         int     `json:"grid_bound" yaml:"grid_bound" mapstructure:"grid_bound"` // Max interior footprint side
}

// DefaultPhysics returns the reference balance constants.
func DefaultPhysics() Physics {
	return Physics{
		CasingThickness:          1,
		WaterTankVolume:          16_000,
		HeaterHeatRate:           320_000,
		SteamTankVolume:          160_000,
		CoolantCoolingEfficiency: 0.4,
		CasingHeatCapacity:       50.0,
		HeatedCoolantTemp:        100_000.0,
		SteamEnergyEfficiency:    0.2,
		WaterThermalEnthalpy:     10.0,
		SodiumThermalEnthalpy:    5.0,
		BoilerWaterConductivity:  0.7,
		CooledCoolantRatio:       1.6,
		HotCoolantRatio:          16,
		WaterCoolingRate:         0.413425,
		SodiumCoolingRate:        0.82685,
		GridBound:                MaxGridSize,
	}
}

// Validate rejects constant sets the formulas cannot work with.
func (p Physics) Validate() error {
	var errs []error
	if p.CasingThickness < 1 {
		errs = append(errs, fmt.Errorf("casing_thickness must be >= 1, got %d", p.CasingThickness))
	}
	if 2*p.CasingThickness >= MinSide || 3*p.CasingThickness >= MinHeight {
		errs = append(errs, fmt.Errorf("casing_thickness %d leaves no interior in a %dx%dx%d reactor",
			p.CasingThickness, MinSide, MinSide, MinHeight))
	}
	if p.WaterTankVolume <= 0 || p.HeaterHeatRate <= 0 || p.SteamTankVolume <= 0 {
		errs = append(errs, errors.New("tank volumes and heater rate must be positive"))
	}
	if p.HotCoolantRatio <= 0 || p.CooledCoolantRatio <= 0 {
		errs = append(errs, errors.New("coolant tank ratios must be positive"))
	}
	positives := []struct {
		name string
		v    float64
	}{
		{"casing_heat_capacity", p.CasingHeatCapacity},
		{"heated_coolant_temp", p.HeatedCoolantTemp},
		{"steam_energy_efficiency", p.SteamEnergyEfficiency},
		{"water_thermal_enthalpy", p.WaterThermalEnthalpy},
		{"sodium_thermal_enthalpy", p.SodiumThermalEnthalpy},
		{"boiler_water_conductivity", p.BoilerWaterConductivity},
		{"water_cooling_rate", p.WaterCoolingRate},
		{"sodium_cooling_rate", p.SodiumCoolingRate},
	}
	for _, f := range positives {
		if f.v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", f.name, f.v))
		}
	}
	if p.CoolantCoolingEfficiency <= 0 || p.CoolantCoolingEfficiency > 1 {
		errs = append(errs, fmt.Errorf("coolant_cooling_efficiency must be in (0, 1], got %g", p.CoolantCoolingEfficiency))
	}
	if p.GridBound < 1 || p.GridBound > MaxGridSize {
		errs = append(errs, fmt.Errorf("grid_bound must be between 1 and %d, got %d", MaxGridSize, p.GridBound))
	}
	return errors.Join(errs...)
}

// ─── Boiler formulas ───────────────────────────────────────

// BoilerHeatCapacity is the heat capacity of the boiler shell: every block of
// the exterior volume that is not part of the interior.
func (p Physics) BoilerHeatCapacity(d Dimensions) float64 {
	c2 := 2 * p.CasingThickness
	shell := d.Volume() - (d.Length-c2)*(d.Width-c2)*(d.Height-c2)
	return float64(shell) * p.CasingHeatCapacity
}

// MaxSpliterLayer is the exclusive upper bound of the separator height.
func (p Physics) MaxSpliterLayer(d Dimensions) int {
	return d.Height - p.CasingThickness
}

// MaxHeatingElement is the exclusive upper bound of heating elements that fit
// in the interior below the separator. It is 0 when the casing leaves no
// interior.
func (p Physics) MaxHeatingElement(d Dimensions, spliter int) int {
	c := p.CasingThickness
	length, width, height := d.Length-2*c, d.Width-2*c, spliter-c
	if length <= 0 || width <= 0 || height <= 0 {
		return 0
	}
	return length * width * height
}

// WaterTank is the water capacity below the separator, minus heater blocks.
func (p Physics) WaterTank(d Dimensions, spliter, heater int) int64 {
	return (int64(spliter-p.CasingThickness)*int64(d.Area()) - int64(heater)) * p.WaterTankVolume
}

// HeatRate is the heat produced by the heating elements.
func (p Physics) HeatRate(heater int) int64 {
	return int64(heater) * p.HeaterHeatRate
}

// SteamTank is the steam capacity above the separator.
func (p Physics) SteamTank(d Dimensions, spliter int) int64 {
	return int64(d.Height-spliter) * int64(d.Area()) * p.SteamTankVolume
}

// Production is the steam throughput, bounded by all three tanks.
func (p Physics) Production(waterTank, heatRate, steamTank int64) int64 {
	return min(waterTank, heatRate, steamTank)
}

// CooledCoolantTank is the capacity for coolant leaving a sodium-heated boiler.
func (p Physics) CooledCoolantTank(steamTank int64) int64 {
	return int64(float64(steamTank) * p.CooledCoolantRatio)
}

// HotCoolantTank is the capacity for coolant entering a sodium-heated boiler.
func (p Physics) HotCoolantTank(waterTank int64) int64 {
	return waterTank * p.HotCoolantRatio
}

// MaxWaterTemperature is the water temperature reached at full production.
func (p Physics) MaxWaterTemperature(production int64, heatCapacity float64) float64 {
	return float64(production) / heatCapacity / p.SteamEnergyEfficiency *
		p.WaterThermalEnthalpy / p.BoilerWaterConductivity
}

// MaxHeatConsumption is the heat demand at full production.
func (p Physics) MaxHeatConsumption(production int64) float64 {
	return float64(production) * p.WaterThermalEnthalpy / p.SteamEnergyEfficiency
}

// CoolantConsumption is the hot sodium flow a sodium-heated boiler can absorb.
// It is bounded by the heat the hot tank can deliver at the current
// temperature deficit, by the cooled coolant tank, and by the heat demand.
func (p Physics) CoolantConsumption(waterTank, steamTank, production int64, heatCapacity float64) int64 {
	deficit := 1.0 - p.MaxWaterTemperature(production, heatCapacity)/p.HeatedCoolantTemp
	flow := int64(float64(p.HotCoolantTank(waterTank)) * p.CoolantCoolingEfficiency * deficit)
	demand := int64(p.MaxHeatConsumption(production) / p.SodiumThermalEnthalpy)
	return min(flow, p.CooledCoolantTank(steamTank), demand)
}

// ─── Fission formulas ──────────────────────────────────────

// FissionInterior returns the interior footprint and height of a reactor:
// casing on every side, plus two extra layers of height (controller and port row).
func (p Physics) FissionInterior(d Dimensions) (length, width, height int) {
	c := p.CasingThickness
	return d.Length - 2*c, d.Width - 2*c, d.Height - 3*c
}

// ChamberVolume is the exterior volume minus the interior working volume.
func (p Physics) ChamberVolume(length, width, height int) float64 {
	c := p.CasingThickness
	exterior := (length + 2*c) * (width + 2*c) * (height + 3*c)
	working := length * width * (height + c)
	return float64(exterior - working)
}

// CoolingRate returns the per-block cooling rate of a coolant.
func (p Physics) CoolingRate(mode CoolingMode) float64 {
	if mode == SodiumCooling {
		return p.SodiumCoolingRate
	}
	return p.WaterCoolingRate
}

// FissionMaxSpeed is the sustainable burn rate: the chamber cooling capacity,
// never more than the number of assemblies present.
func (p Physics) FissionMaxSpeed(length, width, height int, efficiency float64, assemblies int, mode CoolingMode) float64 {
	speed := p.ChamberVolume(length, width, height) * efficiency * p.CoolingRate(mode)
	if speed < float64(assemblies) {
		return speed
	}
	return float64(assemblies)
}

// FissionFeasible reports whether the chamber can cool all assemblies.
func FissionFeasible(assemblies int, maxSpeed float64) bool {
	return float64(assemblies)-maxSpeed < 1.0
}
