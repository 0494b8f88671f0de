package model

// BoilerLayout is one evaluated boiler configuration: the separator height,
// the number of heating elements below it, and every metric derived from them.
//
// The zero value is the infeasible sentinel returned when no configuration
// produces a positive value; check Feasible before reading the metrics.
type BoilerLayout struct {
	Dims           Dimensions  `json:"dims"`
	Mode           HeatingMode `json:"mode"`
	HeatCapacity   float64     `json:"heat_capacity"`
	SpliterLayer   int         `json:"spliter_layer"`
	HeatingElement int         `json:"heating_element"`

	WaterTank          int64 `json:"water_tank"`
	HeatRate           int64 `json:"heat_rate"`
	SteamTank          int64 `json:"steam_tank"`
	Production         int64 `json:"production"`
	CooledCoolantTank  int64 `json:"cooled_coolant_tank"`
	HotCoolantTank     int64 `json:"hot_coolant_tank"`
	CoolantConsumption int64 `json:"coolant_consumption"`
}

// EvaluateBoiler computes every metric for one (spliter, heater) candidate.
// heatCapacity is the shell heat capacity of d, fixed per search.
func EvaluateBoiler(p Physics, d Dimensions, mode HeatingMode, heatCapacity float64, spliter, heater int) BoilerLayout {
	b := BoilerLayout{
		Dims:           d,
		Mode:           mode,
		HeatCapacity:   heatCapacity,
		SpliterLayer:   spliter,
		HeatingElement: heater,
		WaterTank:      p.WaterTank(d, spliter, heater),
		HeatRate:       p.HeatRate(heater),
		SteamTank:      p.SteamTank(d, spliter),
	}
	b.Production = p.Production(b.WaterTank, b.HeatRate, b.SteamTank)
	b.CooledCoolantTank = p.CooledCoolantTank(b.SteamTank)
	b.HotCoolantTank = p.HotCoolantTank(b.WaterTank)
	b.CoolantConsumption = p.CoolantConsumption(b.WaterTank, b.SteamTank, b.Production, heatCapacity)
	return b
}

// Value is the quantity the layout search maximizes for the heating mode.
func (b BoilerLayout) Value() int64 {
	if b.Mode == SodiumHeating {
		return b.CoolantConsumption
	}
	return b.Production
}

// Feasible reports whether the layout is a real answer rather than the
// zero-value sentinel.
func (b BoilerLayout) Feasible() bool {
	return b.SpliterLayer > 0 && b.Value() > 0
}
