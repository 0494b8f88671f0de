package engine

import "github.com/piwi3910/ReactorCalc/internal/model"

// OptimizeBoiler finds the separator height and heating element count that
// maximize the boiler's value for the heating mode: steam production for
// direct heating, coolant consumption for sodium heating.
//
// Every candidate is visited, separator layers ascending and heating
// elements ascending within each layer. Only a strictly greater value
// replaces the best, so the first candidate reaching the maximum wins.
// When no candidate has a positive value the zero BoilerLayout is returned.
func (o *Optimizer) OptimizeBoiler(d model.Dimensions, mode model.HeatingMode) (model.BoilerLayout, error) {
	if err := d.Validate(); err != nil {
		return model.BoilerLayout{}, err
	}
	return o.searchBoiler(d, mode), nil
}

func (o *Optimizer) searchBoiler(d model.Dimensions, mode model.HeatingMode) model.BoilerLayout {
	p := o.Physics
	heatCapacity := p.BoilerHeatCapacity(d)

	var best model.BoilerLayout
	var bestValue int64
	for spliter := p.CasingThickness; spliter < p.MaxSpliterLayer(d); spliter++ {
		maxHeater := p.MaxHeatingElement(d, spliter)
		for heater := 0; heater < maxHeater; heater++ {
			candidate := model.EvaluateBoiler(p, d, mode, heatCapacity, spliter, heater)
			if v := candidate.Value(); v > bestValue {
				best = candidate
				bestValue = v
			}
		}
	}
	return best
}
