package engine

import (
	"fmt"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

// ComparisonScenario defines a named set of physics constants to compare.
type ComparisonScenario struct {
	Name    string
	Physics model.Physics
}

// ComparisonResult holds one job's outcome under a single scenario.
type ComparisonResult struct {
	Scenario ComparisonScenario
	Result   Result
	Value    float64 // Production, coolant consumption or max speed
	Err      error
}

// CompareScenarios runs the same job under each scenario and returns the
// results in scenario order. This shows how a balance change moves the
// optimal layout.
func CompareScenarios(scenarios []ComparisonScenario, job model.Job) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		opt := New(scenario.Physics)
		result, err := opt.Run(job)

		results = append(results, ComparisonResult{
			Scenario: scenario,
			Result:   result,
			Value:    resultValue(result),
			Err:      err,
		})
	}

	return results
}

func resultValue(r Result) float64 {
	switch {
	case r.Boiler != nil:
		return float64(r.Boiler.Value())
	case r.Fission != nil:
		return r.Fission.MaxSpeed
	default:
		return 0
	}
}

// BuildProfileScenarios turns every available physics profile into a
// scenario, with the base constants first when they match no profile.
func BuildProfileScenarios(base model.Physics) []ComparisonScenario {
	var scenarios []ComparisonScenario
	matched := false
	for _, p := range model.AllPhysicsProfiles() {
		if p.Physics == base {
			matched = true
		}
		scenarios = append(scenarios, ComparisonScenario{Name: p.Name, Physics: p.Physics})
	}
	if !matched {
		scenarios = append([]ComparisonScenario{{Name: "Current Physics", Physics: base}}, scenarios...)
	}

	// What-if: thinner casing shells, which hold less heat
	if base.CasingHeatCapacity > 1 {
		light := base
		light.CasingHeatCapacity = base.CasingHeatCapacity / 2
		scenarios = append(scenarios, ComparisonScenario{
			Name:    fmt.Sprintf("Casing heat capacity %.0f (half)", light.CasingHeatCapacity),
			Physics: light,
		})
	}

	return scenarios
}
