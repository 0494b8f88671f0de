package model

import "fmt"

// Job is one requested computation, typically a row of an imported job list.
type Job struct {
	Label     string      `json:"label,omitempty"`
	Structure Structure   `json:"structure"`
	Dims      Dimensions  `json:"dims"`
	Heating   HeatingMode `json:"heating,omitempty"`
	Cooling   CoolingMode `json:"cooling,omitempty"`
}

// ModeName returns the mode relevant to the job's structure.
func (j Job) ModeName() string {
	if j.Structure == StructureFission {
		return j.Cooling.String()
	}
	return j.Heating.String()
}

func (j Job) String() string {
	return fmt.Sprintf("%s %s %s", j.Structure, j.Dims, j.ModeName())
}

// Validate checks the job's dimensions for its structure.
func (j Job) Validate(p Physics) error {
	if j.Structure == StructureFission {
		return j.Dims.ValidateFission(p)
	}
	return j.Dims.Validate()
}
