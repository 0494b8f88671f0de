package engine

import (
	"fmt"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

// Optimizer runs the boiler and fission layout searches under one set of
// physics constants. It holds no other state and is safe for concurrent use.
type Optimizer struct {
	Physics model.Physics
}

func New(physics model.Physics) *Optimizer {
	return &Optimizer{Physics: physics}
}

// Result is the outcome of one job. Exactly one of Boiler or Fission is set.
type Result struct {
	Job     model.Job            `json:"job"`
	Boiler  *model.BoilerLayout  `json:"boiler,omitempty"`
	Fission *model.FissionLayout `json:"fission,omitempty"`
}

// Feasible reports whether the job produced a usable layout.
func (r Result) Feasible() bool {
	switch {
	case r.Boiler != nil:
		return r.Boiler.Feasible()
	case r.Fission != nil:
		return model.FissionFeasible(r.Fission.AssemblyCount, r.Fission.MaxSpeed)
	default:
		return false
	}
}

// Run dispatches a job to the optimizer for its structure.
func (o *Optimizer) Run(job model.Job) (Result, error) {
	switch job.Structure {
	case model.StructureBoiler:
		b, err := o.OptimizeBoiler(job.Dims, job.Heating)
		if err != nil {
			return Result{}, err
		}
		return Result{Job: job, Boiler: &b}, nil
	case model.StructureFission:
		f, err := o.OptimizeFission(job.Dims, job.Cooling)
		if err != nil {
			return Result{}, err
		}
		return Result{Job: job, Fission: &f}, nil
	default:
		return Result{}, fmt.Errorf("%w: structure %d", model.ErrUnknownMode, job.Structure)
	}
}

// RunAll runs every job in order. Jobs that fail validation are reported in
// the returned error slice at the same index and leave a zero Result.
func (o *Optimizer) RunAll(jobs []model.Job) ([]Result, []error) {
	results := make([]Result, len(jobs))
	errs := make([]error, len(jobs))
	for i, job := range jobs {
		results[i], errs[i] = o.Run(job)
	}
	return results, errs
}
