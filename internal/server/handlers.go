package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/piwi3910/ReactorCalc/internal/engine"
	"github.com/piwi3910/ReactorCalc/internal/export"
	"github.com/piwi3910/ReactorCalc/internal/model"
)

// LayoutRequest is the body accepted by the optimization endpoints.
type LayoutRequest struct {
	Length int    `json:"length" binding:"required"`
	Width  int    `json:"width" binding:"required"`
	Height int    `json:"height" binding:"required"`
	Mode   string `json:"mode"`
}

// Dims returns the requested exterior dimensions.
func (r LayoutRequest) Dims() model.Dimensions {
	return model.Dimensions{Length: r.Length, Width: r.Width, Height: r.Height}
}

// BoilerResponse is returned by POST /api/v1/boiler.
type BoilerResponse struct {
	Layout   model.BoilerLayout `json:"layout"`
	Feasible bool               `json:"feasible"`
	Plan     string             `json:"plan"`
}

// FissionResponse is returned by POST /api/v1/fission.
type FissionResponse struct {
	Layout model.FissionLayout `json:"layout"`
	Plan   string              `json:"plan"`
}

// CompareRequest selects a job to run under every physics profile.
type CompareRequest struct {
	LayoutRequest
	Structure string `json:"structure" binding:"required"`
}

// CompareEntry is one row of a profile comparison.
type CompareEntry struct {
	Scenario string  `json:"scenario"`
	Value    float64 `json:"value"`
	Feasible bool    `json:"feasible"`
	Error    string  `json:"error,omitempty"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "reactorcalc",
		"version": Version,
	})
}

func (s *Server) boiler(c *gin.Context) {
	var req LayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	mode, err := model.ParseHeatingMode(req.Mode)
	if err != nil {
		respondInputError(c, err)
		return
	}
	layout, err := s.optimizer.OptimizeBoiler(req.Dims(), mode)
	if err != nil {
		respondInputError(c, err)
		return
	}
	s.metrics.observeOptimization(model.StructureBoiler.String(), mode.String(), layout.Feasible())

	var plan strings.Builder
	if err := export.WriteBoilerPlan(&plan, layout); err != nil {
		_ = c.Error(err)
	}
	c.JSON(http.StatusOK, BoilerResponse{Layout: layout, Feasible: layout.Feasible(), Plan: plan.String()})
}

func (s *Server) fission(c *gin.Context) {
	var req LayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	mode, err := model.ParseCoolingMode(req.Mode)
	if err != nil {
		respondInputError(c, err)
		return
	}
	layout, err := s.optimizer.OptimizeFission(req.Dims(), mode)
	if err != nil {
		respondInputError(c, err)
		return
	}
	s.metrics.observeOptimization(model.StructureFission.String(), mode.String(), model.FissionFeasible(layout.AssemblyCount, layout.MaxSpeed))
	s.metrics.removals.Observe(float64(layout.Removals))

	var plan strings.Builder
	if err := export.WriteFissionPlan(&plan, layout); err != nil {
		_ = c.Error(err)
	}
	c.JSON(http.StatusOK, FissionResponse{Layout: layout, Plan: plan.String()})
}

func (s *Server) compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	job := model.Job{Dims: req.Dims()}
	structure, err := model.ParseStructure(req.Structure)
	if err != nil {
		respondInputError(c, err)
		return
	}
	job.Structure = structure
	if structure == model.StructureFission {
		job.Cooling, err = model.ParseCoolingMode(req.Mode)
	} else {
		job.Heating, err = model.ParseHeatingMode(req.Mode)
	}
	if err != nil {
		respondInputError(c, err)
		return
	}
	if err := job.Validate(s.optimizer.Physics); err != nil {
		respondInputError(c, err)
		return
	}

	results := engine.CompareScenarios(engine.BuildProfileScenarios(s.optimizer.Physics), job)
	entries := make([]CompareEntry, 0, len(results))
	for _, r := range results {
		e := CompareEntry{Scenario: r.Scenario.Name, Value: r.Value, Feasible: r.Result.Feasible()}
		if r.Err != nil {
			e.Error = r.Err.Error()
		}
		entries = append(entries, e)
	}
	c.JSON(http.StatusOK, gin.H{"job": job, "results": entries})
}
