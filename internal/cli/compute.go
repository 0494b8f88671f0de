package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/piwi3910/ReactorCalc/internal/engine"
	"github.com/piwi3910/ReactorCalc/internal/export"
	"github.com/piwi3910/ReactorCalc/internal/model"
)

// parseDims reads LENGTH WIDTH HEIGHT positional arguments.
func parseDims(args []string) (model.Dimensions, error) {
	var v [3]int
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return model.Dimensions{}, fmt.Errorf("%w: %q is not a whole number", model.ErrInvalidDimensions, a)
		}
		v[i] = n
	}
	return model.Dimensions{Length: v[0], Width: v[1], Height: v[2]}, nil
}

func newBoilerCommand(e *env) *cobra.Command {
	var mode string
	var plan bool

	cmd := &cobra.Command{
		Use:   "boiler LENGTH WIDTH HEIGHT",
		Short: "Find the best boiler layout for an exterior size",
		Example: `  reactorcalc boiler 5 4 6
  reactorcalc boiler 5 4 6 --mode sodium --json`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDims(args)
			if err != nil {
				return err
			}
			heating, err := model.ParseHeatingMode(mode)
			if err != nil {
				return err
			}

			b, err := engine.New(e.physics()).OptimizeBoiler(d, heating)
			if err != nil {
				return err
			}
			e.logger.Debug("boiler optimized",
				zap.Stringer("dims", d),
				zap.Stringer("mode", heating),
				zap.Bool("feasible", b.Feasible()))

			if e.json {
				return writeJSON(e.out, struct {
					Dims     model.Dimensions   `json:"dims"`
					Mode     model.HeatingMode  `json:"mode"`
					Feasible bool               `json:"feasible"`
					Layout   model.BoilerLayout `json:"layout"`
				}{d, heating, b.Feasible(), b})
			}
			if plan {
				b.Dims, b.Mode = d, heating
				return export.WriteBoilerPlan(e.out, b)
			}
			return writeBoiler(e.out, d, heating, b)
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", model.DirectHeating.String(), "heating mode: direct or sodium")
	cmd.Flags().BoolVar(&plan, "plan", false, "print the layer-by-layer build plan")
	return cmd
}

func newFissionCommand(e *env) *cobra.Command {
	var mode string
	var plan bool
	var dxfPath string

	cmd := &cobra.Command{
		Use:   "fission LENGTH WIDTH HEIGHT",
		Short: "Shape the fuel assembly of a fission reactor",
		Example: `  reactorcalc fission 5 5 8
  reactorcalc fission 7 7 9 --mode sodium --dxf reactor.dxf`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDims(args)
			if err != nil {
				return err
			}
			cooling, err := model.ParseCoolingMode(mode)
			if err != nil {
				return err
			}

			f, err := engine.New(e.physics()).OptimizeFission(d, cooling)
			if err != nil {
				return err
			}
			e.logger.Debug("fission shaped",
				zap.Stringer("dims", d),
				zap.Stringer("mode", cooling),
				zap.Int("assemblies", f.AssemblyCount),
				zap.Int("removals", f.Removals))

			if dxfPath != "" {
				if err := export.ExportDXF(dxfPath, f); err != nil {
					return err
				}
				e.logger.Info("blueprint written", zap.String("path", dxfPath))
			}

			if e.json {
				return writeJSON(e.out, f)
			}
			if plan {
				return export.WriteFissionPlan(e.out, f)
			}
			return writeFission(e.out, f)
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", model.WaterCooling.String(), "cooling mode: water or sodium")
	cmd.Flags().BoolVar(&plan, "plan", false, "print the layer-by-layer build plan")
	cmd.Flags().StringVar(&dxfPath, "dxf", "", "also write a DXF blueprint to this file")
	return cmd
}
