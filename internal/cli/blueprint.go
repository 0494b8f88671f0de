package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/piwi3910/ReactorCalc/internal/engine"
	"github.com/piwi3910/ReactorCalc/internal/importer"
)

func newBlueprintCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "blueprint FILE",
		Short: "Evaluate a fuel assembly read from a DXF blueprint",
		Long: `blueprint reads a DXF file written by "fission --dxf", possibly edited in a
CAD program, and reports the assembly count and maximum speed of the stacks
it contains.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			physics := e.physics()
			bp, err := importer.ImportDXF(args[0], physics)
			if err != nil {
				return err
			}
			f, err := engine.New(physics).EvaluateFission(bp.Dims, bp.Mode, bp.Grid)
			if err != nil {
				return err
			}
			e.logger.Debug("blueprint evaluated",
				zap.String("path", args[0]),
				zap.Stringer("dims", bp.Dims),
				zap.Int("assemblies", f.AssemblyCount))
			if e.json {
				return writeJSON(e.out, f)
			}
			return writeFission(e.out, f)
		},
	}
}
