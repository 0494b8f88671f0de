package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/piwi3910/ReactorCalc/internal/engine"
	"github.com/piwi3910/ReactorCalc/internal/importer"
)

// errImportFailed is returned when no row of an import could be used.
var errImportFailed = errors.New("no jobs imported")

func newImportCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Run every job listed in a CSV or Excel file",
		Long: `import reads a job list (structure, length, width, height, mode and an
optional label per row) from a CSV or .xlsx file and computes each job.
Rows with errors are reported and skipped.`,
		Example: `  reactorcalc import jobs.csv
  reactorcalc import jobs.xlsx --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			physics := e.physics()
			res := importer.ImportFile(args[0], physics)
			for _, w := range res.Warnings {
				e.logger.Warn("import", zap.String("warning", w))
			}
			for _, msg := range res.Errors {
				e.logger.Error("import", zap.String("error", msg))
			}
			if len(res.Jobs) == 0 {
				return fmt.Errorf("%w from %s (%d errors)", errImportFailed, args[0], len(res.Errors))
			}

			results, errs := engine.New(physics).RunAll(res.Jobs)
			if e.json {
				type entry struct {
					engine.Result
					Feasible bool   `json:"feasible"`
					Error    string `json:"error,omitempty"`
				}
				out := make([]entry, len(results))
				for i, r := range results {
					out[i] = entry{Result: r, Feasible: r.Feasible()}
					if errs[i] != nil {
						out[i].Error = errs[i].Error()
					}
				}
				return writeJSON(e.out, out)
			}
			return writeResults(e.out, results, errs)
		},
	}
}
