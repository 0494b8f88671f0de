package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/piwi3910/ReactorCalc/internal/engine"
	"github.com/piwi3910/ReactorCalc/internal/export"
	"github.com/piwi3910/ReactorCalc/internal/model"
	"github.com/piwi3910/ReactorCalc/internal/project"
)

func newSweepCommand(e *env) *cobra.Command {
	var studyName string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compute every boiler and fission layout over a size range",
		Long: `sweep computes both heating modes and both cooling modes for every exterior
size in the configured range: each height, widths up to the height and
lengths up to the width. Results are written to the output directory in the
configured formats and summarized on stdout.`,
		Example: `  reactorcalc sweep --format csv,xlsx --out tables
  reactorcalc sweep --min-height 4 --max-height 8 --workers 4 --save-study small`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := e.cfg
			profile := e.profile()

			start := time.Now()
			rows, err := engine.New(profile.Physics).Sweep(cmd.Context(), engine.SweepOptions{
				Range:   cfg.Sweep.SweepRange,
				Workers: cfg.Sweep.Workers,
				Progress: func(done, total int) {
					if done%100 == 0 || done == total {
						e.logger.Debug("sweep progress", zap.Int("done", done), zap.Int("total", total))
					}
				},
			})
			if err != nil {
				return err
			}
			e.logger.Info("sweep finished",
				zap.Int("shapes", len(rows)),
				zap.Duration("elapsed", time.Since(start)))

			if err := writeSweepOutputs(e, profile, rows); err != nil {
				return err
			}

			if studyName != "" {
				study := model.NewStudy(studyName, profile, cfg.Sweep.SweepRange)
				study.Rows = rows
				path, err := project.SaveStudy(project.DefaultStudiesDir(), &study)
				if err != nil {
					return err
				}
				e.logger.Info("study saved", zap.String("path", path))
			}

			summary := engine.Summarize(rows)
			if e.json {
				return writeJSON(e.out, summary)
			}
			return writeSummary(e.out, summary)
		},
	}

	f := cmd.Flags()
	f.Int("workers", 0, "parallel workers (0 = one per CPU)")
	f.Int("min-height", model.MinHeight, "smallest exterior height")
	f.Int("max-height", model.MaxHeight, "largest exterior height")
	f.String("out", "", "output directory")
	f.StringSlice("format", nil, "output formats: "+strings.Join(model.OutputFormats, ", "))
	f.StringVar(&studyName, "save-study", "", "save the sweep as a named study")
	return cmd
}

// writeSweepOutputs writes the sweep in every configured format.
func writeSweepOutputs(e *env, profile model.PhysicsProfile, rows []model.SweepRow) error {
	cfg := e.cfg.Output
	if len(cfg.Formats) == 0 {
		return nil
	}
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	report := export.ReportFromRows("Sweep "+e.cfg.Sweep.SweepRange.String(), profile.Name, profile.Physics, rows)
	for _, format := range cfg.Formats {
		var written []string
		switch strings.ToLower(format) {
		case "csv":
			fission := filepath.Join(cfg.Dir, "fission.csv")
			boiler := filepath.Join(cfg.Dir, "boiler.csv")
			if err := export.ExportFissionCSV(fission, rows); err != nil {
				return err
			}
			if err := export.ExportBoilerCSV(boiler, rows); err != nil {
				return err
			}
			written = append(written, fission, boiler)
		case "xlsx":
			path := filepath.Join(cfg.Dir, "sweep.xlsx")
			if err := export.ExportXLSX(path, rows); err != nil {
				return err
			}
			written = append(written, path)
		case "pdf":
			path := filepath.Join(cfg.Dir, "sweep.pdf")
			cards := filepath.Join(cfg.Dir, "sweep-cards.pdf")
			if err := export.ExportPDF(path, report); err != nil {
				return err
			}
			if err := export.ExportLayoutCards(cards, report); err != nil {
				return err
			}
			written = append(written, path, cards)
		case "dxf":
			dir := filepath.Join(cfg.Dir, "dxf")
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create dxf directory: %w", err)
			}
			for _, f := range report.Fissions {
				path := filepath.Join(dir, fmt.Sprintf("%s-%s.dxf", f.Dims, f.Mode))
				if err := export.ExportDXF(path, f); err != nil {
					return err
				}
				written = append(written, path)
			}
		}
		e.logger.Info("export written", zap.String("format", format), zap.Strings("files", written))
	}
	return nil
}
