// Package cli implements the reactorcalc command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/piwi3910/ReactorCalc/internal/config"
	"github.com/piwi3910/ReactorCalc/internal/logging"
	"github.com/piwi3910/ReactorCalc/internal/model"
	"github.com/piwi3910/ReactorCalc/internal/project"
)

// Version is printed by --version.
var Version = "0.1.0"

// env is the state shared by every subcommand once the persistent flags
// have been parsed.
type env struct {
	v        *viper.Viper
	cfg      model.AppConfig
	logger   *zap.Logger
	out      io.Writer
	json     bool
	cfgPath  string
	profiles string // Custom physics profile file
}

// physics returns the constants selected by the config.
func (e *env) physics() model.Physics {
	return e.cfg.ResolvePhysics()
}

func (e *env) profile() model.PhysicsProfile {
	p := model.GetPhysicsProfile(e.cfg.Profile)
	p.Physics = e.physics()
	return p
}

// NewRootCommand builds the command tree writing results to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	e := &env{out: out, profiles: project.DefaultProfilesPath()}

	root := &cobra.Command{
		Use:   "reactorcalc",
		Short: "Boiler and fission reactor layout optimizer",
		Long: `reactorcalc finds the boiler layout (separator layer and heating element
count) with the highest output for a given size, and shapes the fuel assembly
of a fission reactor until its chamber can cool every assembly.

Settings come from defaults, ~/.reactorcalc/config.yaml (or --config),
REACTORCALC_* environment variables and flags, in increasing precedence.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&e.cfgPath, "config", "", "config file (default ~/.reactorcalc/config.yaml if present)")
	pf.StringVar(&e.profiles, "profiles", e.profiles, "custom physics profiles file")
	pf.String("profile", "", "physics profile name")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: console or json")
	pf.BoolVar(&e.json, "json", false, "print results as JSON")

	root.AddCommand(
		newBoilerCommand(e),
		newFissionCommand(e),
		newBlueprintCommand(e),
		newSweepCommand(e),
		newImportCommand(e),
		newServeCommand(e),
		newConfigCommand(e),
		newProfilesCommand(e),
	)
	return root
}

// init loads custom profiles, config and logger for the running command.
func (e *env) init(cmd *cobra.Command) error {
	profiles, err := project.LoadPhysicsProfiles(e.profiles)
	if err != nil {
		return err
	}
	model.CustomPhysicsProfiles = profiles

	v, err := config.New()
	if err != nil {
		return err
	}
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(v, e.cfgPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	e.v = v
	e.cfg = cfg
	e.logger = logger
	logger.Debug("configuration loaded",
		zap.String("file", v.ConfigFileUsed()),
		zap.String("profile", cfg.Profile),
		zap.Bool("custom_physics", cfg.UseCustomPhysics))
	return nil
}

// Execute runs the command tree against os.Args and exits non-zero on error.
// An interrupt cancels the running command's context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCommand(os.Stdout)
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
