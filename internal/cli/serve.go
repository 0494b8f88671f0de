package cli

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/piwi3910/ReactorCalc/internal/server"
)

func newServeCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the optimizers over HTTP",
		Long: `serve exposes POST /api/v1/boiler, /api/v1/fission and /api/v1/compare,
GET /health and Prometheus metrics on GET /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if e.cfg.Log.Level != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}
			addr := e.cfg.Server.Addr
			profile := e.profile()
			e.logger.Info("starting server",
				zap.String("addr", addr),
				zap.String("profile", profile.Name),
				zap.String("version", server.Version))

			srv := server.New(profile.Physics, e.logger)
			if err := srv.Run(cmd.Context(), addr); err != nil {
				return err
			}
			e.logger.Info("server stopped")
			return nil
		},
	}
	cmd.Flags().String("addr", "", "listen address (default :8080)")
	return cmd
}
