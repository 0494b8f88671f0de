// Package server exposes the layout optimizers over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/piwi3910/ReactorCalc/internal/engine"
	"github.com/piwi3910/ReactorCalc/internal/model"
)

// Version is reported by the health endpoint.
var Version = "0.1.0"

const shutdownTimeout = 10 * time.Second

// Server routes HTTP requests to a shared optimizer. Handlers are safe for
// concurrent use because every optimization is independent.
type Server struct {
	optimizer *engine.Optimizer
	logger    *zap.Logger
	metrics   *Metrics
	router    *gin.Engine
}

// New builds the router for the given physics constants.
func New(physics model.Physics, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		optimizer: engine.New(physics),
		logger:    logger,
		metrics:   NewMetrics(),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))
	router.Use(Instrument(s.metrics))

	router.GET("/health", s.health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{})))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/boiler", s.boiler)
		v1.POST("/fission", s.fission)
		v1.POST("/compare", s.compare)
	}

	router.NoRoute(func(c *gin.Context) {
		RespondError(c, http.StatusNotFound, ErrCodeNotFound, "route not found")
	})

	s.router = router
	return s
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
