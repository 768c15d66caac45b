package checkout_api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innoscripta-checkout-register/internal/checkout_api/handler"
	"github.com/innoscripta-checkout-register/internal/checkout_api/service"
	"github.com/innoscripta-checkout-register/internal/config"
	"github.com/innoscripta-checkout-register/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// Services bundles what the HTTP layer calls into
type Services struct {
	Sales    service.SaleService
	Ledger   service.LedgerService
	Register service.RegisterService
}

// Server handles HTTP requests and manages the application's lifecycle
type Server struct {
	logger     *slog.Logger
	httpServer *http.Server
	httpRouter *gin.Engine
}

// NewServer creates and configures a new HTTP server. Request metrics are registered with reg
// and everything reg gathers is served on /metrics.
func NewServer(log *slog.Logger, cfg *config.Config, services Services, reg *prometheus.Registry, health HealthChecker) *Server {
	if cfg.Application.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	httpRouter := gin.New()
	setupRouter(log, httpRouter, routes{
		sales:    handler.NewSaleHandler(log, services.Sales),
		ledger:   handler.NewLedgerHandler(log, services.Ledger),
		register: handler.NewRegisterHandler(log, services.Register),
		metrics:  metrics.NewServerMetrics(reg, "api"),
		gatherer: reg,
		health:   health,
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      httpRouter,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &Server{
		logger:     log,
		httpServer: httpServer,
		httpRouter: httpRouter,
	}
}

// Handler returns the configured router
func (s *Server) Handler() http.Handler {
	return s.httpRouter
}

// Start begins listening for HTTP requests
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

// Stop drains in-flight requests, bounded by the server's write timeout
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, s.httpServer.WriteTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop HTTP server: %w", err)
	}
	return nil
}
