package checkout_api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/innoscripta-checkout-register/internal/checkout_api/handler"
	"github.com/innoscripta-checkout-register/internal/checkout_api/middleware"
	"github.com/innoscripta-checkout-register/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker reports whether a backing store is reachable
type HealthChecker func(ctx context.Context) error

type routes struct {
	sales    *handler.SaleHandler
	ledger   *handler.LedgerHandler
	register *handler.RegisterHandler
	metrics  *metrics.ServerMetrics
	gatherer prometheus.Gatherer
	health   HealthChecker
}

// setupRouter configures API routes and middleware for the application
func setupRouter(logger *slog.Logger, r *gin.Engine, rt routes) {
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CorrelationID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics(rt.metrics))

	v1 := r.Group("/api/v1")
	{
		sales := v1.Group("/sales")
		{
			sales.POST("", rt.sales.Start)
			sales.POST("/current/items", rt.sales.AddItem)
			sales.GET("/current/total", rt.sales.Total)
			sales.POST("/current/payment", rt.sales.Pay)
		}

		ledger := v1.Group("/ledger")
		{
			ledger.GET("", rt.ledger.List)
			ledger.GET("/:sale_id", rt.ledger.GetBySaleID)
		}

		v1.GET("/register", rt.register.Get)
	}

	r.GET("/metrics", gin.WrapH(metrics.Handler(rt.gatherer)))

	r.GET("/health", func(c *gin.Context) {
		status, code := "ok", http.StatusOK
		if rt.health != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
			defer cancel()
			if err := rt.health(ctx); err != nil {
				logger.Warn("Health check failed", "error", err)
				status, code = "degraded", http.StatusServiceUnavailable
			}
		}
		c.JSON(code, gin.H{"status": status, "timestamp": time.Now().UTC()})
	})
}
