package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/innoscripta-checkout-register/internal/platform/metrics"
)

// Metrics counts requests and observes latency per route template
func Metrics(m *metrics.ServerMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.LatencyMS.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))
	}
}
