package middleware

import (
	"strconv"
	"time"

	"slotify/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request latency per method, route template and
// status code. The route template (c.FullPath) keeps the label cardinality
// bounded; unmatched paths are reported as "unmatched".
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		metrics.Default.ObserveRequest(c.Request.Method, route, status, time.Since(start).Seconds())
	}
}
