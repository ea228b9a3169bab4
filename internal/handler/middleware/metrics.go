package middleware

import (
	"strconv"
	"time"

	"library-admin/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// HTTPMetrics records request latency labelled by route template, so path
// parameters do not explode the label set.
func HTTPMetrics(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Observe(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}
