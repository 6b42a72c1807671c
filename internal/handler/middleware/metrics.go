package middleware

import (
	"strconv"
	"time"

	"barbershop-booking/internal/observability/metrics"

	"github.com/gin-gonic/gin"
)

func RequestMetrics(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveRequest(c.Request.Method, c.FullPath(), strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}
