package middleware

import (
	"time"

	"scrumboard/internal/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Observe logs every request and records it in the request metrics.
func Observe(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.RegisterRequest(start, c.Request.Method, route, status)

		fields := []interface{}{
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"latency", time.Since(start),
		}
		if len(c.Errors) > 0 {
			log.Errorw(c.Errors.String(), fields...)
			return
		}
		log.Debugw("request", fields...)
	}
}
