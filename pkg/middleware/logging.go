package middleware

import (
	"net/http"
	"time"

	"github.com/apsdehal/go-logger"
	"github.com/gin-gonic/gin"
)

// Logging logs basic request/response details with latency.
func Logging(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		clientIP := c.ClientIP()
		method := c.Request.Method
		requestID := c.GetString(RequestIDKey)

		const format = "%s %s %d %s %s %s"
		switch {
		case status >= http.StatusInternalServerError:
			log.Errorf(format, method, path, status, latency, clientIP, requestID)
		case status >= http.StatusBadRequest:
			log.Warningf(format, method, path, status, latency, clientIP, requestID)
		default:
			log.Infof(format, method, path, status, latency, clientIP, requestID)
		}
	}
}
