package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger writes one line per request. 5xx are errors, 4xx warnings.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		status := c.Writer.Status()
		routePath := c.FullPath()
		if routePath == "" {
			routePath = c.Request.URL.Path
		}

		var event *zerolog.Event
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		default:
			event = log.Info()
		}
		event.
			Str("request_id", RequestIDFromCtx(c)).
			Str("method", c.Request.Method).
			Str("path", routePath).
			Int("status", status).
			Int64("duration_ms", duration.Milliseconds()).
			Int("bytes_out", c.Writer.Size()).
			Str("ip", c.ClientIP())
		if errs := c.Errors.ByType(gin.ErrorTypeAny); len(errs) > 0 {
			event.Str("error", errs.String())
		}
		event.Msg("http_request")
	}
}
