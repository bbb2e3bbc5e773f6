package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newsdesk/newsdesk-api/pkg/logger"
)

// RequestLogger writes one structured access log line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		status := c.Writer.Status()
		lvl := logger.LevelInfo
		switch {
		case status >= 500:
			lvl = logger.LevelError
		case status >= 400:
			lvl = logger.LevelWarn
		}
		if !logger.Enabled(lvl) {
			return
		}

		z := logger.Z()
		ev := z.Info()
		switch lvl {
		case logger.LevelError:
			ev = z.Error()
		case logger.LevelWarn:
			ev = z.Warn()
		}
		ev = ev.Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Int("bytes", c.Writer.Size())
		if len(c.Errors) > 0 {
			ev = ev.Str("errors", c.Errors.String())
		}
		ev.Msg("request")
	}
}
