package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/estudos/internal/core/logger"
)

func requestLevel(path string, status int, quiet []string) logger.LogLevel {
	switch {
	case status >= 500:
		return logger.LogLevelError
	case status >= 400:
		return logger.LogLevelWarn
	}
	for _, prefix := range quiet {
		if strings.HasPrefix(path, prefix) {
			return logger.LogLevelDebug
		}
	}
	return logger.LogLevelInfo
}

// LogRequest writes one access log entry per request. Redirects record their
// target so a form submission can be followed to the page it landed on, and
// errors attached with c.Error are included. Successful requests under a
// quiet prefix are logged at debug level.
func LogRequest(quiet ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		attrs := map[string]any{
			"http.method":        c.Request.Method,
			"http.path":          c.Request.URL.Path,
			"http.route":         c.FullPath(),
			"http.status_code":   status,
			"http.duration_ms":   time.Since(start).Milliseconds(),
			"http.response_size": c.Writer.Size(),
		}

		if c.Request.ContentLength > 0 {
			attrs["http.request_size"] = c.Request.ContentLength
		}
		if clientIP := c.ClientIP(); clientIP != "" {
			attrs["http.client_ip"] = clientIP
		}
		if status >= 300 && status < 400 {
			if location := c.Writer.Header().Get("Location"); location != "" {
				attrs["http.redirect"] = location
			}
		}
		if len(c.Errors) > 0 {
			attrs["error"] = c.Errors.String()
		}

		logger.Log(c.Request.Context(), logger.LogEntry{
			Level:      requestLevel(c.Request.URL.Path, status, quiet),
			Message:    "HTTP Request",
			Attributes: attrs,
		})
	}
}
