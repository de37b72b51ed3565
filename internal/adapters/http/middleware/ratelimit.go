package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/rafaelleal24/estudos/internal/core/logger"
)

// RateLimiter counts hits per key in a fixed window. When a hit is refused,
// retryAfter is the time left until the window resets.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, retryAfter time.Duration, err error)
}

// RateLimit throttles form submissions per route and browser session. Clients
// that have no session yet are counted by IP. Safe methods are not counted and
// a failing limiter lets the request through.
//
// It runs after sessions.Sessions and before AntiForgery, so a refused
// submission still holds an unused token.
func RateLimit(limiter RateLimiter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isSafeMethod(c.Request.Method) {
			c.Next()
			return
		}

		key := rateLimitKey(c)
		allowed, retryAfter, err := limiter.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			logger.Warn(c.Request.Context(), "ratelimit: limiter unavailable", map[string]any{
				"key":   key,
				"error": err.Error(),
			})
			c.Next()
			return
		}
		if !allowed {
			if retryAfter <= 0 {
				retryAfter = window
			}
			logger.Warn(c.Request.Context(), "ratelimit: submission refused", map[string]any{
				"key":         key,
				"retry_after": retryAfter.String(),
			})
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			c.String(http.StatusTooManyRequests, "Muitas requisições, tente novamente em instantes")
			c.Abort()
			return
		}
		c.Next()
	}
}

func rateLimitKey(c *gin.Context) string {
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	if sessionID := currentSessionID(c); sessionID != "" {
		return fmt.Sprintf("%s:session:%s", route, sessionID)
	}
	return fmt.Sprintf("%s:ip:%s", route, c.ClientIP())
}

// currentSessionID returns the session id AntiForgery stored earlier, or ""
// when the request has no session or no sessions middleware ran.
func currentSessionID(c *gin.Context) string {
	if _, ok := c.Get(sessions.DefaultKey); !ok {
		return ""
	}
	id, _ := sessions.Default(c).Get(sessionIDKey).(string)
	return id
}
