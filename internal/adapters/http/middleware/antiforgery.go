package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rafaelleal24/estudos/internal/core/logger"
)

const (
	CSRFFormField = "_csrf"
	CSRFHeader    = "X-CSRF-Token"

	sessionIDKey  = "sid"
	csrfIssuerKey = "csrf.issuer"
	csrfIssuedKey = "csrf.token"
)

// TokenStore keeps one-time anti-forgery tokens bound to a session id.
type TokenStore interface {
	Issue(ctx context.Context, sessionID string, ttl time.Duration) (string, error)
	Consume(ctx context.Context, sessionID, token string) (bool, error)
}

// AntiForgery must run after sessions.Sessions. Unsafe requests carrying no
// valid token are answered with 400 before reaching the handler.
func AntiForgery(store TokenStore, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := ensureSessionID(c)
		if err != nil {
			logger.Error(c.Request.Context(), "antiforgery: failed to save session", err, nil)
			c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			c.Abort()
			return
		}

		c.Set(csrfIssuerKey, func(ctx context.Context) (string, error) {
			return store.Issue(ctx, sessionID, ttl)
		})

		if isSafeMethod(c.Request.Method) {
			c.Next()
			return
		}

		token := c.PostForm(CSRFFormField)
		if token == "" {
			token = c.GetHeader(CSRFHeader)
		}

		valid, err := store.Consume(c.Request.Context(), sessionID, token)
		if err != nil {
			logger.Error(c.Request.Context(), "antiforgery: failed to check token", err, map[string]any{
				"http.path": c.Request.URL.Path,
			})
			c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			c.Abort()
			return
		}
		if !valid {
			logger.Warn(c.Request.Context(), "antiforgery: rejected request", map[string]any{
				"http.method":  c.Request.Method,
				"http.path":    c.Request.URL.Path,
				"token_absent": token == "",
			})
			c.String(http.StatusBadRequest, "Token antifalsificação ausente ou inválido")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CSRFToken returns the token to embed in the form being rendered. The same
// token is returned for repeated calls within one request. Without the
// AntiForgery middleware it returns an empty token.
func CSRFToken(c *gin.Context) (string, error) {
	if token := c.GetString(csrfIssuedKey); token != "" {
		return token, nil
	}

	value, ok := c.Get(csrfIssuerKey)
	if !ok {
		return "", nil
	}
	issue := value.(func(context.Context) (string, error))

	token, err := issue(c.Request.Context())
	if err != nil {
		return "", err
	}
	c.Set(csrfIssuedKey, token)
	return token, nil
}

func ensureSessionID(c *gin.Context) (string, error) {
	session := sessions.Default(c)
	if id, ok := session.Get(sessionIDKey).(string); ok && id != "" {
		return id, nil
	}

	id := uuid.NewString()
	session.Set(sessionIDKey, id)
	if err := session.Save(); err != nil {
		return "", err
	}
	return id, nil
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	default:
		return false
	}
}
