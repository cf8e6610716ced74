package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"day-to-day/internal/model"
	"day-to-day/pkg/response"
)

// scopeContextKey is the gin context key the verified Scope is stored under.
const scopeContextKey = "auth.scope"

// Auth verifies the Bearer session token and stores the caller Scope in the
// request context. Requests without a valid token are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc, err := m.scopeManager.Verify(token)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "auth: token rejected: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeContextKey, sc)
		c.Next()
	}
}

// GetScope returns the Scope stored by Auth. The zero Scope means the route
// was not protected.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeContextKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
