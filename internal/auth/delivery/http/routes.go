package http

import (
	"github.com/gin-gonic/gin"

	"day-to-day/internal/middleware"
)

// RegisterRoutes maps the auth endpoints. Login endpoints are public;
// session endpoints require a valid token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/google", h.LoginGoogle)
		authGroup.GET("/me", mw.Auth(), h.Me)
		authGroup.DELETE("/session", mw.Auth(), h.Logout)
	}
}
