package http

import (
	"github.com/gin-gonic/gin"

	"day-to-day/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require an authenticated session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	notes := rg.Group("/notes")
	{
		notes.POST("", mw.Auth(), h.Create)
		notes.GET("", mw.Auth(), h.List)
		notes.PUT("/:id", mw.Auth(), h.Update)
		notes.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
