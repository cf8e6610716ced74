package http

import (
	"github.com/gin-gonic/gin"

	"day-to-day/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require an authenticated session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.Auth(), h.Create)
		tasks.GET("", mw.Auth(), h.List)
		tasks.GET("/stats", mw.Auth(), h.Stats)
		tasks.GET("/calendar", mw.Auth(), h.Calendar)
		tasks.POST("/import", mw.Auth(), h.Import)
		tasks.PUT("/:id", mw.Auth(), h.Update)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
