package http

import (
	"github.com/gin-gonic/gin"

	"day-to-day/internal/middleware"
)

// RegisterRoutes maps the suggestion endpoints. Both hit the external
// provider, so they are rate limited per user on top of auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware, perMin, burst int) {
	suggestions := rg.Group("/suggestions", mw.Auth(), mw.RateLimit(perMin, burst))
	{
		suggestions.POST("/tasks", h.SuggestTasks)
		suggestions.POST("/music", h.FindMusic)
	}
}
