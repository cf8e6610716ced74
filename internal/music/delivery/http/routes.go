package http

import (
	"github.com/gin-gonic/gin"

	"day-to-day/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	soundscapes := rg.Group("/soundscapes", mw.Auth())
	{
		soundscapes.GET("", h.List)
		soundscapes.POST("/:id/toggle", h.Toggle)
	}
}
