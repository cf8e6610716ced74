package http

import (
	"github.com/gin-gonic/gin"

	"day-to-day/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	timerGroup := rg.Group("/timer", mw.Auth())
	{
		timerGroup.GET("", h.Snapshot)
		timerGroup.POST("/start", h.Start)
		timerGroup.POST("/pause", h.Pause)
		timerGroup.POST("/reset", h.Reset)
		timerGroup.POST("/preset", h.SetPreset)
	}
}
