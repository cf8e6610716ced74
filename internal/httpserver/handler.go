package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	authHTTP "day-to-day/internal/auth/delivery/http"
	"day-to-day/internal/middleware"
	musicHTTP "day-to-day/internal/music/delivery/http"
	noteHTTP "day-to-day/internal/note/delivery/http"
	suggestionHTTP "day-to-day/internal/suggestion/delivery/http"
	taskHTTP "day-to-day/internal/task/delivery/http"
	timerHTTP "day-to-day/internal/timer/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.scopeManager)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.Metrics())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	authHTTP.RegisterRoutes(api, authHTTP.New(srv.l, srv.authUC), mw)
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, srv.taskUC), mw)
	noteHTTP.RegisterRoutes(api, noteHTTP.New(srv.l, srv.noteUC), mw)
	timerHTTP.RegisterRoutes(api, timerHTTP.New(srv.l, srv.timerUC), mw)
	musicHTTP.RegisterRoutes(api, musicHTTP.New(srv.l, srv.musicUC), mw)

	// Suggestions are optional: without a provider key there is nothing
	// to register.
	if srv.suggestionUC != nil {
		suggestionHTTP.RegisterRoutes(api, suggestionHTTP.New(srv.l, srv.suggestionUC), mw,
			srv.rateLimitPerMin, srv.rateLimitBurst)
		srv.l.Infof(ctx, "Suggestion routes registered")
	} else {
		srv.l.Warnf(ctx, "Suggestion provider not configured, skipping suggestion routes")
	}

	srv.l.Infof(ctx, "Domain routes registered")
	return nil
}
