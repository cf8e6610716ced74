package main

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"day-to-day/config"
	_ "day-to-day/docs" // Swagger docs
	authUC "day-to-day/internal/auth/usecase"
	"day-to-day/internal/httpserver"
	musicUC "day-to-day/internal/music/usecase"
	noteRepository "day-to-day/internal/note/repository"
	noteMemory "day-to-day/internal/note/repository/memory"
	noteRedis "day-to-day/internal/note/repository/redis"
	noteUC "day-to-day/internal/note/usecase"
	"day-to-day/internal/suggestion"
	suggestionUC "day-to-day/internal/suggestion/usecase"
	taskRepository "day-to-day/internal/task/repository"
	taskMemory "day-to-day/internal/task/repository/memory"
	taskRedis "day-to-day/internal/task/repository/redis"
	taskUC "day-to-day/internal/task/usecase"
	timerUC "day-to-day/internal/timer/usecase"
	"day-to-day/pkg/gemini"
	"day-to-day/pkg/log"
	"day-to-day/pkg/scope"
)

// @title       Day To Day API
// @description Personal productivity service: tasks, notes, focus timer, soundscapes and AI task suggestions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Day To Day...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Store: %s", cfg.Store.Kind)

	// 3. Persistence
	var (
		taskRepo taskRepository.Repository
		noteRepo noteRepository.Repository
	)
	switch cfg.Store.Kind {
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Errorf(ctx, "Redis not reachable at %s: %v", cfg.Redis.Addr, err)
			return
		}
		taskRepo = taskRedis.New(redisClient, logger)
		noteRepo = noteRedis.New(redisClient, logger)
	case "memory":
		logger.Warn(ctx, "Using in-memory store: data is lost on restart")
		taskRepo = taskMemory.New()
		noteRepo = noteMemory.New()
	}

	// 4. Sessions
	scopeManager, err := scope.New(scope.Config{
		Secret:   cfg.Session.Secret,
		Lifetime: cfg.Session.Lifetime,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize session manager: ", err)
		return
	}

	// 5. Use cases
	authUsecase := authUC.New(logger, scopeManager, cfg.Session.Lifetime)
	taskUsecase := taskUC.New(logger, taskRepo)
	noteUsecase := noteUC.New(logger, noteRepo)
	timerUsecase := timerUC.New(logger)
	musicUsecase := musicUC.New(logger)

	// Suggestions need a provider key
	var suggestionUsecase suggestion.UseCase
	if cfg.Gemini.APIKey != "" {
		geminiClient := gemini.NewClient(cfg.Gemini.APIKey, gemini.WithModel(cfg.Gemini.Model))
		suggestionUsecase = suggestionUC.New(logger, geminiClient, taskUsecase)
		logger.Infof(ctx, "Suggestion provider initialized (model %s)", geminiClient.Model())
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY not set, suggestions disabled")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ScopeManager:    scopeManager,
		AuthUC:          authUsecase,
		TaskUC:          taskUsecase,
		NoteUC:          noteUsecase,
		SuggestionUC:    suggestionUsecase,
		TimerUC:         timerUsecase,
		MusicUC:         musicUsecase,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		RateLimitBurst:  cfg.RateLimit.Burst,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
