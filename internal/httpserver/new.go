package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"day-to-day/internal/auth"
	"day-to-day/internal/music"
	"day-to-day/internal/note"
	"day-to-day/internal/suggestion"
	"day-to-day/internal/task"
	"day-to-day/internal/timer"
	"day-to-day/pkg/log"
	"day-to-day/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Auth
	scopeManager scope.Manager
	authUC       auth.UseCase

	// Domains
	taskUC       task.UseCase
	noteUC       note.UseCase
	suggestionUC suggestion.UseCase
	timerUC      timer.UseCase
	musicUC      music.UseCase

	// Provider rate limit
	rateLimitPerMin int
	rateLimitBurst  int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	ScopeManager scope.Manager
	AuthUC       auth.UseCase

	TaskUC       task.UseCase
	NoteUC       note.UseCase
	SuggestionUC suggestion.UseCase
	TimerUC      timer.UseCase
	MusicUC      music.UseCase

	RateLimitPerMin int
	RateLimitBurst  int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		scopeManager:    cfg.ScopeManager,
		authUC:          cfg.AuthUC,
		taskUC:          cfg.TaskUC,
		noteUC:          cfg.NoteUC,
		suggestionUC:    cfg.SuggestionUC,
		timerUC:         cfg.TimerUC,
		musicUC:         cfg.MusicUC,
		rateLimitPerMin: cfg.RateLimitPerMin,
		rateLimitBurst:  cfg.RateLimitBurst,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.scopeManager == nil {
		return errors.New("scope manager is required")
	}
	if srv.authUC == nil {
		return errors.New("auth usecase is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	if srv.noteUC == nil {
		return errors.New("note usecase is required")
	}
	if srv.timerUC == nil {
		return errors.New("timer usecase is required")
	}
	if srv.musicUC == nil {
		return errors.New("music usecase is required")
	}
	return nil
}
