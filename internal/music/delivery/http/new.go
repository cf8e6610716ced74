package http

import (
	"day-to-day/internal/music"
	"day-to-day/pkg/log"
)

type handler struct {
	l  log.Logger
	uc music.UseCase
}

// New creates a new HTTP handler for soundscapes.
func New(l log.Logger, uc music.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
