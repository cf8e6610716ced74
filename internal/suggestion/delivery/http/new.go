package http

import (
	"day-to-day/internal/suggestion"
	"day-to-day/pkg/log"
)

type handler struct {
	l  log.Logger
	uc suggestion.UseCase
}

// New creates a new HTTP handler for AI-assisted suggestions.
func New(l log.Logger, uc suggestion.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
