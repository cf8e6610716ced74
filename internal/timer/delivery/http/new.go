package http

import (
	"day-to-day/internal/timer"
	"day-to-day/pkg/log"
)

type handler struct {
	l  log.Logger
	uc timer.UseCase
}

// New creates a new HTTP handler for the focus timer.
func New(l log.Logger, uc timer.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
