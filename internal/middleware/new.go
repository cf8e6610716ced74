package middleware

import (
	"day-to-day/pkg/log"
	"day-to-day/pkg/scope"
)

type Middleware struct {
	l            log.Logger
	scopeManager scope.Manager
}

func New(l log.Logger, scopeManager scope.Manager) Middleware {
	return Middleware{
		l:            l,
		scopeManager: scopeManager,
	}
}
