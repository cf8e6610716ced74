package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"day-to-day/internal/model"
	pkgLog "day-to-day/pkg/log"
	"day-to-day/pkg/scope"
)

const (
	// sessionMirrorSize caps the mirror; a single-user deployment never
	// comes close, but the LRU needs a bound.
	sessionMirrorSize = 1024

	loginDelay  = 1000 * time.Millisecond
	googleDelay = 1200 * time.Millisecond
)

type implUseCase struct {
	l        pkgLog.Logger
	scope    scope.Manager
	sessions *expirable.LRU[string, model.User]

	// delay simulates the provider round-trip. Tests set it to zero.
	delay func(time.Duration)
}

// New creates a new auth UseCase instance. sessionTTL bounds how long a
// mirrored identity survives without re-login.
func New(l pkgLog.Logger, sm scope.Manager, sessionTTL time.Duration) *implUseCase {
	return &implUseCase{
		l:        l,
		scope:    sm,
		sessions: expirable.NewLRU[string, model.User](sessionMirrorSize, nil, sessionTTL),
		delay:    time.Sleep,
	}
}
