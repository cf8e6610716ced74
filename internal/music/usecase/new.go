package usecase

import (
	"context"
	"sync"

	"day-to-day/internal/model"
	"day-to-day/internal/music"
	pkgLog "day-to-day/pkg/log"
)

type implUseCase struct {
	l pkgLog.Logger

	mu     sync.Mutex
	active map[string]string // session id -> active soundscape id
}

// New creates a new music UseCase instance. Playback state is per session
// and lives only in memory.
func New(l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		l:      l,
		active: make(map[string]string),
	}
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (music.ListOutput, error) {
	uc.mu.Lock()
	activeID := uc.active[sc.SessionID]
	uc.mu.Unlock()

	return music.ListOutput{
		Soundscapes: music.Catalog,
		ActiveID:    activeID,
	}, nil
}

// Toggle keeps playback mutually exclusive: at most one active track per
// session.
func (uc *implUseCase) Toggle(ctx context.Context, sc model.Scope, id string) (music.ToggleOutput, error) {
	if !inCatalog(id) {
		return music.ToggleOutput{}, music.ErrSoundscapeNotFound
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.active[sc.SessionID] == id {
		delete(uc.active, sc.SessionID)
		uc.l.Debugf(ctx, "soundscape %s stopped", id)
		return music.ToggleOutput{}, nil
	}

	uc.active[sc.SessionID] = id
	uc.l.Debugf(ctx, "soundscape %s playing", id)
	return music.ToggleOutput{ActiveID: id}, nil
}

func inCatalog(id string) bool {
	for _, s := range music.Catalog {
		if s.ID == id {
			return true
		}
	}
	return false
}
