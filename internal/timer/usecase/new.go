package usecase

import (
	"context"
	"sync"
	"time"

	"day-to-day/internal/model"
	"day-to-day/internal/timer"
	pkgLog "day-to-day/pkg/log"
)

const defaultTickInterval = time.Second

type implUseCase struct {
	l pkgLog.Logger

	mu         sync.Mutex
	countdowns map[string]*countdown

	tickInterval time.Duration
}

// New creates a new timer UseCase instance. Countdowns are per session
// and live only in memory.
func New(l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		l:            l,
		countdowns:   make(map[string]*countdown),
		tickInterval: defaultTickInterval,
	}
}

// forSession returns the caller's countdown, creating an idle focus
// countdown on first use.
func (uc *implUseCase) forSession(sc model.Scope) *countdown {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	cd, ok := uc.countdowns[sc.SessionID]
	if !ok {
		cd = newCountdown()
		uc.countdowns[sc.SessionID] = cd
	}
	return cd
}

func (uc *implUseCase) Start(ctx context.Context, sc model.Scope) (timer.Snapshot, error) {
	snap := uc.forSession(sc).start(uc.tickInterval)
	uc.l.Debugf(ctx, "timer started: %s remaining", snap.Display)
	return snap, nil
}

func (uc *implUseCase) Pause(ctx context.Context, sc model.Scope) (timer.Snapshot, error) {
	return uc.forSession(sc).pause(), nil
}

func (uc *implUseCase) Reset(ctx context.Context, sc model.Scope) (timer.Snapshot, error) {
	return uc.forSession(sc).reset(), nil
}

func (uc *implUseCase) SetPreset(ctx context.Context, sc model.Scope, preset timer.Preset) (timer.Snapshot, error) {
	if !preset.Valid() {
		return timer.Snapshot{}, timer.ErrUnknownPreset
	}
	return uc.forSession(sc).setPreset(preset), nil
}

func (uc *implUseCase) Snapshot(ctx context.Context, sc model.Scope) (timer.Snapshot, error) {
	return uc.forSession(sc).snapshot(), nil
}
