package timer

import (
	"context"

	"day-to-day/internal/model"
)

// UseCase defines the business logic interface for the per-session
// focus countdown.
type UseCase interface {
	// Start resumes the caller's countdown. Starting an already running
	// countdown is a no-op.
	Start(ctx context.Context, sc model.Scope) (Snapshot, error)

	// Pause halts the countdown, keeping the remaining time.
	Pause(ctx context.Context, sc model.Scope) (Snapshot, error)

	// Reset stops the countdown and restores the full preset length.
	Reset(ctx context.Context, sc model.Scope) (Snapshot, error)

	// SetPreset stops the countdown and switches both total and
	// remaining time to the preset length.
	SetPreset(ctx context.Context, sc model.Scope, preset Preset) (Snapshot, error)

	// Snapshot returns the current countdown view.
	Snapshot(ctx context.Context, sc model.Scope) (Snapshot, error)
}
