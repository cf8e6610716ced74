package music

import (
	"context"

	"day-to-day/internal/model"
)

// UseCase defines the business logic interface for ambient soundscapes.
type UseCase interface {
	// List returns the catalog with the caller's active track id.
	List(ctx context.Context, sc model.Scope) (ListOutput, error)

	// Toggle flips the given track: activating it deactivates any other,
	// toggling the active one switches playback off entirely.
	Toggle(ctx context.Context, sc model.Scope, id string) (ToggleOutput, error)
}
