package auth

import (
	"context"

	"day-to-day/internal/model"
)

// UseCase defines the business logic interface for the identity stub.
type UseCase interface {
	// Login performs the simulated credential exchange and opens a session.
	Login(ctx context.Context, input LoginInput) (SessionOutput, error)

	// LoginGoogle performs the simulated Google sign-in with a fixed profile.
	LoginGoogle(ctx context.Context) (SessionOutput, error)

	// Me restores the caller identity from the session mirror.
	Me(ctx context.Context, sc model.Scope) (model.User, error)

	// Logout drops the session mirror entry. Stored data is untouched.
	Logout(ctx context.Context, sc model.Scope) error
}
