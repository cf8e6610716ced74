package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"day-to-day/internal/auth"
	"day-to-day/internal/model"
)

// Login simulates the credential exchange: it never verifies the password
// and derives the display name from the email local part.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.SessionOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return auth.SessionOutput{}, auth.ErrInvalidEmail
	}

	uc.delay(loginDelay)

	displayName := strings.SplitN(email, "@", 2)[0]
	if displayName == "" {
		displayName = "Demo User"
	}
	user := model.User{
		UID:         "demo-user-123",
		Email:       email,
		DisplayName: displayName,
		PhotoURL:    "https://ui-avatars.com/api/?name=" + email,
	}

	return uc.openSession(ctx, user)
}

// LoginGoogle simulates a Google sign-in with a fixed profile.
func (uc *implUseCase) LoginGoogle(ctx context.Context) (auth.SessionOutput, error) {
	uc.delay(googleDelay)

	user := model.User{
		UID:         "google-user-456",
		Email:       "google.user@gmail.com",
		DisplayName: "Google Explorer",
		PhotoURL:    "https://ui-avatars.com/api/?name=Google+Explorer&background=4285F4&color=fff",
	}

	return uc.openSession(ctx, user)
}

func (uc *implUseCase) openSession(ctx context.Context, user model.User) (auth.SessionOutput, error) {
	sessionID := uuid.NewString()
	token, err := uc.scope.Issue(user, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "scope.Issue: %v", err)
		return auth.SessionOutput{}, err
	}

	uc.sessions.Add(sessionID, user)
	uc.l.Infof(ctx, "session opened for %s (%s)", user.DisplayName, user.UID)

	return auth.SessionOutput{User: user, Token: token}, nil
}

// Me restores the identity mirrored at login time. A missing entry means
// the session expired or was logged out.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (model.User, error) {
	user, ok := uc.sessions.Get(sc.SessionID)
	if !ok {
		return model.User{}, auth.ErrSessionExpired
	}
	return user, nil
}

// Logout removes the session mirror entry only. Task and note data stay
// in the durable store.
func (uc *implUseCase) Logout(ctx context.Context, sc model.Scope) error {
	uc.sessions.Remove(sc.SessionID)
	uc.l.Infof(ctx, "session closed (%s)", sc.SessionID)
	return nil
}
