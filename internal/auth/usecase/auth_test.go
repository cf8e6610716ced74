package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"day-to-day/internal/auth"
	pkgLog "day-to-day/pkg/log"
	"day-to-day/pkg/scope"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

var _ pkgLog.Logger = (*mockLogger)(nil)

func newTestUseCase(t *testing.T) (*implUseCase, scope.Manager) {
	t.Helper()
	sm, err := scope.New(scope.Config{Secret: "test-secret", Lifetime: time.Hour})
	if err != nil {
		t.Fatalf("scope.New: %v", err)
	}
	uc := New(&mockLogger{}, sm, time.Hour)
	uc.delay = func(time.Duration) {} // no simulated latency in tests
	return uc, sm
}

func TestLoginDerivesDisplayName(t *testing.T) {
	uc, sm := newTestUseCase(t)
	ctx := context.Background()

	out, err := uc.Login(ctx, auth.LoginInput{Email: "alice@example.com", Password: "whatever"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if out.User.DisplayName != "alice" {
		t.Errorf("DisplayName = %q, want %q", out.User.DisplayName, "alice")
	}
	if out.User.UID != "demo-user-123" {
		t.Errorf("UID = %q, want demo-user-123", out.User.UID)
	}
	if out.Token == "" {
		t.Fatal("expected a signed token")
	}

	sc, err := sm.Verify(out.Token)
	if err != nil {
		t.Fatalf("Verify issued token: %v", err)
	}
	if sc.UserID != out.User.UID {
		t.Errorf("token subject = %q, want %q", sc.UserID, out.User.UID)
	}
	if sc.SessionID == "" {
		t.Error("token carries no session id")
	}
}

func TestLoginRejectsInvalidEmail(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	for _, email := range []string{"", "   ", "no-at-sign"} {
		_, err := uc.Login(ctx, auth.LoginInput{Email: email})
		if !errors.Is(err, auth.ErrInvalidEmail) {
			t.Errorf("Login(%q) err = %v, want ErrInvalidEmail", email, err)
		}
	}
}

func TestLoginGoogleFixedProfile(t *testing.T) {
	uc, _ := newTestUseCase(t)

	out, err := uc.LoginGoogle(context.Background())
	if err != nil {
		t.Fatalf("LoginGoogle: %v", err)
	}
	if out.User.UID != "google-user-456" {
		t.Errorf("UID = %q, want google-user-456", out.User.UID)
	}
	if out.User.DisplayName != "Google Explorer" {
		t.Errorf("DisplayName = %q, want Google Explorer", out.User.DisplayName)
	}
	if out.User.Email != "google.user@gmail.com" {
		t.Errorf("Email = %q", out.User.Email)
	}
}

func TestMeRestoresMirroredIdentity(t *testing.T) {
	uc, sm := newTestUseCase(t)
	ctx := context.Background()

	out, err := uc.Login(ctx, auth.LoginInput{Email: "bob@example.com"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	sc, err := sm.Verify(out.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	user, err := uc.Me(ctx, sc)
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if user != out.User {
		t.Errorf("Me returned %+v, want %+v", user, out.User)
	}
}

func TestMeAfterLogout(t *testing.T) {
	uc, sm := newTestUseCase(t)
	ctx := context.Background()

	out, err := uc.Login(ctx, auth.LoginInput{Email: "carol@example.com"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	sc, err := sm.Verify(out.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if err := uc.Logout(ctx, sc); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := uc.Me(ctx, sc); !errors.Is(err, auth.ErrSessionExpired) {
		t.Errorf("Me after logout err = %v, want ErrSessionExpired", err)
	}
}

func TestLogoutLeavesOtherSessionsAlive(t *testing.T) {
	uc, sm := newTestUseCase(t)
	ctx := context.Background()

	first, err := uc.Login(ctx, auth.LoginInput{Email: "dave@example.com"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	second, err := uc.LoginGoogle(ctx)
	if err != nil {
		t.Fatalf("LoginGoogle: %v", err)
	}

	firstScope, err := sm.Verify(first.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	secondScope, err := sm.Verify(second.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if err := uc.Logout(ctx, firstScope); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := uc.Me(ctx, secondScope); err != nil {
		t.Errorf("second session should survive the first logout, got %v", err)
	}
}
