package scope_test

import (
	"testing"
	"time"

	"day-to-day/internal/model"
	"day-to-day/pkg/scope"
)

func TestIssueAndVerify(t *testing.T) {
	mgr, err := scope.New(scope.Config{Secret: "test-secret", Lifetime: time.Hour})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	user := model.User{UID: "u-1", DisplayName: "Demo"}
	token, err := mgr.Issue(user, "sess-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	sc, err := mgr.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if sc.UserID != "u-1" || sc.SessionID != "sess-1" || sc.DisplayName != "Demo" {
		t.Errorf("unexpected scope: %+v", sc)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	mgr, _ := scope.New(scope.Config{Secret: "test-secret"})
	if _, err := mgr.Verify("not-a-token"); err != scope.ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	mgr, _ := scope.New(scope.Config{Secret: "test-secret", Lifetime: -time.Minute})
	token, err := mgr.Issue(model.User{UID: "u-1"}, "sess-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := mgr.Verify(token); err != scope.ErrExpiredToken {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	a, _ := scope.New(scope.Config{Secret: "secret-a"})
	b, _ := scope.New(scope.Config{Secret: "secret-b"})

	token, err := a.Issue(model.User{UID: "u-1"}, "sess-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := b.Verify(token); err == nil {
		t.Error("expected verification failure across secrets")
	}
}

func TestNewRequiresSecret(t *testing.T) {
	if _, err := scope.New(scope.Config{}); err == nil {
		t.Error("expected error for empty secret")
	}
}
