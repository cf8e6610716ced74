package scope

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"day-to-day/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session token expired")
)

// Manager signs and verifies session tokens carrying a caller Scope.
type Manager interface {
	Issue(user model.User, sessionID string) (string, error)
	Verify(token string) (model.Scope, error)
}

// Config holds token manager settings.
type Config struct {
	Secret   string
	Lifetime time.Duration
}

type implManager struct {
	secret   []byte
	lifetime time.Duration
}

// New creates a new token Manager.
func New(cfg Config) (Manager, error) {
	if cfg.Secret == "" {
		return nil, errors.New("scope: secret is required")
	}
	lifetime := cfg.Lifetime
	if lifetime <= 0 {
		lifetime = 24 * time.Hour
	}
	return &implManager{secret: []byte(cfg.Secret), lifetime: lifetime}, nil
}

type sessionClaims struct {
	DisplayName string `json:"display_name,omitempty"`
	jwt.RegisteredClaims
}

// Issue signs a token for the given user and session id.
func (m *implManager) Issue(user model.User, sessionID string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		DisplayName: user.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UID,
			ID:        sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses and validates a token, returning the embedded Scope.
func (m *implManager) Verify(tokenStr string) (model.Scope, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.Scope{}, ErrExpiredToken
		}
		return model.Scope{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return model.Scope{}, ErrInvalidToken
	}

	return model.Scope{
		UserID:      claims.Subject,
		SessionID:   claims.ID,
		DisplayName: claims.DisplayName,
	}, nil
}
