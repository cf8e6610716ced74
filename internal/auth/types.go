package auth

import "day-to-day/internal/model"

// --- UseCase Inputs ---

type LoginInput struct {
	Email    string
	Password string
}

// --- UseCase Outputs ---

// SessionOutput carries a fresh identity with its signed session token.
type SessionOutput struct {
	User  model.User
	Token string
}
