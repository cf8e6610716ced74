package auth

import "errors"

var (
	ErrInvalidEmail   = errors.New("email address is invalid")
	ErrSessionExpired = errors.New("session expired or logged out")
)
