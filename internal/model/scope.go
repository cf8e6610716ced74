package model

// Scope carries the authenticated caller identity through use-case calls.
type Scope struct {
	UserID      string
	SessionID   string
	DisplayName string
}
