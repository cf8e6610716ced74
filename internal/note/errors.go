package note

import "errors"

// Domain-specific errors for the note package.
var (
	ErrEmptyTitle           = errors.New("note title is empty")
	ErrNoteNotFound         = errors.New("note not found")
	ErrConfirmationRequired = errors.New("deletion requires confirmation")
)
