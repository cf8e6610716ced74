package note

import (
	"context"

	"day-to-day/internal/model"
)

// UseCase defines the business logic interface for the note domain.
type UseCase interface {
	// Create prepends a new note with a random palette color.
	Create(ctx context.Context, sc model.Scope, input CreateNoteInput) (CreateNoteOutput, error)

	// List returns the caller's notes in insertion order (newest first).
	List(ctx context.Context, sc model.Scope) (ListNotesOutput, error)

	// Update replaces the note in place and stamps a fresh UpdatedAt.
	Update(ctx context.Context, sc model.Scope, input UpdateNoteInput) (UpdateNoteOutput, error)

	// Delete removes a note permanently. Requires explicit confirmation.
	Delete(ctx context.Context, sc model.Scope, input DeleteNoteInput) error
}
