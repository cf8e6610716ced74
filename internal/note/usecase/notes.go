package usecase

import (
	"context"

	"github.com/google/uuid"

	"day-to-day/internal/model"
	"day-to-day/internal/note"
)

// Create prepends a new note. The palette color is fixed at creation;
// CreatedAt and UpdatedAt start equal.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input note.CreateNoteInput) (note.CreateNoteOutput, error) {
	if err := validateTitle(input.Title); err != nil {
		return note.CreateNoteOutput{}, err
	}

	notes, err := uc.repo.GetAll(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetAll: %v", err)
		return note.CreateNoteOutput{}, err
	}

	now := nowMillis()
	newNote := model.Note{
		ID:        uuid.NewString(),
		UserID:    sc.UserID,
		Title:     input.Title,
		Content:   input.Content,
		Color:     randomColor(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	notes = append([]model.Note{newNote}, notes...)

	if err := uc.repo.SaveAll(ctx, sc.UserID, notes); err != nil {
		uc.l.Errorf(ctx, "uc.Create SaveAll: %v", err)
		return note.CreateNoteOutput{}, err
	}

	return note.CreateNoteOutput{Note: newNote}, nil
}

// List returns the collection in insertion order.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (note.ListNotesOutput, error) {
	notes, err := uc.repo.GetAll(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List GetAll: %v", err)
		return note.ListNotesOutput{}, err
	}
	return note.ListNotesOutput{Notes: notes, Total: len(notes)}, nil
}

// Update replaces the note in place, keeping its color and creation time,
// and stamps a fresh UpdatedAt. UpdatedAt is never touched on read.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input note.UpdateNoteInput) (note.UpdateNoteOutput, error) {
	if err := validateTitle(input.Title); err != nil {
		return note.UpdateNoteOutput{}, err
	}

	notes, err := uc.repo.GetAll(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetAll: %v", err)
		return note.UpdateNoteOutput{}, err
	}

	idx := -1
	for i, n := range notes {
		if n.ID == input.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return note.UpdateNoteOutput{}, note.ErrNoteNotFound
	}

	updated := notes[idx]
	updated.Title = input.Title
	updated.Content = input.Content
	updated.UpdatedAt = nowMillis()
	notes[idx] = updated

	if err := uc.repo.SaveAll(ctx, sc.UserID, notes); err != nil {
		uc.l.Errorf(ctx, "uc.Update SaveAll: %v", err)
		return note.UpdateNoteOutput{}, err
	}

	return note.UpdateNoteOutput{Note: updated}, nil
}

// Delete removes a note permanently and immediately after confirmation.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, input note.DeleteNoteInput) error {
	if !input.Confirmed {
		return note.ErrConfirmationRequired
	}

	notes, err := uc.repo.GetAll(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetAll: %v", err)
		return err
	}

	remaining := make([]model.Note, 0, len(notes))
	found := false
	for _, n := range notes {
		if n.ID == input.ID {
			found = true
			continue
		}
		remaining = append(remaining, n)
	}
	if !found {
		return note.ErrNoteNotFound
	}

	if err := uc.repo.SaveAll(ctx, sc.UserID, remaining); err != nil {
		uc.l.Errorf(ctx, "uc.Delete SaveAll: %v", err)
		return err
	}
	return nil
}
