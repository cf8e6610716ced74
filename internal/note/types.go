package note

import "day-to-day/internal/model"

// NoteColors is the fixed palette a new note's display color is drawn from.
// The color never changes after creation.
var NoteColors = []string{
	"bg-amber-50",
	"bg-blue-50",
	"bg-emerald-50",
	"bg-rose-50",
	"bg-indigo-50",
}

// --- UseCase Inputs ---

type CreateNoteInput struct {
	Title   string
	Content string
}

type UpdateNoteInput struct {
	ID      string
	Title   string
	Content string
}

type DeleteNoteInput struct {
	ID        string
	Confirmed bool
}

// --- UseCase Outputs ---

type CreateNoteOutput struct {
	Note model.Note
}

type ListNotesOutput struct {
	Notes []model.Note
	Total int
}

type UpdateNoteOutput struct {
	Note model.Note
}
