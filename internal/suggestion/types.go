package suggestion

import "day-to-day/internal/model"

// --- UseCase Inputs ---

type SuggestTasksInput struct {
	Context string // free-form goal or context text
	DueDate string // the currently selected date, YYYY-MM-DD
}

type FindMusicInput struct {
	Query string
}

// --- UseCase Outputs ---

// SuggestTasksOutput carries the tasks created from accepted suggestions.
type SuggestTasksOutput struct {
	Tasks []model.Task
}

// MusicLink is a search-grounded source backing the music answer.
type MusicLink struct {
	Title string
	URI   string
}

type FindMusicOutput struct {
	Text  string
	Links []MusicLink
}
