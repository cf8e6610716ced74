package task

import "day-to-day/internal/model"

// StatusFilter is the three-way view restriction applied after date filtering.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
)

// Valid reports whether f is a known status filter.
func (f StatusFilter) Valid() bool {
	switch f {
	case StatusAll, StatusActive, StatusCompleted:
		return true
	}
	return false
}

// --- UseCase Inputs ---

type CreateTaskInput struct {
	Title       string
	Description string
	Priority    model.Priority
	DueDate     string // YYYY-MM-DD
}

type ListTasksInput struct {
	Date   string // empty means no date restriction
	Status StatusFilter
}

type UpdateTaskInput struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	Priority    model.Priority
	DueDate     string
}

type DeleteTaskInput struct {
	ID        string
	Confirmed bool
}

// Suggestion is a provider-supplied {title, priority} pair. Priority has
// already been validated at the trust boundary before it reaches this layer.
type Suggestion struct {
	Title    string
	Priority model.Priority
}

type ImportInput struct {
	Suggestions []Suggestion
	DueDate     string // the currently selected date
}

type CalendarInput struct {
	Year  int
	Month int // 1-12
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks []model.Task
	Total int
}

type UpdateTaskOutput struct {
	Task model.Task
}

type ImportOutput struct {
	Tasks []model.Task
}

// Stats are the completion statistics over the full collection.
type Stats struct {
	Total      int
	Completed  int
	Pending    int
	Percentage int
}

// DayCell is one real day in a month grid. HasTasks is membership of the
// date in the distinct set of due dates across the whole collection.
type DayCell struct {
	Date     string // YYYY-MM-DD
	Day      int
	HasTasks bool
}

// MonthGrid is the calendar view for one month: LeadingBlanks empty cells
// (the weekday offset of day 1, Sunday-first) followed by Days.
type MonthGrid struct {
	Year          int
	Month         int
	LeadingBlanks int
	Days          []DayCell
}
