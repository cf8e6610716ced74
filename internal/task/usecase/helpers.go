package usecase

import (
	"strings"
	"time"

	"day-to-day/internal/task"
)

const dueDateLayout = "2006-01-02"

// validateTitle rejects blank or whitespace-only titles. State is never
// mutated on rejection.
func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return task.ErrEmptyTitle
	}
	return nil
}

// validateDueDate checks the plain YYYY-MM-DD form. Due dates carry no
// time-of-day and no timezone; all comparisons elsewhere are string equality.
func validateDueDate(date string) error {
	if _, err := time.Parse(dueDateLayout, date); err != nil {
		return task.ErrInvalidDueDate
	}
	return nil
}
