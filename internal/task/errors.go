package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyTitle           = errors.New("task title is empty")
	ErrInvalidPriority      = errors.New("priority must be low, medium or high")
	ErrInvalidDueDate       = errors.New("due date must be YYYY-MM-DD")
	ErrInvalidStatusFilter  = errors.New("status filter must be all, active or completed")
	ErrInvalidMonth         = errors.New("month must be between 1 and 12")
	ErrTaskNotFound         = errors.New("task not found")
	ErrConfirmationRequired = errors.New("deletion requires confirmation")
)
