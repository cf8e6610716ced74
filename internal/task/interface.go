package task

import (
	"context"

	"day-to-day/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create prepends a new task to the caller's collection.
	Create(ctx context.Context, sc model.Scope, input CreateTaskInput) (CreateTaskOutput, error)

	// List returns the caller's tasks restricted by due date, then status.
	// Collection order (newest first) is preserved.
	List(ctx context.Context, sc model.Scope, input ListTasksInput) (ListTasksOutput, error)

	// Update replaces the task with matching id in place, preserving order.
	Update(ctx context.Context, sc model.Scope, input UpdateTaskInput) (UpdateTaskOutput, error)

	// Delete removes a task permanently. Requires explicit confirmation.
	Delete(ctx context.Context, sc model.Scope, input DeleteTaskInput) error

	// Import prepends one task per provider suggestion, all stamped with
	// the supplied selected date.
	Import(ctx context.Context, sc model.Scope, input ImportInput) (ImportOutput, error)

	// Stats computes completion statistics over the full collection.
	Stats(ctx context.Context, sc model.Scope) (Stats, error)

	// Calendar produces the month grid with task-presence markers.
	Calendar(ctx context.Context, sc model.Scope, input CalendarInput) (MonthGrid, error)
}
