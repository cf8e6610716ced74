package usecase

import (
	"context"

	"day-to-day/internal/model"
	"day-to-day/internal/task"
)

// List restricts the collection to tasks whose due date equals the selected
// date, then applies the status filter. Insertion order is preserved.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
	status := input.Status
	if status == "" {
		status = task.StatusAll
	}
	if !status.Valid() {
		return task.ListTasksOutput{}, task.ErrInvalidStatusFilter
	}
	if input.Date != "" {
		if err := validateDueDate(input.Date); err != nil {
			return task.ListTasksOutput{}, err
		}
	}

	tasks, err := uc.repo.GetAll(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List GetAll: %v", err)
		return task.ListTasksOutput{}, err
	}

	filtered := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if input.Date != "" && t.DueDate != input.Date {
			continue
		}
		switch status {
		case task.StatusActive:
			if t.Completed {
				continue
			}
		case task.StatusCompleted:
			if !t.Completed {
				continue
			}
		}
		filtered = append(filtered, t)
	}

	return task.ListTasksOutput{Tasks: filtered, Total: len(filtered)}, nil
}
