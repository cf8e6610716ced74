package usecase

import (
	"context"

	"day-to-day/internal/model"
	"day-to-day/internal/task"
)

// Update replaces the task with matching id in place. The collection is not
// re-sorted: position is stable under update.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	if err := validateTitle(input.Title); err != nil {
		return task.UpdateTaskOutput{}, err
	}
	if !input.Priority.Valid() {
		return task.UpdateTaskOutput{}, task.ErrInvalidPriority
	}
	if err := validateDueDate(input.DueDate); err != nil {
		return task.UpdateTaskOutput{}, err
	}

	tasks, err := uc.repo.GetAll(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetAll: %v", err)
		return task.UpdateTaskOutput{}, err
	}

	idx := -1
	for i, t := range tasks {
		if t.ID == input.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	updated := tasks[idx]
	updated.Title = input.Title
	updated.Description = input.Description
	updated.Completed = input.Completed
	updated.Priority = input.Priority
	updated.DueDate = input.DueDate
	tasks[idx] = updated

	if err := uc.repo.SaveAll(ctx, sc.UserID, tasks); err != nil {
		uc.l.Errorf(ctx, "uc.Update SaveAll: %v", err)
		return task.UpdateTaskOutput{}, err
	}

	return task.UpdateTaskOutput{Task: updated}, nil
}

// Delete removes a task permanently and immediately. The explicit
// confirmation flag is a precondition, not an error path the UI surfaces.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, input task.DeleteTaskInput) error {
	if !input.Confirmed {
		return task.ErrConfirmationRequired
	}

	tasks, err := uc.repo.GetAll(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetAll: %v", err)
		return err
	}

	remaining := make([]model.Task, 0, len(tasks))
	found := false
	for _, t := range tasks {
		if t.ID == input.ID {
			found = true
			continue
		}
		remaining = append(remaining, t)
	}
	if !found {
		return task.ErrTaskNotFound
	}

	if err := uc.repo.SaveAll(ctx, sc.UserID, remaining); err != nil {
		uc.l.Errorf(ctx, "uc.Delete SaveAll: %v", err)
		return err
	}
	return nil
}
