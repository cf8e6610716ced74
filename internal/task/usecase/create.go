package usecase

import (
	"context"

	"github.com/google/uuid"

	"day-to-day/internal/model"
	"day-to-day/internal/task"
)

// Create validates input, prepends the new task and writes the collection.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	if err := validateTitle(input.Title); err != nil {
		return task.CreateTaskOutput{}, err
	}
	if !input.Priority.Valid() {
		return task.CreateTaskOutput{}, task.ErrInvalidPriority
	}
	if err := validateDueDate(input.DueDate); err != nil {
		return task.CreateTaskOutput{}, err
	}

	tasks, err := uc.repo.GetAll(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetAll: %v", err)
		return task.CreateTaskOutput{}, err
	}

	newTask := model.Task{
		ID:          uuid.NewString(),
		UserID:      sc.UserID,
		Title:       input.Title,
		Description: input.Description,
		Completed:   false,
		Priority:    input.Priority,
		CreatedAt:   nowMillis(),
		DueDate:     input.DueDate,
	}

	// Newest first: creates prepend.
	tasks = append([]model.Task{newTask}, tasks...)

	if err := uc.repo.SaveAll(ctx, sc.UserID, tasks); err != nil {
		uc.l.Errorf(ctx, "uc.Create SaveAll: %v", err)
		return task.CreateTaskOutput{}, err
	}

	return task.CreateTaskOutput{Task: newTask}, nil
}
