package usecase

import (
	"context"

	"github.com/google/uuid"

	"day-to-day/internal/model"
	"day-to-day/internal/task"
)

// Import prepends one task per suggestion, all stamped with the currently
// selected date. Suggestions keep their provider order at the head of the
// collection. Entries with blank titles are skipped.
func (uc *implUseCase) Import(ctx context.Context, sc model.Scope, input task.ImportInput) (task.ImportOutput, error) {
	if err := validateDueDate(input.DueDate); err != nil {
		return task.ImportOutput{}, err
	}

	tasks, err := uc.repo.GetAll(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Import GetAll: %v", err)
		return task.ImportOutput{}, err
	}

	created := make([]model.Task, 0, len(input.Suggestions))
	now := nowMillis()
	for _, s := range input.Suggestions {
		if validateTitle(s.Title) != nil {
			uc.l.Warnf(ctx, "uc.Import: skipping suggestion with blank title")
			continue
		}
		priority := s.Priority
		if !priority.Valid() {
			// The trust boundary clamps upstream; keep the stored enum
			// closed even if a caller bypasses it.
			priority = model.PriorityMedium
		}
		created = append(created, model.Task{
			ID:        uuid.NewString(),
			UserID:    sc.UserID,
			Title:     s.Title,
			Completed: false,
			Priority:  priority,
			CreatedAt: now,
			DueDate:   input.DueDate,
		})
	}

	if len(created) == 0 {
		return task.ImportOutput{Tasks: []model.Task{}}, nil
	}

	tasks = append(append([]model.Task{}, created...), tasks...)

	if err := uc.repo.SaveAll(ctx, sc.UserID, tasks); err != nil {
		uc.l.Errorf(ctx, "uc.Import SaveAll: %v", err)
		return task.ImportOutput{}, err
	}

	return task.ImportOutput{Tasks: created}, nil
}
