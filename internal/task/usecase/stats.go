package usecase

import (
	"context"
	"math"

	"day-to-day/internal/model"
	"day-to-day/internal/task"
)

// Stats computes completion statistics over the full collection.
// Percentage is 0 when the collection is empty.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (task.Stats, error) {
	tasks, err := uc.repo.GetAll(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats GetAll: %v", err)
		return task.Stats{}, err
	}
	return computeStats(tasks), nil
}

func computeStats(tasks []model.Task) task.Stats {
	total := len(tasks)
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(completed) / float64(total) * 100))
	}

	return task.Stats{
		Total:      total,
		Completed:  completed,
		Pending:    total - completed,
		Percentage: percentage,
	}
}
