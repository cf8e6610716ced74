package repository

import (
	"context"

	"day-to-day/internal/model"
)

// Repository persists a user's full task collection as one unit.
// GetAll returns an empty slice when nothing is stored; SaveAll is a full
// overwrite, not incremental.
type Repository interface {
	GetAll(ctx context.Context, userID string) ([]model.Task, error)
	SaveAll(ctx context.Context, userID string, tasks []model.Task) error
}
