package repository

import (
	"context"

	"day-to-day/internal/model"
)

// Repository persists a user's full note collection as one unit.
// GetAll returns an empty slice when nothing is stored; SaveAll is a full
// overwrite, not incremental.
type Repository interface {
	GetAll(ctx context.Context, userID string) ([]model.Note, error)
	SaveAll(ctx context.Context, userID string, notes []model.Note) error
}
