package memory

import (
	"context"
	"sync"

	"day-to-day/internal/model"
)

// Repository is an in-memory note store keyed by user id. It backs tests
// and the `store: memory` configuration; contents do not survive restarts.
type Repository struct {
	mu   sync.RWMutex
	data map[string][]model.Note
}

// New creates an empty in-memory note repository.
func New() *Repository {
	return &Repository{data: make(map[string][]model.Note)}
}

func (r *Repository) GetAll(ctx context.Context, userID string) ([]model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.data[userID]
	notes := make([]model.Note, len(stored))
	copy(notes, stored)
	return notes, nil
}

func (r *Repository) SaveAll(ctx context.Context, userID string, notes []model.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]model.Note, len(notes))
	copy(stored, notes)
	r.data[userID] = stored
	return nil
}
