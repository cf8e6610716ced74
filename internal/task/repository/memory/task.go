package memory

import (
	"context"
	"sync"

	"day-to-day/internal/model"
)

// Repository is an in-memory task store keyed by user id. It backs tests
// and the `store: memory` configuration; contents do not survive restarts.
type Repository struct {
	mu   sync.RWMutex
	data map[string][]model.Task
}

// New creates an empty in-memory task repository.
func New() *Repository {
	return &Repository{data: make(map[string][]model.Task)}
}

func (r *Repository) GetAll(ctx context.Context, userID string) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.data[userID]
	tasks := make([]model.Task, len(stored))
	copy(tasks, stored)
	return tasks, nil
}

func (r *Repository) SaveAll(ctx context.Context, userID string, tasks []model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]model.Task, len(tasks))
	copy(stored, tasks)
	r.data[userID] = stored
	return nil
}
