package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"day-to-day/internal/model"
	pkgLog "day-to-day/pkg/log"
)

// keyPrefix matches the storage namespace used by the web client, so the
// same store key scheme stays stable and collision-free across users.
const keyPrefix = "day_to_day:tasks:"

type implRepository struct {
	client *redis.Client
	l      pkgLog.Logger
}

// New creates a redis-backed task repository.
func New(client *redis.Client, l pkgLog.Logger) *implRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func taskKey(userID string) string {
	return keyPrefix + userID
}

// GetAll reads the user's whole task collection. A missing key yields an
// empty slice, not an error.
func (r *implRepository) GetAll(ctx context.Context, userID string) ([]model.Task, error) {
	raw, err := r.client.Get(ctx, taskKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []model.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get tasks: %w", err)
	}

	var tasks []model.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, fmt.Errorf("unmarshal tasks for user %s: %w", userID, err)
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

// SaveAll overwrites the user's whole task collection.
func (r *implRepository) SaveAll(ctx context.Context, userID string, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	raw, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("marshal tasks for user %s: %w", userID, err)
	}
	if err := r.client.Set(ctx, taskKey(userID), raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set tasks: %w", err)
	}
	return nil
}
