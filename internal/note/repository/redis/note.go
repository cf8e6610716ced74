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

// keyPrefix shares the day_to_day namespace with the task store; the
// collection kind keeps the two apart.
const keyPrefix = "day_to_day:notes:"

type implRepository struct {
	client *redis.Client
	l      pkgLog.Logger
}

// New creates a redis-backed note repository.
func New(client *redis.Client, l pkgLog.Logger) *implRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func noteKey(userID string) string {
	return keyPrefix + userID
}

// GetAll reads the user's whole note collection. A missing key yields an
// empty slice, not an error.
func (r *implRepository) GetAll(ctx context.Context, userID string) ([]model.Note, error) {
	raw, err := r.client.Get(ctx, noteKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []model.Note{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get notes: %w", err)
	}

	var notes []model.Note
	if err := json.Unmarshal(raw, &notes); err != nil {
		return nil, fmt.Errorf("unmarshal notes for user %s: %w", userID, err)
	}
	if notes == nil {
		notes = []model.Note{}
	}
	return notes, nil
}

// SaveAll overwrites the user's whole note collection.
func (r *implRepository) SaveAll(ctx context.Context, userID string, notes []model.Note) error {
	if notes == nil {
		notes = []model.Note{}
	}
	raw, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("marshal notes for user %s: %w", userID, err)
	}
	if err := r.client.Set(ctx, noteKey(userID), raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set notes: %w", err)
	}
	return nil
}
