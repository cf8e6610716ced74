package usecase_test

import (
	"context"
	"errors"

	"day-to-day/internal/model"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRepo struct {
	tasks    map[string][]model.Task
	failGet  bool
	failSave bool
	saves    int
}

func newMockRepo() *mockRepo {
	return &mockRepo{tasks: make(map[string][]model.Task)}
}

func (m *mockRepo) GetAll(ctx context.Context, userID string) ([]model.Task, error) {
	if m.failGet {
		return nil, errors.New("store read error")
	}
	out := make([]model.Task, len(m.tasks[userID]))
	copy(out, m.tasks[userID])
	return out, nil
}

func (m *mockRepo) SaveAll(ctx context.Context, userID string, tasks []model.Task) error {
	if m.failSave {
		return errors.New("store write error")
	}
	m.saves++
	stored := make([]model.Task, len(tasks))
	copy(stored, tasks)
	m.tasks[userID] = stored
	return nil
}
