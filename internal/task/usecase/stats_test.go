package usecase_test

import (
	"context"
	"math"
	"testing"

	"day-to-day/internal/model"
	"day-to-day/internal/task/usecase"
)

func TestStatsEmptyCollection(t *testing.T) {
	uc := usecase.New(&mockLogger{}, newMockRepo())

	stats, err := uc.Stats(context.Background(), testScope)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 0 || stats.Completed != 0 || stats.Pending != 0 || stats.Percentage != 0 {
		t.Errorf("empty collection stats must be all zero, got %+v", stats)
	}
}

func TestStatsRounding(t *testing.T) {
	repo := newMockRepo()
	repo.tasks["u-1"] = []model.Task{
		{ID: "a", Completed: true},
		{ID: "b", Completed: true},
		{ID: "c", Completed: false},
	}
	uc := usecase.New(&mockLogger{}, repo)

	stats, err := uc.Stats(context.Background(), testScope)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 3 || stats.Completed != 2 || stats.Pending != 1 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	if stats.Percentage != 67 { // round(2/3*100)
		t.Errorf("percentage = %d, want 67", stats.Percentage)
	}
}

func TestStatsPercentageProperty(t *testing.T) {
	// percentage == round(100*completed/total) for a sweep of collection
	// shapes, and pending == total-completed throughout.
	repo := newMockRepo()
	uc := usecase.New(&mockLogger{}, repo)
	ctx := context.Background()

	for total := 0; total <= 500; total += 23 {
		for completed := 0; completed <= total; completed += 17 {
			tasks := make([]model.Task, total)
			for i := range tasks {
				tasks[i] = model.Task{ID: "t", Completed: i < completed}
			}
			repo.tasks["u-1"] = tasks

			stats, err := uc.Stats(ctx, testScope)
			if err != nil {
				t.Fatalf("Stats: %v", err)
			}

			want := 0
			if total > 0 {
				want = int(math.Round(float64(completed) / float64(total) * 100))
			}
			if stats.Percentage != want {
				t.Fatalf("total=%d completed=%d: percentage = %d, want %d", total, completed, stats.Percentage, want)
			}
			if stats.Pending != total-completed {
				t.Fatalf("total=%d completed=%d: pending = %d", total, completed, stats.Pending)
			}
		}
	}
}
