package usecase_test

import (
	"context"
	"errors"
	"testing"

	"day-to-day/internal/model"
	"day-to-day/internal/task"
	"day-to-day/internal/task/usecase"
)

func seedTasks(repo *mockRepo) {
	repo.tasks["u-1"] = []model.Task{
		{ID: "t-4", Title: "newest", DueDate: "2024-05-01", Completed: false},
		{ID: "t-3", Title: "done today", DueDate: "2024-05-01", Completed: true},
		{ID: "t-2", Title: "other day", DueDate: "2024-05-02", Completed: false},
		{ID: "t-1", Title: "oldest", DueDate: "2024-05-01", Completed: false},
	}
}

func TestListDateAndActiveFilter(t *testing.T) {
	repo := newMockRepo()
	seedTasks(repo)
	uc := usecase.New(&mockLogger{}, repo)

	out, err := uc.List(context.Background(), testScope, task.ListTasksInput{
		Date:   "2024-05-01",
		Status: task.StatusActive,
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(out.Tasks))
	}
	// Exactly dueDate == D && !completed, collection order preserved.
	if out.Tasks[0].ID != "t-4" || out.Tasks[1].ID != "t-1" {
		t.Errorf("unexpected result order: %+v", out.Tasks)
	}
}

func TestListCompletedFilter(t *testing.T) {
	repo := newMockRepo()
	seedTasks(repo)
	uc := usecase.New(&mockLogger{}, repo)

	out, err := uc.List(context.Background(), testScope, task.ListTasksInput{
		Date:   "2024-05-01",
		Status: task.StatusCompleted,
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Tasks) != 1 || out.Tasks[0].ID != "t-3" {
		t.Errorf("unexpected completed set: %+v", out.Tasks)
	}
}

func TestListAllDefaultsAndNoDate(t *testing.T) {
	repo := newMockRepo()
	seedTasks(repo)
	uc := usecase.New(&mockLogger{}, repo)

	out, err := uc.List(context.Background(), testScope, task.ListTasksInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Tasks) != 4 {
		t.Errorf("empty filter should return the whole collection, got %d", len(out.Tasks))
	}
}

func TestListRejectsUnknownStatus(t *testing.T) {
	uc := usecase.New(&mockLogger{}, newMockRepo())
	_, err := uc.List(context.Background(), testScope, task.ListTasksInput{Status: "archived"})
	if !errors.Is(err, task.ErrInvalidStatusFilter) {
		t.Errorf("expected ErrInvalidStatusFilter, got %v", err)
	}
}

func TestListScenarioBuyMilk(t *testing.T) {
	repo := newMockRepo()
	uc := usecase.New(&mockLogger{}, repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, testScope, task.CreateTaskInput{
		Title:    "Buy milk",
		Priority: model.PriorityLow,
		DueDate:  "2024-05-01",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	out, err := uc.List(ctx, testScope, task.ListTasksInput{Date: "2024-05-01", Status: task.StatusAll})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Tasks) != 1 {
		t.Fatalf("expected exactly one task, got %d", len(out.Tasks))
	}
	if out.Tasks[0].Title != "Buy milk" || out.Tasks[0].Completed {
		t.Errorf("unexpected task: %+v", out.Tasks[0])
	}
}
