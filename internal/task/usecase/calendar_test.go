package usecase_test

import (
	"context"
	"errors"
	"testing"

	"day-to-day/internal/model"
	"day-to-day/internal/task"
	"day-to-day/internal/task/usecase"
)

func TestCalendarFebruaryLeapYear(t *testing.T) {
	uc := usecase.New(&mockLogger{}, newMockRepo())

	grid, err := uc.Calendar(context.Background(), testScope, task.CalendarInput{Year: 2024, Month: 2})
	if err != nil {
		t.Fatalf("Calendar: %v", err)
	}
	if len(grid.Days) != 29 {
		t.Errorf("February 2024 has 29 days, got %d", len(grid.Days))
	}
	// 2024-02-01 is a Thursday; Sunday-first offset is 4.
	if grid.LeadingBlanks != 4 {
		t.Errorf("leading blanks = %d, want 4", grid.LeadingBlanks)
	}
	if grid.Days[0].Date != "2024-02-01" || grid.Days[28].Date != "2024-02-29" {
		t.Errorf("unexpected boundary cells: %s .. %s", grid.Days[0].Date, grid.Days[28].Date)
	}
}

func TestCalendarMarkersSpanWholeCollection(t *testing.T) {
	repo := newMockRepo()
	repo.tasks["u-1"] = []model.Task{
		{ID: "a", DueDate: "2024-02-10", Completed: true},
		{ID: "b", DueDate: "2024-02-29"},
		{ID: "c", DueDate: "2024-03-01"}, // other month, no cell in this grid
	}
	uc := usecase.New(&mockLogger{}, repo)

	grid, err := uc.Calendar(context.Background(), testScope, task.CalendarInput{Year: 2024, Month: 2})
	if err != nil {
		t.Fatalf("Calendar: %v", err)
	}

	marked := map[string]bool{}
	for _, cell := range grid.Days {
		marked[cell.Date] = cell.HasTasks
	}
	// Markers ignore completion and any active filter.
	if !marked["2024-02-10"] || !marked["2024-02-29"] {
		t.Error("expected markers on 02-10 and 02-29")
	}
	if marked["2024-02-11"] {
		t.Error("unexpected marker on a date without tasks")
	}
}

func TestCalendarMonthLengths(t *testing.T) {
	uc := usecase.New(&mockLogger{}, newMockRepo())
	ctx := context.Background()

	cases := []struct {
		year, month, days int
	}{
		{2023, 2, 28},
		{2024, 1, 31},
		{2024, 4, 30},
		{2024, 12, 31},
	}
	for _, tc := range cases {
		grid, err := uc.Calendar(ctx, testScope, task.CalendarInput{Year: tc.year, Month: tc.month})
		if err != nil {
			t.Fatalf("Calendar(%d-%02d): %v", tc.year, tc.month, err)
		}
		if len(grid.Days) != tc.days {
			t.Errorf("%d-%02d: %d days, want %d", tc.year, tc.month, len(grid.Days), tc.days)
		}
	}
}

func TestCalendarRejectsBadMonth(t *testing.T) {
	uc := usecase.New(&mockLogger{}, newMockRepo())
	for _, month := range []int{0, 13, -1} {
		_, err := uc.Calendar(context.Background(), testScope, task.CalendarInput{Year: 2024, Month: month})
		if !errors.Is(err, task.ErrInvalidMonth) {
			t.Errorf("month %d: expected ErrInvalidMonth, got %v", month, err)
		}
	}
}
