package usecase

import (
	"context"
	"fmt"
	"time"

	"day-to-day/internal/model"
	"day-to-day/internal/task"
)

// Calendar produces the month grid for year/month. Presence markers span
// the whole collection regardless of any current filter.
func (uc *implUseCase) Calendar(ctx context.Context, sc model.Scope, input task.CalendarInput) (task.MonthGrid, error) {
	if input.Month < 1 || input.Month > 12 {
		return task.MonthGrid{}, task.ErrInvalidMonth
	}

	tasks, err := uc.repo.GetAll(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Calendar GetAll: %v", err)
		return task.MonthGrid{}, err
	}

	dueDates := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		dueDates[t.DueDate] = struct{}{}
	}

	return buildMonthGrid(input.Year, input.Month, dueDates), nil
}

// buildMonthGrid emits the leading blank cells for the first day's weekday
// offset (Sunday-first) followed by one cell per day of the month.
func buildMonthGrid(year, month int, dueDates map[string]struct{}) task.MonthGrid {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	grid := task.MonthGrid{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(first.Weekday()),
		Days:          make([]task.DayCell, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		_, hasTasks := dueDates[date]
		grid.Days = append(grid.Days, task.DayCell{
			Date:     date,
			Day:      day,
			HasTasks: hasTasks,
		})
	}
	return grid
}
