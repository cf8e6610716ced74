package http

import (
	"day-to-day/internal/model"
	"day-to-day/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"       binding:"required"`
	Description string `json:"description" binding:"max=2000"`
	Priority    string `json:"priority"    binding:"required,oneof=low medium high"`
	DueDate     string `json:"dueDate"     binding:"required"`
}

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    model.Priority(r.Priority),
		DueDate:     r.DueDate,
	}
}

type listReq struct {
	Date   string `form:"date"`
	Status string `form:"status"`
}

func (r listReq) toInput() task.ListTasksInput {
	status := task.StatusFilter(r.Status)
	if r.Status == "" {
		status = task.StatusAll
	}
	return task.ListTasksInput{
		Date:   r.Date,
		Status: status,
	}
}

type updateReq struct {
	ID          string `json:"-"` // populated from URI param
	Title       string `json:"title"       binding:"required"`
	Description string `json:"description" binding:"max=2000"`
	Completed   bool   `json:"completed"`
	Priority    string `json:"priority"    binding:"required,oneof=low medium high"`
	DueDate     string `json:"dueDate"     binding:"required"`
}

func (r updateReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		Priority:    model.Priority(r.Priority),
		DueDate:     r.DueDate,
	}
}

type deleteReq struct {
	ID      string
	Confirm bool
}

func (r deleteReq) toInput() task.DeleteTaskInput {
	return task.DeleteTaskInput{
		ID:        r.ID,
		Confirmed: r.Confirm,
	}
}

type suggestionReq struct {
	Title    string `json:"title"    binding:"required"`
	Priority string `json:"priority" binding:"required"`
}

type importReq struct {
	Suggestions []suggestionReq `json:"suggestions" binding:"required,dive"`
	DueDate     string          `json:"dueDate"     binding:"required"`
}

func (r importReq) toInput() task.ImportInput {
	suggestions := make([]task.Suggestion, len(r.Suggestions))
	for i, s := range r.Suggestions {
		suggestions[i] = task.Suggestion{
			Title:    s.Title,
			Priority: model.Priority(s.Priority),
		}
	}
	return task.ImportInput{
		Suggestions: suggestions,
		DueDate:     r.DueDate,
	}
}

type calendarReq struct {
	Year  int `form:"year"  binding:"required"`
	Month int `form:"month" binding:"required"`
}

func (r calendarReq) toInput() task.CalendarInput {
	return task.CalendarInput{Year: r.Year, Month: r.Month}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
	Priority    string `json:"priority"`
	CreatedAt   int64  `json:"createdAt"`
	DueDate     string `json:"dueDate"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    string(t.Priority),
		CreatedAt:   t.CreatedAt,
		DueDate:     t.DueDate,
	}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateTaskOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks, Total: out.Total}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateTaskOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}

type importResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newImportResp(out task.ImportOutput) importResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return importResp{Tasks: tasks, Count: len(tasks)}
}

type statsResp struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Pending    int `json:"pending"`
	Percentage int `json:"percentage"`
}

func (h *handler) newStatsResp(s task.Stats) statsResp {
	return statsResp{
		Total:      s.Total,
		Completed:  s.Completed,
		Pending:    s.Pending,
		Percentage: s.Percentage,
	}
}

type dayCellResp struct {
	Date     string `json:"date"`
	Day      int    `json:"day"`
	HasTasks bool   `json:"hasTasks"`
}

type calendarResp struct {
	Year          int           `json:"year"`
	Month         int           `json:"month"`
	LeadingBlanks int           `json:"leadingBlanks"`
	Days          []dayCellResp `json:"days"`
}

func (h *handler) newCalendarResp(grid task.MonthGrid) calendarResp {
	days := make([]dayCellResp, len(grid.Days))
	for i, d := range grid.Days {
		days[i] = dayCellResp{Date: d.Date, Day: d.Day, HasTasks: d.HasTasks}
	}
	return calendarResp{
		Year:          grid.Year,
		Month:         grid.Month,
		LeadingBlanks: grid.LeadingBlanks,
		Days:          days,
	}
}
