package http

import (
	"day-to-day/internal/model"
	"day-to-day/internal/suggestion"
)

type suggestTasksReq struct {
	Context string `json:"context" binding:"required"`
	DueDate string `json:"dueDate" binding:"required"`
}

func (req suggestTasksReq) toInput() suggestion.SuggestTasksInput {
	return suggestion.SuggestTasksInput{
		Context: req.Context,
		DueDate: req.DueDate,
	}
}

type findMusicReq struct {
	Query string `json:"query" binding:"required"`
}

func (req findMusicReq) toInput() suggestion.FindMusicInput {
	return suggestion.FindMusicInput{Query: req.Query}
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

type suggestTasksResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newSuggestTasksResp(out suggestion.SuggestTasksOutput) suggestTasksResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return suggestTasksResp{Tasks: tasks, Count: len(tasks)}
}

type musicLinkResp struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

type findMusicResp struct {
	Text  string          `json:"text"`
	Links []musicLinkResp `json:"links"`
}

func (h *handler) newFindMusicResp(out suggestion.FindMusicOutput) findMusicResp {
	links := make([]musicLinkResp, len(out.Links))
	for i, l := range out.Links {
		links[i] = musicLinkResp{Title: l.Title, URI: l.URI}
	}
	return findMusicResp{Text: out.Text, Links: links}
}
