package http

import (
	"day-to-day/internal/model"
	"day-to-day/internal/note"
)

type createReq struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

func (req createReq) toInput() note.CreateNoteInput {
	return note.CreateNoteInput{
		Title:   req.Title,
		Content: req.Content,
	}
}

type updateReq struct {
	ID      string `json:"-"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

func (req updateReq) toInput() note.UpdateNoteInput {
	return note.UpdateNoteInput{
		ID:      req.ID,
		Title:   req.Title,
		Content: req.Content,
	}
}

type deleteReq struct {
	ID      string
	Confirm bool
}

func (req deleteReq) toInput() note.DeleteNoteInput {
	return note.DeleteNoteInput{
		ID:        req.ID,
		Confirmed: req.Confirm,
	}
}

type noteResp struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Color     string `json:"color"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

func newNoteResp(n model.Note) noteResp {
	return noteResp{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Color:     n.Color,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

type createResp struct {
	Note noteResp `json:"note"`
}

func (h *handler) newCreateResp(out note.CreateNoteOutput) createResp {
	return createResp{Note: newNoteResp(out.Note)}
}

type listResp struct {
	Notes []noteResp `json:"notes"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out note.ListNotesOutput) listResp {
	notes := make([]noteResp, len(out.Notes))
	for i, n := range out.Notes {
		notes[i] = newNoteResp(n)
	}
	return listResp{Notes: notes, Total: out.Total}
}

type updateResp struct {
	Note noteResp `json:"note"`
}

func (h *handler) newUpdateResp(out note.UpdateNoteOutput) updateResp {
	return updateResp{Note: newNoteResp(out.Note)}
}
