package http

import (
	"github.com/gin-gonic/gin"

	"day-to-day/internal/middleware"
	"day-to-day/pkg/response"
)

// Create godoc
// @Summary     Create a new note
// @Description Creates a note with a random palette color and prepends it to the collection.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Note data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/notes [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List notes
// @Description Returns all notes in insertion order, newest first.
// @Tags        Notes
// @Produce     json
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/notes [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	output, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Update godoc
// @Summary     Update a note
// @Description Replaces title and content in place and stamps a fresh updatedAt.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Note ID"
// @Param       body body updateReq true "Note fields"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notes/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a note
// @Description Permanently removes a note. Requires confirm=true; deletion is irreversible.
// @Tags        Notes
// @Produce     json
// @Param       id      path  string true  "Note ID"
// @Param       confirm query bool   false "Affirmative confirmation"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Confirmation required"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notes/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processDeleteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
