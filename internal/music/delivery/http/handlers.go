package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"day-to-day/internal/middleware"
	"day-to-day/pkg/response"
)

var errMissingID = errors.New("id is required")

// List godoc
// @Summary     Soundscape catalog
// @Description Returns the fixed soundscape catalog and the caller's active
// @Description track id, empty when nothing is playing.
// @Tags        Soundscapes
// @Produce     json
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/soundscapes [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	output, err := h.uc.List(ctx, sc)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Toggle godoc
// @Summary     Toggle a soundscape
// @Description Activates the given track, replacing any other; toggling the
// @Description active track switches playback off entirely.
// @Tags        Soundscapes
// @Produce     json
// @Param       id path string true "Soundscape ID"
// @Success     200 {object} toggleResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/soundscapes/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output, err := h.uc.Toggle(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, toggleResp{ActiveID: output.ActiveID})
}
