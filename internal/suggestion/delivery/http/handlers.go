package http

import (
	"github.com/gin-gonic/gin"

	"day-to-day/internal/middleware"
	"day-to-day/pkg/response"
)

// SuggestTasks godoc
// @Summary     Suggest and import tasks
// @Description Asks the AI provider for 3-5 concise tasks matching the given
// @Description context and imports them with the selected due date. Provider
// @Description failures return an empty task list, not an error.
// @Tags        Suggestions
// @Accept      json
// @Produce     json
// @Param       body body suggestTasksReq true "Goal or context"
// @Success     200 {object} suggestTasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/suggestions/tasks [POST]
func (h *handler) SuggestTasks(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processSuggestTasksReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SuggestTasks(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestTasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSuggestTasksResp(output))
}

// FindMusic godoc
// @Summary     Search-grounded music discovery
// @Description Runs a grounded provider query for focus music. Provider
// @Description failures return a fixed apology text with no links.
// @Tags        Suggestions
// @Accept      json
// @Produce     json
// @Param       body body findMusicReq true "Music query"
// @Success     200 {object} findMusicResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/suggestions/music [POST]
func (h *handler) FindMusic(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processFindMusicReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.FindMusic(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.FindMusic: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newFindMusicResp(output))
}
