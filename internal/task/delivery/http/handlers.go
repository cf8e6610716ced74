package http

import (
	"github.com/gin-gonic/gin"

	"day-to-day/internal/middleware"
	"day-to-day/pkg/response"
)

// Create godoc
// @Summary     Create a new task
// @Description Creates a task for the authenticated user and prepends it to the collection.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks [POST]
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
// @Summary     List tasks
// @Description Returns tasks filtered by due date (string equality) then status.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       date   query string false "Selected date (YYYY-MM-DD)"
// @Param       status query string false "Status filter (all/active/completed)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Replaces the task with matching id in place; collection order is preserved.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Task fields"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PUT]
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
// @Summary     Delete a task
// @Description Permanently removes a task. Requires confirm=true; deletion is irreversible.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id      path  string true  "Task ID"
// @Param       confirm query bool   false "Affirmative confirmation"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Confirmation required"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
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

// Import godoc
// @Summary     Import suggested tasks
// @Description Prepends one task per {title, priority} suggestion, stamped with the selected date.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body importReq true "Suggestions and selected date"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processImportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Import(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Import: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newImportResp(output))
}

// Stats godoc
// @Summary     Completion statistics
// @Description Totals over the full collection; percentage is 0 for an empty collection.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	stats, err := h.uc.Stats(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(stats))
}

// Calendar godoc
// @Summary     Month grid
// @Description Leading blanks for the weekday offset plus one cell per day, with task-presence markers across the whole collection.
// @Tags        Tasks
// @Produce     json
// @Param       year  query int true "Year"
// @Param       month query int true "Month (1-12)"
// @Success     200 {object} calendarResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/calendar [GET]
func (h *handler) Calendar(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processCalendarReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	grid, err := h.uc.Calendar(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Calendar: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCalendarResp(grid))
}
