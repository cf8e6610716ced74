package http

import (
	"github.com/gin-gonic/gin"

	"day-to-day/internal/middleware"
	"day-to-day/pkg/response"
)

// Snapshot godoc
// @Summary     Current timer state
// @Description Returns the caller's countdown snapshot including progress
// @Description and the one-shot completion flag.
// @Tags        Timer
// @Produce     json
// @Success     200 {object} snapshotResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/timer [GET]
func (h *handler) Snapshot(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	snap, err := h.uc.Snapshot(ctx, sc)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newSnapshotResp(snap))
}

// Start godoc
// @Summary     Start or resume the countdown
// @Tags        Timer
// @Produce     json
// @Success     200 {object} snapshotResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/timer/start [POST]
func (h *handler) Start(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	snap, err := h.uc.Start(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Start: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newSnapshotResp(snap))
}

// Pause godoc
// @Summary     Pause the countdown, keeping the remaining time
// @Tags        Timer
// @Produce     json
// @Success     200 {object} snapshotResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/timer/pause [POST]
func (h *handler) Pause(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	snap, err := h.uc.Pause(ctx, sc)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newSnapshotResp(snap))
}

// Reset godoc
// @Summary     Reset the countdown to the full preset length
// @Tags        Timer
// @Produce     json
// @Success     200 {object} snapshotResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/timer/reset [POST]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	snap, err := h.uc.Reset(ctx, sc)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newSnapshotResp(snap))
}

// SetPreset godoc
// @Summary     Switch the countdown preset
// @Description Stops the countdown and sets both total and remaining time to
// @Description the preset length (focus 25m, short_break 5m, long_break 15m).
// @Tags        Timer
// @Accept      json
// @Produce     json
// @Param       body body presetReq true "Preset name"
// @Success     200 {object} snapshotResp
// @Failure     400 {object} response.Resp "Unknown preset"
// @Router      /api/v1/timer/preset [POST]
func (h *handler) SetPreset(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processPresetReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	snap, err := h.uc.SetPreset(ctx, sc, req.toPreset())
	if err != nil {
		h.l.Errorf(ctx, "uc.SetPreset: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newSnapshotResp(snap))
}
