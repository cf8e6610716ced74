package http

import (
	"github.com/gin-gonic/gin"

	"day-to-day/internal/middleware"
	"day-to-day/pkg/response"
)

// Login godoc
// @Summary     Sign in with email and password
// @Description Simulated credential exchange. Always succeeds for any password;
// @Description the display name is derived from the email local part.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// LoginGoogle godoc
// @Summary     Sign in with Google
// @Description Simulated Google sign-in returning a fixed demo profile.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} sessionResp
// @Router      /api/v1/auth/google [POST]
func (h *handler) LoginGoogle(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.LoginGoogle(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.LoginGoogle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// Me godoc
// @Summary     Current identity
// @Description Restores the caller identity from the session mirror without
// @Description re-authenticating.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} userResp
// @Failure     401 {object} response.Resp "Session expired or logged out"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	user, err := h.uc.Me(ctx, sc)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserResp(user))
}

// Logout godoc
// @Summary     Log out
// @Description Drops the session mirror entry. Stored tasks and notes are untouched.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/session [DELETE]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	if err := h.uc.Logout(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
