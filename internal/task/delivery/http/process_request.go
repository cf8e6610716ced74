package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingID = errors.New("id is required")

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}

// processDeleteReq reads the URI param and the confirmation query flag.
func (h *handler) processDeleteReq(c *gin.Context) (deleteReq, error) {
	req := deleteReq{
		ID:      c.Param("id"),
		Confirm: c.Query("confirm") == "true",
	}
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}

// processImportReq binds the import request body.
func (h *handler) processImportReq(c *gin.Context) (importReq, error) {
	var req importReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCalendarReq binds the calendar query parameters.
func (h *handler) processCalendarReq(c *gin.Context) (calendarReq, error) {
	var req calendarReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
