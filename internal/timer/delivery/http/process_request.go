package http

import "github.com/gin-gonic/gin"

// processPresetReq binds the preset switch request body.
func (h *handler) processPresetReq(c *gin.Context) (presetReq, error) {
	var req presetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
