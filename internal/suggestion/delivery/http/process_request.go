package http

import "github.com/gin-gonic/gin"

// processSuggestTasksReq binds the task suggestion request body.
func (h *handler) processSuggestTasksReq(c *gin.Context) (suggestTasksReq, error) {
	var req suggestTasksReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processFindMusicReq binds the music discovery request body.
func (h *handler) processFindMusicReq(c *gin.Context) (findMusicReq, error) {
	var req findMusicReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
