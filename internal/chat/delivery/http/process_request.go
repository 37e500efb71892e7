package http

import (
	"github.com/gin-gonic/gin"
)

// processChatReq binds and validates the chat request body.
// An unreadable body is treated as an empty one.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return chatReq{}, errInvalidQuery
	}
	return req, req.validate()
}
