package http

import (
	"github.com/gin-gonic/gin"
)

// processBookReq binds and validates the booking request body.
func (h *handler) processBookReq(c *gin.Context) (bookReq, error) {
	var req bookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
