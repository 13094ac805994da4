package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"weather-joke-assistant/internal/chat"
)

var errInvalidBody = errors.New("request body must be JSON with a non-empty \"question\"")

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		if req.Question == "" {
			return req, errInvalidBody
		}
		return req, err
	}
	return req, req.validate()
}

// isClientError reports whether err maps to 400.
func isClientError(err error) bool {
	return errors.Is(err, chat.ErrEmptyQuestion) || errors.Is(err, errInvalidBody)
}
