package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"weather-joke-assistant/pkg/response"
)

// Chat godoc
// @Summary     Ask the assistant
// @Description Classifies the question as weather or joke and returns the answer.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body     chatReq true "Question"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.l.Warnf(ctx, "chat.delivery.http.Chat: invalid request: %v", err)
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Answer(ctx, req.toInput())
	if err != nil {
		if isClientError(err) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.Answer: %v", err)
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, newChatResp(output))
}
