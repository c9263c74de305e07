package http

import (
	"github.com/gin-gonic/gin"

	"parts-support-chat/pkg/response"
)

// Chat godoc
// @Summary     Ask the parts support assistant
// @Description Routes one message through scope guarding, deterministic resolvers, and the model-assisted path. Always answers with a response envelope.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User message, optional thread id and mode"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input := req.toInput()
	env, err := h.uc.Process(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newChatResp(input.ThreadID, env))
}
