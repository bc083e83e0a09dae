package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"insurance-advisor/internal/advisor"
	"insurance-advisor/internal/model"
	"insurance-advisor/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Sends one user message and returns the advisor's reply plus the updated session state. Pass the returned session back on the next turn.
// @Tags        Advisor
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message and optional session state"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := model.Scope{UserID: c.GetHeader("X-User-ID")}

	output, err := h.uc.Converse(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Converse: %v", err)
		if errors.Is(err, advisor.ErrEmptyInput) {
			response.Error(c, err, nil)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}
