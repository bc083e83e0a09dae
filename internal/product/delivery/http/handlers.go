package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"insurance-advisor/internal/product"
	"insurance-advisor/pkg/response"
)

type askReq struct {
	Query string `json:"query" binding:"required,min=1,max=2000"`
}

type askResp struct {
	Answer      string  `json:"answer"`
	SourceCount int     `json:"source_count"`
	TopScore    float64 `json:"top_score,omitempty"`
}

// Ask godoc
// @Summary     Ask about insurance products
// @Description Answers a product question from the knowledge base.
// @Tags        Product
// @Accept      json
// @Produce     json
// @Param       body body askReq true "Question"
// @Success     200  {object} askResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/products/ask [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Answer(ctx, product.AnswerInput{Query: req.Query})
	if err != nil {
		h.l.Errorf(ctx, "uc.Answer: %v", err)
		if errors.Is(err, product.ErrEmptyQuery) {
			response.Error(c, err, nil)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, askResp{
		Answer:      output.Answer,
		SourceCount: output.SourceCount,
		TopScore:    output.TopScore,
	})
}
