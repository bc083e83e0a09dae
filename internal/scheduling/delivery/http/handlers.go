package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"insurance-advisor/internal/model"
	"insurance-advisor/internal/scheduling"
	"insurance-advisor/pkg/response"
)

// Book godoc
// @Summary     Book a consultation
// @Description Books a consultation slot with an advisor. Date accepts "2006-01-02" or a relative phrase like "ngày mai".
// @Tags        Scheduling
// @Accept      json
// @Produce     json
// @Param       body body bookReq true "Booking details"
// @Success     200  {object} bookResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/appointments [POST]
func (h *handler) Book(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBookReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := model.Scope{UserID: c.GetHeader("X-User-ID")}

	output, err := h.svc.Book(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "svc.Book: %v", err)
		if isValidationError(err) {
			response.Error(c, err, nil)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newBookResp(output))
}

// Slots godoc
// @Summary     List bookable slots
// @Description Returns the half-hour consultation slots available per day.
// @Tags        Scheduling
// @Accept      json
// @Produce     json
// @Success     200 {object} slotsResp
// @Router      /api/v1/appointments/slots [GET]
func (h *handler) Slots(c *gin.Context) {
	response.OK(c, slotsResp{Slots: h.svc.Slots()})
}

func isValidationError(err error) bool {
	return errors.Is(err, scheduling.ErrInvalidDate) ||
		errors.Is(err, scheduling.ErrDateOutOfRange) ||
		errors.Is(err, scheduling.ErrInvalidSlot) ||
		errors.Is(err, scheduling.ErrInvalidPhone) ||
		errors.Is(err, scheduling.ErrInvalidEmail)
}
