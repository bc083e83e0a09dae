package http

import (
	"time"

	"insurance-advisor/internal/scheduling"
)

// --- Request DTOs ---

type bookReq struct {
	Date     string `json:"date"      binding:"required"`
	TimeSlot string `json:"time_slot" binding:"required"`
	Phone    string `json:"phone"     binding:"required"`
	Email    string `json:"email"     binding:"required"`
	Notes    string `json:"notes"     binding:"max=1000"`
}

func (r bookReq) validate() error { return nil }

func (r bookReq) toInput() scheduling.BookInput {
	return scheduling.BookInput{
		Date:     r.Date,
		TimeSlot: r.TimeSlot,
		Phone:    r.Phone,
		Email:    r.Email,
		Notes:    r.Notes,
	}
}

// --- Response DTOs ---

type appointmentResp struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	TimeSlot  string    `json:"time_slot"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Notes     string    `json:"notes,omitempty"`
	EventLink string    `json:"event_link,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type bookResp struct {
	Appointment appointmentResp `json:"appointment"`
	Message     string          `json:"message"`
}

func (h *handler) newBookResp(out scheduling.BookOutput) bookResp {
	return bookResp{
		Appointment: appointmentResp{
			ID:        out.Appointment.ID,
			Date:      out.Appointment.Date.Format("2006-01-02"),
			TimeSlot:  out.Appointment.TimeSlot,
			Phone:     out.Appointment.Phone,
			Email:     out.Appointment.Email,
			Notes:     out.Appointment.Notes,
			EventLink: out.Appointment.EventLink,
			CreatedAt: out.Appointment.CreatedAt,
		},
		Message: out.Message,
	}
}

type slotsResp struct {
	Slots []string `json:"slots"`
}
