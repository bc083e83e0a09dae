package scheduling

import "insurance-advisor/internal/model"

// BookInput carries a consultation request. Date accepts an absolute
// "2006-01-02" value or a relative phrase ("ngày mai", "next friday").
type BookInput struct {
	Date     string
	TimeSlot string
	Notes    string
	Phone    string
	Email    string
}

// BookOutput is the confirmed appointment plus a user-facing message.
type BookOutput struct {
	Appointment model.Appointment
	Message     string
}
