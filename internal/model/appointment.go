package model

import "time"

// Appointment is a booked consultation slot.
type Appointment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      time.Time `json:"date"`
	TimeSlot  string    `json:"time_slot"` // "HH:MM", half-hour steps
	Notes     string    `json:"notes,omitempty"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	EventLink string    `json:"event_link,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
