package scheduling

import (
	"context"

	"insurance-advisor/internal/model"
	"insurance-advisor/pkg/gcalendar"
)

// Service books consultation appointments with a human advisor.
type Service interface {
	// Book validates the requested slot and records the appointment.
	// Calendar sync is best effort: a booking succeeds even when the
	// calendar backend is unreachable.
	Book(ctx context.Context, sc model.Scope, input BookInput) (BookOutput, error)

	// Slots returns the bookable half-hour slots for a day.
	Slots() []string
}

// Calendar is the subset of the calendar client the service needs.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

var _ Calendar = (*gcalendar.Client)(nil)
