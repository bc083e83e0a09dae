package scheduling

import (
	"time"

	"insurance-advisor/pkg/datemath"
	"insurance-advisor/pkg/log"
)

type implService struct {
	l          log.Logger
	parser     *datemath.Parser
	calendar   Calendar
	calendarID string
	location   *time.Location
	now        func() time.Time
}

var _ Service = (*implService)(nil)

// New creates the scheduling service. calendar may be nil when no
// calendar backend is configured; bookings then skip event creation.
func New(l log.Logger, parser *datemath.Parser, calendar Calendar, calendarID, timezone string) (*implService, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &implService{
		l:          l,
		parser:     parser,
		calendar:   calendar,
		calendarID: calendarID,
		location:   loc,
		now:        time.Now,
	}, nil
}
