package scheduling

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"insurance-advisor/internal/model"
	"insurance-advisor/pkg/gcalendar"
)

// Book validates the request, records the appointment and pushes a
// calendar event on a best-effort basis.
func (s *implService) Book(ctx context.Context, sc model.Scope, input BookInput) (BookOutput, error) {
	date, err := s.resolveDate(input.Date)
	if err != nil {
		return BookOutput{}, err
	}

	if err := s.checkWindow(date); err != nil {
		return BookOutput{}, err
	}

	slot, err := normalizeSlot(input.TimeSlot)
	if err != nil {
		return BookOutput{}, err
	}

	phone, err := normalizePhone(input.Phone)
	if err != nil {
		return BookOutput{}, err
	}

	if err := validateEmail(input.Email); err != nil {
		return BookOutput{}, err
	}

	appointment := model.Appointment{
		ID:        uuid.NewString(),
		UserID:    sc.UserID,
		Date:      date,
		TimeSlot:  slot,
		Notes:     strings.TrimSpace(input.Notes),
		Phone:     phone,
		Email:     strings.TrimSpace(input.Email),
		CreatedAt: s.now(),
	}

	if s.calendar != nil {
		if link, err := s.createEvent(ctx, sc, appointment); err != nil {
			s.l.Warnf(ctx, "%s: calendar sync failed: %v", LogPrefixBook, err)
		} else {
			appointment.EventLink = link
		}
	}

	s.l.Infof(ctx, "%s: booked %s %s for user %s", LogPrefixBook, date.Format("2006-01-02"), slot, sc.UserID)

	return BookOutput{
		Appointment: appointment,
		Message:     fmt.Sprintf(ConfirmMessageFormat, date.Format("02/01/2006"), slot, phone),
	}, nil
}

// Slots returns every bookable half-hour slot between 09:00 and 17:30.
func (s *implService) Slots() []string {
	var slots []string
	for h := FirstSlotHour; h <= LastSlotHour; h++ {
		for m := 0; m < 60; m += SlotMinuteStep {
			if h == LastSlotHour && m > LastSlotMinute {
				break
			}
			slots = append(slots, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	return slots
}

// resolveDate accepts an absolute "2006-01-02" value or a relative
// phrase understood by the date parser.
func (s *implService) resolveDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrInvalidDate
	}

	if t, err := time.ParseInLocation("2006-01-02", raw, s.location); err == nil {
		return t, nil
	}

	t, err := s.parser.Parse(raw, s.now())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return t, nil
}

func (s *implService) checkWindow(date time.Time) error {
	now := s.now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
	latest := today.AddDate(0, 0, MaxDaysAhead)

	if date.Before(today) || date.After(latest) {
		return ErrDateOutOfRange
	}
	return nil
}

func normalizeSlot(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	t, err := time.Parse("15:04", raw)
	if err != nil {
		return "", ErrInvalidSlot
	}

	h, m := t.Hour(), t.Minute()
	if m%SlotMinuteStep != 0 {
		return "", ErrInvalidSlot
	}
	if h < FirstSlotHour || h > LastSlotHour {
		return "", ErrInvalidSlot
	}
	if h == LastSlotHour && m > LastSlotMinute {
		return "", ErrInvalidSlot
	}

	return fmt.Sprintf("%02d:%02d", h, m), nil
}

// normalizePhone strips separators and requires exactly 10 digits.
func normalizePhone(raw string) (string, error) {
	var digits strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case unicode.IsDigit(r):
			digits.WriteRune(r)
		case r == ' ', r == '-', r == '.':
			// separators are tolerated
		default:
			return "", ErrInvalidPhone
		}
	}
	if digits.Len() != 10 {
		return "", ErrInvalidPhone
	}
	return digits.String(), nil
}

func validateEmail(raw string) error {
	raw = strings.TrimSpace(raw)
	at := strings.Index(raw, "@")
	if at < 1 || at == len(raw)-1 {
		return ErrInvalidEmail
	}
	return nil
}

func (s *implService) createEvent(ctx context.Context, sc model.Scope, appt model.Appointment) (string, error) {
	slotTime, err := time.Parse("15:04", appt.TimeSlot)
	if err != nil {
		return "", err
	}

	start := time.Date(
		appt.Date.Year(), appt.Date.Month(), appt.Date.Day(),
		slotTime.Hour(), slotTime.Minute(), 0, 0, s.location,
	)

	description := fmt.Sprintf("Khách hàng: %s\nĐiện thoại: %s\nEmail: %s", sc.Username, appt.Phone, appt.Email)
	if appt.Notes != "" {
		description += "\nGhi chú: " + appt.Notes
	}

	event, err := s.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  s.calendarID,
		Summary:     fmt.Sprintf(EventSummaryFormat, sc.Username),
		Description: description,
		StartTime:   start,
		EndTime:     start.Add(SlotEventLength * time.Minute),
		Timezone:    s.location.String(),
	})
	if err != nil {
		return "", err
	}
	return event.HtmlLink, nil
}
