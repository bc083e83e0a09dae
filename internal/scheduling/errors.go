package scheduling

import "errors"

var (
	ErrInvalidDate    = errors.New("date could not be understood")
	ErrDateOutOfRange = errors.New("date must be within the next 30 days")
	ErrInvalidSlot    = errors.New("time slot must be a half-hour step between 09:00 and 17:30")
	ErrInvalidPhone   = errors.New("phone number must have 10 digits")
	ErrInvalidEmail   = errors.New("email address is not valid")
)
