package advisor

import "errors"

// Domain-specific errors for the advisor package.
var (
	ErrEmptyInput       = errors.New("input text is empty")
	ErrNoQuestions      = errors.New("questionnaire has no questions")
	ErrInvalidQuestion  = errors.New("question spec is invalid")
	ErrSessionCorrupted = errors.New("session state is corrupted")
)
