package advisor

import (
	"context"

	"insurance-advisor/internal/model"
)

// UseCase defines the business logic interface for the advisor domain.
type UseCase interface {
	// Converse processes one user turn: resumes the needs assessment when one
	// is in progress, otherwise classifies the message and dispatches it.
	// The session is passed in and returned by value; the caller owns it.
	Converse(ctx context.Context, sc model.Scope, input ConverseInput) (ConverseOutput, error)
}
