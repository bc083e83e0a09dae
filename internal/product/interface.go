package product

import "context"

// UseCase defines the business logic interface for the product domain.
type UseCase interface {
	// Answer performs retrieval-augmented question answering over the
	// product knowledge base.
	Answer(ctx context.Context, input AnswerInput) (AnswerOutput, error)
}
