package repository

import "context"

// PassageRepository handles vector retrieval over the product knowledge base.
type PassageRepository interface {
	SearchPassages(ctx context.Context, opt SearchPassagesOptions) ([]Passage, error)
}

// SearchPassagesOptions defines retrieval parameters.
type SearchPassagesOptions struct {
	Query string // Natural language query
	Limit int    // Top-K results
}

// Passage is one retrieved knowledge-base chunk.
type Passage struct {
	ID     string
	Text   string
	Source string // originating document, e.g. brochure file name
	Score  float64
}
