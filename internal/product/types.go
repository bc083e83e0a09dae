package product

// AnswerInput is a product question from the user.
type AnswerInput struct {
	Query string `json:"query"`
}

// AnswerOutput is the generated answer plus retrieval provenance.
type AnswerOutput struct {
	Answer      string  `json:"answer"`
	SourceCount int     `json:"source_count"`
	TopScore    float64 `json:"top_score,omitempty"`
}
