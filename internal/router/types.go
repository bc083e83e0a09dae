package router

import "insurance-advisor/internal/model"

// RouterOutput is the structured response from the Semantic Router
type RouterOutput struct {
	Intent     model.Intent `json:"intent"`
	Confidence int          `json:"confidence"` // 0-100
	Reasoning  string       `json:"reasoning"`  // Optional: Why this intent was chosen
}
