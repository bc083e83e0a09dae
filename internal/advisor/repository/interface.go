package repository

import (
	"context"
	"time"

	"insurance-advisor/internal/model"
)

// AssessmentRecord is one completed needs-assessment, appended once per session.
type AssessmentRecord struct {
	SessionID string                  `json:"session_id"`
	UserID    string                  `json:"user_id,omitempty"`
	Answers   map[string]model.Answer `json:"answers"`
	CreatedAt time.Time               `json:"created_at"`
}

// AssessmentRepository is the append-only persistence boundary for
// completed questionnaires. No read/update/delete is required.
type AssessmentRepository interface {
	Append(ctx context.Context, record AssessmentRecord) error
}
