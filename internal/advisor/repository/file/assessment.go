package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"insurance-advisor/internal/advisor/repository"
	pkgLog "insurance-advisor/pkg/log"
)

type implRepository struct {
	path string
	mu   sync.Mutex
	l    pkgLog.Logger
}

// New creates an append-only JSONL assessment log at the given path.
func New(path string, l pkgLog.Logger) (repository.AssessmentRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("assessment log path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create assessment log dir: %w", err)
		}
	}
	return &implRepository{path: path, l: l}, nil
}

// Append writes one JSON record per line. The file is opened per call so a
// rotated or deleted log never wedges the process.
func (r *implRepository) Append(ctx context.Context, record repository.AssessmentRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal assessment record: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open assessment log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to append assessment record: %w", err)
	}

	r.l.Infof(ctx, "assessment repository: appended record for session %s", record.SessionID)
	return nil
}
