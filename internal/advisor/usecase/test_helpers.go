package usecase

import (
	"context"
	"sync"

	"insurance-advisor/internal/advisor/repository"
	"insurance-advisor/internal/model"
	"insurance-advisor/internal/router"
	"insurance-advisor/internal/product"
	"insurance-advisor/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// countingProvider counts generation calls and returns a fixed response.
type countingProvider struct {
	mu    sync.Mutex
	text  string
	err   error
	calls int
}

func (p *countingProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	if p.err != nil {
		return nil, p.err
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  "assistant",
			Parts: []llmprovider.Part{{Text: p.text}},
		},
		ProviderName: "counting",
		ModelName:    "counting-model",
		Usage:        &llmprovider.Usage{},
	}, nil
}

func (p *countingProvider) Name() string  { return "counting" }
func (p *countingProvider) Model() string { return "counting-model" }

func (p *countingProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// newManager wraps a provider in a single-provider manager without retries.
func newManager(p llmprovider.Provider) *llmprovider.Manager {
	return llmprovider.NewManager(
		[]llmprovider.Provider{p},
		&llmprovider.Config{FallbackEnabled: false, RetryAttempts: 1},
		&mockLogger{},
	)
}

// stubRouter returns a fixed classification for every message.
type stubRouter struct {
	intent model.Intent
}

func (s *stubRouter) Classify(ctx context.Context, message string) router.RouterOutput {
	return router.RouterOutput{Intent: s.intent, Confidence: 90}
}

// mockProductUC records queries and returns a fixed answer.
type mockProductUC struct {
	answer string
	err    error
	calls  int
	lastQ  string
}

func (m *mockProductUC) Answer(ctx context.Context, input product.AnswerInput) (product.AnswerOutput, error) {
	m.calls++
	m.lastQ = input.Query
	if m.err != nil {
		return product.AnswerOutput{}, m.err
	}
	return product.AnswerOutput{Answer: m.answer, SourceCount: 1}, nil
}

// mockAssessmentRepo counts appends and optionally fails.
type mockAssessmentRepo struct {
	mu      sync.Mutex
	err     error
	records []repository.AssessmentRecord
}

func (m *mockAssessmentRepo) Append(ctx context.Context, record repository.AssessmentRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, record)
	return nil
}

func (m *mockAssessmentRepo) appendCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}
