package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"insurance-advisor/internal/product"
	"insurance-advisor/internal/product/repository"
	"insurance-advisor/pkg/llmprovider"
)

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

type mockPassageRepo struct {
	passages []repository.Passage
	err      error
}

func (m *mockPassageRepo) SearchPassages(ctx context.Context, opt repository.SearchPassagesOptions) ([]repository.Passage, error) {
	return m.passages, m.err
}

// capturingProvider records the last request it saw.
type capturingProvider struct {
	text    string
	err     error
	lastReq *llmprovider.Request
}

func (p *capturingProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	p.lastReq = req
	if p.err != nil {
		return nil, p.err
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  "assistant",
			Parts: []llmprovider.Part{{Text: p.text}},
		},
		ProviderName: "capture",
		ModelName:    "capture-model",
		Usage:        &llmprovider.Usage{},
	}, nil
}

func (p *capturingProvider) Name() string  { return "capture" }
func (p *capturingProvider) Model() string { return "capture-model" }

func newTestManager(p llmprovider.Provider) *llmprovider.Manager {
	return llmprovider.NewManager(
		[]llmprovider.Provider{p},
		&llmprovider.Config{RetryAttempts: 1},
		&mockLogger{},
	)
}

func TestAnswer(t *testing.T) {
	t.Run("Empty Query", func(t *testing.T) {
		uc := New(&mockLogger{}, newTestManager(&capturingProvider{}), &mockPassageRepo{})

		_, err := uc.Answer(context.Background(), product.AnswerInput{Query: "  "})
		if !errors.Is(err, product.ErrEmptyQuery) {
			t.Errorf("expected ErrEmptyQuery, got %v", err)
		}
	})

	t.Run("Search Error", func(t *testing.T) {
		repo := &mockPassageRepo{err: errors.New("qdrant down")}
		uc := New(&mockLogger{}, newTestManager(&capturingProvider{}), repo)

		_, err := uc.Answer(context.Background(), product.AnswerInput{Query: "bảo hiểm trọn đời"})
		if err == nil {
			t.Fatal("expected error when search fails")
		}
	})

	t.Run("Empty Index", func(t *testing.T) {
		uc := New(&mockLogger{}, newTestManager(&capturingProvider{}), &mockPassageRepo{})

		out, err := uc.Answer(context.Background(), product.AnswerInput{Query: "bảo hiểm trọn đời"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Answer != NoInformationAnswer {
			t.Errorf("expected no-information answer, got %q", out.Answer)
		}
		if out.SourceCount != 0 {
			t.Errorf("expected 0 sources, got %d", out.SourceCount)
		}
	})

	t.Run("Success With Truncated Context", func(t *testing.T) {
		longText := strings.Repeat("a", 2000)
		repo := &mockPassageRepo{passages: []repository.Passage{
			{ID: "1", Text: longText, Source: "phuc-bao-an.txt", Score: 0.9},
		}}
		provider := &capturingProvider{text: "Phúc Bảo An là bảo hiểm trọn đời."}
		uc := New(&mockLogger{}, newTestManager(provider), repo)

		out, err := uc.Answer(context.Background(), product.AnswerInput{Query: "whole life plan"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Answer != "Phúc Bảo An là bảo hiểm trọn đời." {
			t.Errorf("unexpected answer: %q", out.Answer)
		}
		if out.SourceCount != 1 || out.TopScore != 0.9 {
			t.Errorf("unexpected provenance: count=%d score=%f", out.SourceCount, out.TopScore)
		}

		prompt := provider.lastReq.Messages[0].Parts[0].Text
		if !strings.Contains(prompt, "[đã cắt bớt]") {
			t.Error("expected long passage to be truncated in prompt")
		}
		if strings.Contains(prompt, longText) {
			t.Error("full passage text leaked into prompt")
		}
	})

	t.Run("LLM Failure", func(t *testing.T) {
		repo := &mockPassageRepo{passages: []repository.Passage{
			{ID: "1", Text: "some text", Source: "a.txt", Score: 0.5},
		}}
		uc := New(&mockLogger{}, newTestManager(&capturingProvider{err: errors.New("quota")}), repo)

		_, err := uc.Answer(context.Background(), product.AnswerInput{Query: "plans"})
		if err == nil {
			t.Fatal("expected error when LLM fails")
		}
	})
}
