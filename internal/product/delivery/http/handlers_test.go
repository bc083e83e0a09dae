package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"insurance-advisor/internal/product"
	productHTTP "insurance-advisor/internal/product/delivery/http"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockProductUC struct {
	output product.AnswerOutput
	err    error
}

func (m *mockProductUC) Answer(ctx context.Context, input product.AnswerInput) (product.AnswerOutput, error) {
	return m.output, m.err
}

func newTestEngine(uc *mockProductUC) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := productHTTP.New(&mockLogger{}, uc)
	productHTTP.RegisterRoutes(engine.Group("/api/v1"), h)
	return engine
}

func postAsk(engine *gin.Engine, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/products/ask", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAsk(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockProductUC{
			output: product.AnswerOutput{Answer: "Phúc Bảo An bảo vệ trọn đời.", SourceCount: 3},
		}
		engine := newTestEngine(uc)

		w := postAsk(engine, `{"query": "Phúc Bảo An là gì?"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Data struct {
				Answer      string `json:"answer"`
				SourceCount int    `json:"source_count"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.Contains(resp.Data.Answer, "Phúc Bảo An") {
			t.Errorf("unexpected answer: %q", resp.Data.Answer)
		}
		if resp.Data.SourceCount != 3 {
			t.Errorf("unexpected source count: %d", resp.Data.SourceCount)
		}
	})

	t.Run("Missing Query", func(t *testing.T) {
		engine := newTestEngine(&mockProductUC{})

		w := postAsk(engine, `{}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Empty Query Maps To 400", func(t *testing.T) {
		engine := newTestEngine(&mockProductUC{err: product.ErrEmptyQuery})

		w := postAsk(engine, `{"query": "   "}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}
