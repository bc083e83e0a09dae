package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"insurance-advisor/internal/advisor"
	advisorHTTP "insurance-advisor/internal/advisor/delivery/http"
	"insurance-advisor/internal/model"
	pkgResponse "insurance-advisor/pkg/response"
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

type mockAdvisorUC struct {
	output    advisor.ConverseOutput
	err       error
	lastInput advisor.ConverseInput
}

func (m *mockAdvisorUC) Converse(ctx context.Context, sc model.Scope, input advisor.ConverseInput) (advisor.ConverseOutput, error) {
	m.lastInput = input
	return m.output, m.err
}

func newTestEngine(uc *mockAdvisorUC) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := advisorHTTP.New(&mockLogger{}, uc)
	advisorHTTP.RegisterRoutes(engine.Group("/api/v1"), h)
	return engine
}

func postChat(engine *gin.Engine, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestChat_Success(t *testing.T) {
	session := model.NewSession()
	session.Cursor = 3

	uc := &mockAdvisorUC{
		output: advisor.ConverseOutput{
			Reply:   "Bạn có con chưa?",
			Session: session,
			Hints:   model.DisplayHints{Progress: &model.Progress{Current: 4, Total: 7}},
		},
	}
	engine := newTestEngine(uc)

	w := postChat(engine, `{"message": "Married"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp pkgResponse.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ErrorCode != 0 {
		t.Errorf("unexpected error code: %d", resp.ErrorCode)
	}

	data, _ := json.Marshal(resp.Data)
	var payload struct {
		Reply   string        `json:"reply"`
		Session model.Session `json:"session"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.Reply != "Bạn có con chưa?" {
		t.Errorf("unexpected reply: %q", payload.Reply)
	}
	if payload.Session.Cursor != 3 {
		t.Errorf("expected session state echoed, cursor=%d", payload.Session.Cursor)
	}
}

func TestChat_ThreadsSessionFromRequest(t *testing.T) {
	uc := &mockAdvisorUC{output: advisor.ConverseOutput{Reply: "ok"}}
	engine := newTestEngine(uc)

	session := model.NewSession()
	session.Cursor = 2
	sessionJSON, _ := json.Marshal(session)

	w := postChat(engine, `{"message": "34", "session": `+string(sessionJSON)+`}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.lastInput.Session.ID != session.ID || uc.lastInput.Session.Cursor != 2 {
		t.Errorf("session not threaded through: %+v", uc.lastInput.Session)
	}
}

func TestChat_MissingMessage(t *testing.T) {
	uc := &mockAdvisorUC{}
	engine := newTestEngine(uc)

	w := postChat(engine, `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestChat_InternalFailure(t *testing.T) {
	uc := &mockAdvisorUC{err: errors.New("downstream broke")}
	engine := newTestEngine(uc)

	w := postChat(engine, `{"message": "hi"}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}
