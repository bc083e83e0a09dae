package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"insurance-advisor/internal/advisor"
	"insurance-advisor/internal/advisor/delivery/telegram"
	"insurance-advisor/internal/model"
	"insurance-advisor/internal/scheduling"
	pkgTelegram "insurance-advisor/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

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
	mu       sync.Mutex
	output   advisor.ConverseOutput
	err      error
	sessions []model.Session
}

func (m *mockAdvisorUC) Converse(ctx context.Context, sc model.Scope, input advisor.ConverseInput) (advisor.ConverseOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = append(m.sessions, input.Session)
	if m.err != nil {
		return advisor.ConverseOutput{}, m.err
	}
	out := m.output
	out.Session = input.Session
	return out, nil
}

type mockScheduling struct {
	mu     sync.Mutex
	output scheduling.BookOutput
	err    error
	inputs []scheduling.BookInput
}

func (m *mockScheduling) Book(ctx context.Context, sc model.Scope, input scheduling.BookInput) (scheduling.BookOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs = append(m.inputs, input)
	return m.output, m.err
}

func (m *mockScheduling) Slots() []string { return nil }

// ── Test Helpers ───────────────────────────────────────────────────────────

type testEnv struct {
	engine           *gin.Engine
	uc               *mockAdvisorUC
	sched            *mockScheduling
	capturedMessages *[]string
	msgMu            *sync.Mutex
}

func newTestEnv(t *testing.T) (*testEnv, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	capturedMessages := &[]string{}
	msgMu := &sync.Mutex{}

	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/sendMessage") {
			var payload map[string]interface{}
			json.NewDecoder(r.Body).Decode(&payload)
			if text, ok := payload["text"].(string); ok {
				msgMu.Lock()
				*capturedMessages = append(*capturedMessages, text)
				msgMu.Unlock()
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	}))

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	uc := &mockAdvisorUC{output: advisor.ConverseOutput{Reply: "Xin chào!"}}
	sched := &mockScheduling{output: scheduling.BookOutput{Message: "Đã đặt lịch."}}

	engine := gin.New()
	h := telegram.New(&mockLogger{}, uc, sched, bot)
	engine.POST("/webhook/telegram", h.HandleWebhook)

	return &testEnv{
		engine:           engine,
		uc:               uc,
		sched:            sched,
		capturedMessages: capturedMessages,
		msgMu:            msgMu,
	}, tgServer
}

func sendWebhook(engine *gin.Engine, text string) *httptest.ResponseRecorder {
	update := pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: 123},
			From:      &pkgTelegram.User{ID: 456, Username: "lan"},
			Text:      text,
		},
	}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func (env *testEnv) waitForMessages(atLeast int, timeout time.Duration) []string {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		env.msgMu.Lock()
		n := len(*env.capturedMessages)
		env.msgMu.Unlock()
		if n >= atLeast {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}

	env.msgMu.Lock()
	defer env.msgMu.Unlock()
	return append([]string(nil), *env.capturedMessages...)
}

func assertContains(t *testing.T, msgs []string, substr string) {
	t.Helper()
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return
		}
	}
	t.Errorf("expected a message containing %q, got: %v", substr, msgs)
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleWebhook_IgnoresNonMessageUpdates(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	body, _ := json.Marshal(pkgTelegram.Update{UpdateID: 7})
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestHandleWebhook_AcksImmediately(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	w := sendWebhook(env.engine, "tôi muốn mua bảo hiểm")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	msgs := env.waitForMessages(1, 2*time.Second)
	assertContains(t, msgs, "Xin chào!")
}

func TestHandleWebhook_StartCommand(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	sendWebhook(env.engine, "/start")
	msgs := env.waitForMessages(1, 2*time.Second)
	assertContains(t, msgs, "Chào mừng")

	env.uc.mu.Lock()
	calls := len(env.uc.sessions)
	env.uc.mu.Unlock()
	if calls != 0 {
		t.Errorf("commands must not reach the conversation pipeline, got %d calls", calls)
	}
}

func TestHandleWebhook_SessionPersistsAcrossTurns(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	sendWebhook(env.engine, "xin chào")
	env.waitForMessages(1, 2*time.Second)
	sendWebhook(env.engine, "34")
	env.waitForMessages(2, 2*time.Second)

	env.uc.mu.Lock()
	defer env.uc.mu.Unlock()
	if len(env.uc.sessions) != 2 {
		t.Fatalf("expected 2 conversation turns, got %d", len(env.uc.sessions))
	}
	if env.uc.sessions[0].ID != env.uc.sessions[1].ID {
		t.Error("expected the same session across turns of one chat")
	}
}

func TestHandleWebhook_RestartResetsSession(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	sendWebhook(env.engine, "xin chào")
	env.waitForMessages(1, 2*time.Second)
	sendWebhook(env.engine, "/restart")
	env.waitForMessages(2, 2*time.Second)
	sendWebhook(env.engine, "chào lại")
	env.waitForMessages(3, 2*time.Second)

	env.uc.mu.Lock()
	defer env.uc.mu.Unlock()
	if len(env.uc.sessions) != 2 {
		t.Fatalf("expected 2 conversation turns, got %d", len(env.uc.sessions))
	}
	if env.uc.sessions[0].ID == env.uc.sessions[1].ID {
		t.Error("expected a fresh session after /restart")
	}
}

func TestHandleWebhook_ProgressAndScheduleHints(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.uc.output = advisor.ConverseOutput{
		Reply: "Đây là đề xuất của bạn.",
		Hints: model.DisplayHints{ShowScheduleForm: true},
	}

	sendWebhook(env.engine, "đề xuất cho tôi")
	msgs := env.waitForMessages(1, 2*time.Second)
	assertContains(t, msgs, "/datlich")
}

func TestHandleWebhook_ProgressSuffix(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.uc.output = advisor.ConverseOutput{
		Reply: "Bạn bao nhiêu tuổi?",
		Hints: model.DisplayHints{Progress: &model.Progress{Current: 1, Total: 7}},
	}

	sendWebhook(env.engine, "tôi muốn mua")
	msgs := env.waitForMessages(1, 2*time.Second)
	assertContains(t, msgs, "(câu 1/7)")
}

func TestHandleWebhook_Booking(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	t.Run("Valid", func(t *testing.T) {
		sendWebhook(env.engine, "/datlich 2025-07-15 14:30 0912345678 lan@example.com tư vấn gói giáo dục")
		msgs := env.waitForMessages(1, 2*time.Second)
		assertContains(t, msgs, "Đã đặt lịch.")

		env.sched.mu.Lock()
		defer env.sched.mu.Unlock()
		if len(env.sched.inputs) != 1 {
			t.Fatalf("expected 1 booking, got %d", len(env.sched.inputs))
		}
		got := env.sched.inputs[0]
		if got.Date != "2025-07-15" || got.TimeSlot != "14:30" || got.Notes != "tư vấn gói giáo dục" {
			t.Errorf("unexpected booking input: %+v", got)
		}
	})

	t.Run("Missing Fields", func(t *testing.T) {
		sendWebhook(env.engine, "/datlich 2025-07-15")
		msgs := env.waitForMessages(2, 2*time.Second)
		assertContains(t, msgs, "Cú pháp")
	})
}

func TestHandleWebhook_ConverseFailureNotifiesUser(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.uc.err = advisor.ErrEmptyInput

	sendWebhook(env.engine, "xin chào")
	msgs := env.waitForMessages(1, 2*time.Second)
	assertContains(t, msgs, "Có lỗi xảy ra")
}
