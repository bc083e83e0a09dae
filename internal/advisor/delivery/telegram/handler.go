package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"insurance-advisor/internal/advisor"
	"insurance-advisor/internal/model"
	"insurance-advisor/internal/scheduling"
	pkgLog "insurance-advisor/pkg/log"
	pkgResponse "insurance-advisor/pkg/response"
	pkgTelegram "insurance-advisor/pkg/telegram"
)

type handler struct {
	l             pkgLog.Logger
	uc            advisor.UseCase
	schedulingSvc scheduling.Service
	bot           *pkgTelegram.Bot
	sessions      *sessionStore
}

const (
	welcomeText = "👋 Chào mừng đến với *Tư vấn Bảo hiểm Nhân thọ*!\n\nBạn có thể:\n• 💬 Hỏi về các gói bảo hiểm\n• 📋 Trả lời vài câu hỏi để nhận đề xuất phù hợp\n• 📅 Đặt lịch tư vấn với chuyên viên\n\n_Hãy bắt đầu bằng cách cho tôi biết bạn quan tâm điều gì._"

	helpText = "*Cách sử dụng:*\n\nNhắn tin tự nhiên, ví dụ:\n`Tôi muốn mua bảo hiểm cho con`\n\nCác lệnh:\n/restart - bắt đầu lại cuộc trò chuyện\n/datlich - đặt lịch tư vấn, ví dụ:\n`/datlich 2025-07-15 14:30 0912345678 ban@example.com`"

	restartText = "Đã bắt đầu lại. Bạn muốn tìm hiểu điều gì về bảo hiểm?"

	rateLimitedText = "Bạn đang gửi tin nhắn quá nhanh. Vui lòng chờ một chút rồi thử lại."

	scheduleInviteText = "\n\n📅 Nếu bạn muốn trao đổi trực tiếp với chuyên viên, hãy đặt lịch bằng lệnh /datlich, ví dụ:\n/datlich 2025-07-15 14:30 0912345678 ban@example.com"

	bookingUsageText = "Cú pháp: /datlich <ngày> <giờ> <số điện thoại> <email> [ghi chú]\nVí dụ: /datlich 2025-07-15 14:30 0912345678 ban@example.com"

	processingFailedText = "Có lỗi xảy ra khi xử lý yêu cầu của bạn. Vui lòng thử lại."
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine: Telegram expects an answer within a few seconds,
// while an LLM round trip can take longer.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	go func() {
		// Detach from the request context, which is cancelled after the response
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, processingFailedText)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	switch {
	case msg.Text == "/start":
		return h.bot.SendMessageWithMode(msg.Chat.ID, welcomeText, "Markdown")
	case msg.Text == "/help":
		return h.bot.SendMessageWithMode(msg.Chat.ID, helpText, "Markdown")
	case msg.Text == "/restart":
		h.sessions.reset(msg.Chat.ID)
		return h.bot.SendMessage(msg.Chat.ID, restartText)
	case strings.HasPrefix(msg.Text, "/datlich"):
		return h.handleBooking(ctx, msg)
	}

	if !h.sessions.allow(msg.Chat.ID) {
		return h.bot.SendMessage(msg.Chat.ID, rateLimitedText)
	}

	sc := scopeFor(msg)

	state := h.sessions.state(msg.Chat.ID)
	state.mu.Lock()
	defer state.mu.Unlock()

	output, err := h.uc.Converse(ctx, sc, advisor.ConverseInput{
		Session: state.session,
		Text:    msg.Text,
	})
	if err != nil {
		return err
	}
	state.session = output.Session

	return h.bot.SendMessage(msg.Chat.ID, renderReply(output))
}

// handleBooking parses "/datlich <ngày> <giờ> <sđt> <email> [ghi chú]".
func (h *handler) handleBooking(ctx context.Context, msg *pkgTelegram.Message) error {
	fields := strings.Fields(strings.TrimPrefix(msg.Text, "/datlich"))
	if len(fields) < 4 {
		return h.bot.SendMessage(msg.Chat.ID, bookingUsageText)
	}

	input := scheduling.BookInput{
		Date:     fields[0],
		TimeSlot: fields[1],
		Phone:    fields[2],
		Email:    fields[3],
		Notes:    strings.Join(fields[4:], " "),
	}

	output, err := h.schedulingSvc.Book(ctx, scopeFor(msg), input)
	if err != nil {
		return h.bot.SendMessage(msg.Chat.ID, fmt.Sprintf("Không thể đặt lịch: %v\n\n%s", err, bookingUsageText))
	}

	return h.bot.SendMessage(msg.Chat.ID, output.Message)
}

func scopeFor(msg *pkgTelegram.Message) model.Scope {
	sc := model.Scope{UserID: fmt.Sprintf("telegram_%d", msg.Chat.ID)}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
		sc.Username = msg.From.Username
	}
	return sc
}

// renderReply appends the questionnaire progress and, when the profile
// is complete, the scheduling invitation.
func renderReply(output advisor.ConverseOutput) string {
	reply := output.Reply
	if p := output.Hints.Progress; p != nil {
		reply += fmt.Sprintf("\n\n(câu %d/%d)", p.Current, p.Total)
	}
	if output.Hints.ShowScheduleForm {
		reply += scheduleInviteText
	}
	return reply
}
