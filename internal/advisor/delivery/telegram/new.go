package telegram

import (
	"time"

	"github.com/gin-gonic/gin"

	"insurance-advisor/internal/advisor"
	"insurance-advisor/internal/scheduling"
	pkgLog "insurance-advisor/pkg/log"
	pkgTelegram "insurance-advisor/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(
	l pkgLog.Logger,
	uc advisor.UseCase,
	schedulingSvc scheduling.Service,
	bot *pkgTelegram.Bot,
) Handler {
	return &handler{
		l:             l,
		uc:            uc,
		schedulingSvc: schedulingSvc,
		bot:           bot,
		sessions:      newSessionStore(SessionTTL, RateLimitPerMinute),
	}
}

// SessionTTL bounds how long an idle chat keeps its questionnaire state.
const SessionTTL = 30 * time.Minute

// RateLimitPerMinute caps messages accepted per chat.
const RateLimitPerMinute = 20
