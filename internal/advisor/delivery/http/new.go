package http

import (
	"github.com/gin-gonic/gin"

	"insurance-advisor/internal/advisor"
	"insurance-advisor/pkg/log"
)

// Handler is the public interface for the advisor HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc advisor.UseCase
}

// New creates a new HTTP handler for the advisor domain.
func New(l log.Logger, uc advisor.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
