package http

import (
	"github.com/gin-gonic/gin"

	"insurance-advisor/internal/scheduling"
	"insurance-advisor/pkg/log"
)

// Handler is the public interface for the scheduling HTTP delivery layer.
type Handler interface {
	Book(c *gin.Context)
	Slots(c *gin.Context)
}

type handler struct {
	l   log.Logger
	svc scheduling.Service
}

// New creates a new HTTP handler for the scheduling domain.
func New(l log.Logger, svc scheduling.Service) *handler {
	return &handler{
		l:   l,
		svc: svc,
	}
}
