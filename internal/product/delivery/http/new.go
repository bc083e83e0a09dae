package http

import (
	"github.com/gin-gonic/gin"

	"insurance-advisor/internal/product"
	"insurance-advisor/pkg/log"
)

// Handler is the public interface for the product HTTP delivery layer.
type Handler interface {
	Ask(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc product.UseCase
}

// New creates a new HTTP handler for the product domain.
func New(l log.Logger, uc product.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
