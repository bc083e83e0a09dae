package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	advisorHTTP "insurance-advisor/internal/advisor/delivery/http"
	tgDelivery "insurance-advisor/internal/advisor/delivery/telegram"
	productHTTP "insurance-advisor/internal/product/delivery/http"
	schedulingHTTP "insurance-advisor/internal/scheduling/delivery/http"
	"insurance-advisor/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	advisorHandler    advisorHTTP.Handler
	telegramHandler   tgDelivery.Handler
	productHandler    productHTTP.Handler
	schedulingHandler schedulingHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AdvisorHandler    advisorHTTP.Handler
	TelegramHandler   tgDelivery.Handler
	ProductHandler    productHTTP.Handler
	SchedulingHandler schedulingHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.Default(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		advisorHandler:    cfg.AdvisorHandler,
		telegramHandler:   cfg.TelegramHandler,
		productHandler:    cfg.ProductHandler,
		schedulingHandler: cfg.SchedulingHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
