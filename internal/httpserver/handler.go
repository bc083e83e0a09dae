package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	advisorHTTP "insurance-advisor/internal/advisor/delivery/http"
	"insurance-advisor/internal/model"
	productHTTP "insurance-advisor/internal/product/delivery/http"
	schedulingHTTP "insurance-advisor/internal/scheduling/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP server environment: production")
	} else {
		srv.l.Infof(ctx, "HTTP server environment: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	if srv.advisorHandler != nil {
		advisorHTTP.RegisterRoutes(api, srv.advisorHandler)
		srv.l.Infof(ctx, "Chat route registered at POST /api/v1/chat")
	} else {
		srv.l.Infof(ctx, "Advisor handler not configured, skipping chat route")
	}

	if srv.productHandler != nil {
		productHTTP.RegisterRoutes(api, srv.productHandler)
		srv.l.Infof(ctx, "Product routes registered at /api/v1/products")
	} else {
		srv.l.Infof(ctx, "Product handler not configured, skipping product routes")
	}

	if srv.schedulingHandler != nil {
		schedulingHTTP.RegisterRoutes(api, srv.schedulingHandler)
		srv.l.Infof(ctx, "Scheduling routes registered at /api/v1/appointments")
	} else {
		srv.l.Infof(ctx, "Scheduling handler not configured, skipping appointment routes")
	}

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}

	return nil
}
