package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"insurance-advisor/config"
	_ "insurance-advisor/docs" // Swagger docs
	advisorHTTP "insurance-advisor/internal/advisor/delivery/http"
	tgDelivery "insurance-advisor/internal/advisor/delivery/telegram"
	assessmentRepo "insurance-advisor/internal/advisor/repository/file"
	advisorUC "insurance-advisor/internal/advisor/usecase"
	"insurance-advisor/internal/httpserver"
	productHTTP "insurance-advisor/internal/product/delivery/http"
	passageRepo "insurance-advisor/internal/product/repository/qdrant"
	productUsecase "insurance-advisor/internal/product/usecase"
	"insurance-advisor/internal/router"
	"insurance-advisor/internal/scheduling"
	schedulingHTTP "insurance-advisor/internal/scheduling/delivery/http"
	"insurance-advisor/pkg/datemath"
	"insurance-advisor/pkg/gcalendar"
	"insurance-advisor/pkg/llmprovider"
	"insurance-advisor/pkg/log"
	"insurance-advisor/pkg/qdrant"
	"insurance-advisor/pkg/telegram"
	"insurance-advisor/pkg/voyage"
)

// @title       Insurance Advisor API
// @description AI-powered life insurance advisor with needs assessment, product Q&A, and consultation scheduling.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Insurance Advisor...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)

	// 4. Intent router
	semanticRouter := router.New(llm, logger)

	// 5. Product domain (knowledge base Q&A)
	qdrantClient := qdrant.NewClient(cfg.Qdrant.URL)
	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Voyage client: ", err)
		return
	}
	productRepo := passageRepo.New(qdrantClient, embedder, cfg.Qdrant.CollectionName, logger)
	productUC := productUsecase.New(logger, llm, productRepo)

	// 6. Advisor domain (conversation + needs assessment)
	repo, err := assessmentRepo.New(cfg.Assessment.ResponsesPath, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize assessment store: ", err)
		return
	}
	advisorUseCase := advisorUC.New(logger, llm, semanticRouter, productUC, repo, nil)

	// 7. Scheduling domain
	dateMathParser, dtErr := datemath.NewParser(cfg.Scheduling.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Scheduling.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
			calendarClient = nil
		} else {
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	var calendar scheduling.Calendar
	if calendarClient != nil {
		calendar = calendarClient
	}
	timezone := cfg.Scheduling.Timezone
	if dtErr != nil {
		timezone = "UTC"
	}
	schedulingSvc, err := scheduling.New(logger, dateMathParser, calendar, cfg.GoogleCalendar.CalendarID, timezone)
	if err != nil {
		logger.Error(ctx, "Failed to initialize scheduling service: ", err)
		return
	}

	// 8. Telegram delivery (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, advisorUseCase, schedulingSvc, telegramBot)

		// Register webhook: auto-detect ngrok or fallback to manual config
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := telegramBot.SetWebhook(webhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram delivery skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		AdvisorHandler:    advisorHTTP.New(logger, advisorUseCase),
		ProductHandler:    productHTTP.New(logger, productUC),
		SchedulingHandler: schedulingHTTP.New(logger, schedulingSvc),
		TelegramHandler:   telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
