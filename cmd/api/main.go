package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"seo-management-agent/config"
	_ "seo-management-agent/docs" // Swagger docs
	"seo-management-agent/internal/httpserver"
	"seo-management-agent/internal/orchestrator"
	"seo-management-agent/internal/router"
	seoUC "seo-management-agent/internal/seo/usecase"
	"seo-management-agent/internal/session"
	"seo-management-agent/pkg/gemini"
	"seo-management-agent/pkg/log"
	"seo-management-agent/pkg/webpage"
)

// @title       SEO Management Agent API
// @description Domain-restricted SEO chat assistant for gsbg.in with technical audit, keyword research, content analysis, performance, and reporting specialists.
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

	logger.Info(ctx, "Starting SEO Management Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if cfg.Gemini.APIKey == "" {
		logger.Error(ctx, "GEMINI_API_KEY is not set")
		logger.Error(ctx, "→ Get an API key from https://aistudio.google.com/apikey and export GEMINI_API_KEY before starting")
		return
	}

	// 3. Gemini client and routing oracle
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey, gemini.WithModel(cfg.Gemini.Model))
	logger.Infof(ctx, "Gemini model: %s", geminiClient.Model())

	oracle := router.NewGeminiOracle(geminiClient, logger)
	semanticRouter := router.New(oracle, logger)

	// 4. Sessions, fetcher, SEO use case
	store := session.New(cfg.Session.Capacity, cfg.Session.TTL)
	fetcher := webpage.NewClient()
	uc := seoUC.New(logger, fetcher, store)

	// 5. Orchestrator
	orc := orchestrator.New(logger, semanticRouter, uc, store)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Orchestrator:   orc,
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
