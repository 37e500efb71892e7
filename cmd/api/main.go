package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"retail-insights/config"
	_ "retail-insights/docs" // Swagger docs
	chatHTTP "retail-insights/internal/chat/delivery/http"
	chatUC "retail-insights/internal/chat/usecase"
	"retail-insights/internal/httpserver"
	"retail-insights/internal/llm"
	"retail-insights/internal/metrics"
	"retail-insights/internal/router"
	"retail-insights/pkg/llmprovider"
	"retail-insights/pkg/log"
	"retail-insights/pkg/retailapi"
)

// @title       Retail Insights API
// @description Natural-language retail analytics: ask questions about customers, products and store KPIs.
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

	logger.Info(ctx, "Starting Retail Insights chat service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Data API URL: %s", cfg.DataAPI.BaseURL)

	if err := config.ValidateLLMConfig(&cfg.LLM); err != nil {
		logger.Error(ctx, "Invalid LLM config: ", err)
		return
	}

	// 3. LLM managers, one per stage so each can use its own model
	intentLLM, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, llmprovider.StageIntent, metrics.ObserveLLMCall, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize intent LLM: ", err)
		return
	}
	responseLLM, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, llmprovider.StageResponse, metrics.ObserveLLMCall, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize response LLM: ", err)
		return
	}

	// 4. Data API client + router
	timeout, err := time.ParseDuration(cfg.DataAPI.Timeout)
	if err != nil {
		logger.Warnf(ctx, "Invalid data_api.timeout %q, using default: %v", cfg.DataAPI.Timeout, err)
		timeout = retailapi.DefaultTimeout
	}
	dataClient := retailapi.NewClient(cfg.DataAPI.BaseURL, timeout)
	queryRouter := router.New(dataClient, logger)

	// 5. Chat domain
	chatUseCase := chatUC.New(
		llm.NewIntentParser(intentLLM, logger),
		queryRouter,
		llm.NewRenderer(responseLLM, logger),
		logger,
	)
	chatHandler := chatHTTP.New(logger, chatUseCase)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		ServiceName:   "retail-chat",
		ReadyCheck:    dataClient.Ping,
		ChatHandler:   chatHandler,
		ChatRateLimit: cfg.RateLimit.ChatPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
