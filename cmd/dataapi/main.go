package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"retail-insights/config"
	_ "retail-insights/docs" // Swagger docs
	analyticsHTTP "retail-insights/internal/analytics/delivery/http"
	"retail-insights/internal/analytics/repository/sqlite"
	analyticsUC "retail-insights/internal/analytics/usecase"
	"retail-insights/internal/httpserver"
	"retail-insights/pkg/log"
)

// @title       Retail Data API
// @description Read-only aggregation API over retail transactions.
// @version     1
// @host        localhost:5000
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

	logger.Info(ctx, "Starting Retail Data API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Database: %s", cfg.Database.Path)

	// 3. Storage
	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	// 4. Analytics domain
	analyticsUseCase := analyticsUC.New(sqlite.New(db, logger), logger)
	analyticsHandler := analyticsHTTP.New(logger, analyticsUseCase)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.DataAPI.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		ServiceName:      "retail-data-api",
		ReadyCheck:       db.PingContext,
		AnalyticsHandler: analyticsHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
