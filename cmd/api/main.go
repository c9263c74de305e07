package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"parts-support-chat/config"
	_ "parts-support-chat/docs" // Swagger docs
	catalogFile "parts-support-chat/internal/catalog/repository/file"
	"parts-support-chat/internal/httpserver"
	"parts-support-chat/pkg/llmprovider"
	"parts-support-chat/pkg/log"
)

// @title       Parts Support Chat API
// @description Conversational support for refrigerator and dishwasher parts: lookup, compatibility, installation, and order status.
// @version     1
// @host        localhost:8787
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

	logger.Info(ctx, "Starting Parts Support Chat...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Catalog store (load-once, read-only)
	store, err := catalogFile.New(logger, cfg.Catalog.DataDir)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load catalog from %s: %v", cfg.Catalog.DataDir, err)
	}

	// 4. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize LLM providers: %v", err)
	}
	llm := llmprovider.NewManager(providers, llmprovider.NewManagerConfig(&cfg.LLM), logger)

	// 5. HTTP server
	srv, err := httpserver.New(httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		Store:       store,
		LLM:         llm,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatalf(ctx, "HTTP server error: %v", err)
	}
}
