package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kaptiva-io/lead-listener/internal/api/router"
	appconfig "github.com/kaptiva-io/lead-listener/internal/config"
	"github.com/kaptiva-io/lead-listener/internal/extraction"
	"github.com/kaptiva-io/lead-listener/internal/observability/metrics"
	"github.com/kaptiva-io/lead-listener/internal/sheets"
	"github.com/kaptiva-io/lead-listener/internal/webhook"
	"github.com/kaptiva-io/lead-listener/pkg/logging"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting lead-listener API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Extraction engine
	geminiClient, err := extraction.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID)
	if err != nil {
		logger.Error("failed to create gemini client", "error", err)
		os.Exit(1)
	}
	defer geminiClient.Close()
	engine := extraction.NewEngine(geminiClient, logger)

	// Persistence gateway
	connector, err := sheets.NewGoogleConnector(cfg.SheetsCredentialsPath, cfg.SheetName)
	if err != nil {
		logger.Error("failed to configure sheets connector", "error", err)
		os.Exit(1)
	}
	gateway := sheets.NewGateway(connector, logger)

	// Metrics
	registry := prometheus.NewRegistry()
	pipelineMetrics := metrics.NewPipelineMetrics(registry)

	// Webhook pipeline handler
	validator := webhook.NewValidator(cfg.TargetGroupJID)
	webhookHandler := webhook.NewHandler(validator, engine, gateway, cfg.WorksheetTitle, pipelineMetrics, logger)

	// Setup router
	r := router.New(&router.Config{
		Logger:         logger,
		WebhookHandler: webhookHandler,
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
