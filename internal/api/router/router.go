package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpmiddleware "github.com/kaptiva-io/lead-listener/internal/http/middleware"
	"github.com/kaptiva-io/lead-listener/internal/webhook"
	"github.com/kaptiva-io/lead-listener/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger         *logging.Logger
	WebhookHandler *webhook.Handler
	MetricsHandler http.Handler
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", cfg.WebhookHandler.HealthCheck)

	// Upstream senders append arbitrary subpaths to the webhook URL; both
	// forms route to the same pipeline.
	r.Post("/webhook", cfg.WebhookHandler.Handle)
	r.Post("/webhook/*", cfg.WebhookHandler.Handle)

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	return r
}
