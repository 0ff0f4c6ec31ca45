package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/shipnote/pkg/domain/interfaces"
)

// DefaultMaxPayloadSize matches the payload cap of GitHub webhooks
const DefaultMaxPayloadSize = 25 << 20

// config holds internal HTTP server configuration
type config struct {
	addr           string
	webhookSecret  string
	maxPayloadSize int64
	healthChecks   []namedCheck
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithWebhookSecret sets the webhook secret
func WithWebhookSecret(secret string) Option {
	return func(c *config) {
		c.webhookSecret = secret
	}
}

// WithMaxPayloadSize overrides DefaultMaxPayloadSize
func WithMaxPayloadSize(n int64) Option {
	return func(c *config) {
		c.maxPayloadSize = n
	}
}

// WithHealthCheck adds a readiness check reported by /health
func WithHealthCheck(name string, check HealthCheck) Option {
	return func(c *config) {
		c.healthChecks = append(c.healthChecks, namedCheck{name: name, check: check})
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	webhookUC interfaces.WebhookUseCase,
	opts ...Option,
) (*Server, error) {
	// Default configuration
	cfg := &config{
		addr:           "localhost:8080",
		maxPayloadSize: DefaultMaxPayloadSize,
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Health check
	router.Get("/health", newHealthHandler(cfg.healthChecks))

	// Webhook endpoint
	webhookHandler := NewWebhookHandler(cfg.webhookSecret, webhookUC)
	router.With(PayloadLimitMiddleware(cfg.maxPayloadSize)).Post("/hooks/github/app", webhookHandler.Handle)

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
