// internal/api/router/router.go
package router

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/securevault/security-service/internal/api/handlers"
	svmiddleware "github.com/securevault/security-service/internal/api/middleware"
)

// RouterConfig defines the strict dependencies required to build the API routing tree.
type RouterConfig struct {
	AllowedOrigins []string
	EncryptHandler *handlers.EncryptHandler
	BreachHandler  *handlers.BreachHandler
	AuditHandler   *handlers.AuditHandler
	HealthHandler  *handlers.HealthHandler
	Logger         *slog.Logger

	// InternalAuthSecret enables bearer-token checks on all operational
	// endpoints when non-empty. /health stays open either way.
	InternalAuthSecret string

	// RateLimiter is optional; nil disables per-IP throttling (tests).
	RateLimiter *svmiddleware.RateLimiter
}

// NewRouter constructs the Chi multiplexer, attaches global middleware, and wires all endpoints.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// =========================================================================
	// 1. Global Gateway Middleware Pipeline
	// =========================================================================

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if cfg.Logger != nil {
		r.Use(svmiddleware.StructuredLogger(cfg.Logger))
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// 🛡️ Limit all incoming JSON requests to 1 Megabyte max (OOM Protection)
	r.Use(svmiddleware.MaxBytes(1_048_576))

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Handler)
	}

	// Strict CORS: only the trusted backend, matching the service's
	// internal-only posture.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// =========================================================================
	// 2. Routing Tree
	// =========================================================================

	r.Get("/health", cfg.HealthHandler.Check)

	r.Group(func(r chi.Router) {
		if cfg.InternalAuthSecret != "" {
			auth := svmiddleware.NewInternalAuth(cfg.InternalAuthSecret)
			r.Use(auth.Require)
		}

		r.Post("/encrypt", cfg.EncryptHandler.Encrypt)
		r.Post("/decrypt", cfg.EncryptHandler.Decrypt)
		r.Get("/breach-check", cfg.BreachHandler.Check)
		r.Post("/audit", cfg.AuditHandler.Generate)
	})

	return r
}
