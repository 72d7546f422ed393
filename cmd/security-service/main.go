package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/securevault/security-service/internal/api/handlers"
	svmiddleware "github.com/securevault/security-service/internal/api/middleware"
	"github.com/securevault/security-service/internal/api/router"
	"github.com/securevault/security-service/internal/config"
	"github.com/securevault/security-service/internal/core/services"
	"github.com/securevault/security-service/internal/infrastructure/crypto"
	"github.com/securevault/security-service/internal/infrastructure/hibp"
)

func main() {
	// --- 1. Core Telemetry & Configuration ---
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)
	logger.Info("🚀 SecureVault Security Service starting up")

	// Local development convenience; missing .env is fine in containers.
	_ = godotenv.Load()

	cfg := config.Load()

	// --- 2. Key Material (Startup-Fatal Validation) ---
	// 🛡️ A bad key must stop the boot here, before any request is served.
	cipherService, err := crypto.NewAESCipherService(cfg.EncryptionKeyHex)
	if err != nil {
		logger.Error("FATAL: encryption key rejected", "error", err)
		os.Exit(1)
	}

	// --- 3. Dependency Injection ---
	breachClient := hibp.NewClient(
		hibp.WithBaseURL(cfg.HIBPBaseURL),
		hibp.WithTimeout(cfg.HIBPTimeout),
	)
	auditService := services.NewAuditService()

	mux := router.NewRouter(router.RouterConfig{
		AllowedOrigins:     cfg.AllowedOrigins,
		EncryptHandler:     handlers.NewEncryptHandler(cipherService),
		BreachHandler:      handlers.NewBreachHandler(breachClient),
		AuditHandler:       handlers.NewAuditHandler(auditService),
		HealthHandler:      handlers.NewHealthHandler(),
		Logger:             logger,
		InternalAuthSecret: cfg.InternalAuthSecret,
		RateLimiter:        svmiddleware.NewRateLimiter(10, 30),
	})

	// --- 4. HTTP Gateway ---
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	// --- 5. Graceful Exit ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("🌐 Security service active", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("CRITICAL: Server crashed", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	logger.Info("🛑 Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("ERROR: Forced shutdown", "error", err)
	}
	logger.Info("✅ SecureVault Security Service shut down")
}
