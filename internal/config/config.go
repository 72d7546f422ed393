package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all dynamic configuration for the security service.
// The service is internal-only: it sits behind the backend, never the public internet.
type Config struct {
	Environment    string // "development" or "production"
	Port           string
	AllowedOrigins []string

	// 🛡️ Key material: 64 hex chars / 32 bytes. Validated byte-for-byte by the
	// cipher constructor before the server ever binds a port.
	EncryptionKeyHex string

	// Breach range-lookup endpoint and its hard timeout.
	HIBPBaseURL string
	HIBPTimeout time.Duration

	// Optional shared secret for service-to-service bearer tokens.
	// Empty disables boundary auth (trusted-network deployments).
	InternalAuthSecret string
}

// Load parses the environment and applies sensible default fallbacks.
func Load() *Config {
	env := getEnv("SVSEC_ENV", "production")

	// 🛡️ Zero-Trust: Fail Fast on Missing Key Material.
	// A service that cannot encrypt must never come up "mostly working".
	keyHex := getEnv("ENCRYPTION_KEY", "")
	if keyHex == "" {
		log.Fatal("🚨 [FATAL] ENCRYPTION_KEY environment variable is required (64 hex chars).")
	}

	// Strict CORS: only the trusted backend origin, never a wildcard.
	corsOrigins := getEnv("CORS_ALLOWED_ORIGINS", "")
	if corsOrigins == "" {
		if env == "production" {
			log.Fatal("🚨 [FATAL] CORS_ALLOWED_ORIGINS environment variable is required in production.")
		}
		corsOrigins = "http://localhost:3001"
	}

	timeoutSecs := getEnvInt("HIBP_TIMEOUT_SECONDS", 5)

	return &Config{
		Environment:        env,
		Port:               getEnv("PORT", "8080"),
		AllowedOrigins:     strings.Split(corsOrigins, ","),
		EncryptionKeyHex:   keyHex,
		HIBPBaseURL:        getEnv("HIBP_BASE_URL", "https://api.pwnedpasswords.com/range"),
		HIBPTimeout:        time.Duration(timeoutSecs) * time.Second,
		InternalAuthSecret: getEnv("INTERNAL_AUTH_SECRET", ""),
	}
}

// getEnv retrieves an environment variable or returns a fallback value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt retrieves an integer environment variable; non-numeric values
// fall back rather than crash the boot.
func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("⚠️  [CONFIG] %s=%q is not a positive integer, using default %d", key, value, fallback)
		return fallback
	}
	return n
}
