// Package config loads server settings from the environment.
//
// A .env file in the working directory is read first when present; variables
// already set in the process environment take precedence over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds server settings.
type Config struct {
	Port        int
	DBPath      string
	UploadDir   string
	JWTSecret   string
	TokenTTL    time.Duration
	CORSOrigins []string
	LogLevel    string
	LogFormat   string

	// FederationKey authenticates the identity gateway that calls
	// FederatedSignIn. Federated sign-in is disabled when empty.
	FederationKey string
}

// devSecret is used when JWT_SECRET is unset. Never deploy with it.
const devSecret = "dev-secret-change-me"

// Load reads .env (if any) and then the environment.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile reads the given dotenv file (if it exists) and then the environment.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return fromEnv()
}

func fromEnv() (*Config, error) {
	cfg := &Config{
		DBPath:    getEnv("DB_PATH", "./data/travel.db"),
		UploadDir: getEnv("UPLOAD_DIR", "./data/uploads"),
		JWTSecret: getEnv("JWT_SECRET", devSecret),
		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "text")),

		FederationKey: os.Getenv("FEDERATION_KEY"),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}
	cfg.Port = port

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "24h"))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("invalid TOKEN_TTL %q", os.Getenv("TOKEN_TTL"))
	}
	cfg.TokenTTL = ttl

	for _, origin := range strings.Split(getEnv("CORS_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: want text or json", cfg.LogFormat)
	}

	return cfg, nil
}

// UsingDevSecret reports whether JWT_SECRET was left unset.
func (c *Config) UsingDevSecret() bool {
	return c.JWTSecret == devSecret
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
