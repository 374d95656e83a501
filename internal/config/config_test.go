package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var keys = []string{"PORT", "DB_PATH", "UPLOAD_DIR", "JWT_SECRET", "TOKEN_TTL", "CORS_ORIGINS", "LOG_LEVEL", "LOG_FORMAT", "FEDERATION_KEY"}

// clearEnv empties every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Port != 8080 || cfg.Addr() != ":8080" {
		t.Errorf("port: expected 8080, got %d", cfg.Port)
	}
	if cfg.DBPath != "./data/travel.db" {
		t.Errorf("db path: got %q", cfg.DBPath)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("token ttl: expected 24h, got %v", cfg.TokenTTL)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("cors origins: got %v", cfg.CORSOrigins)
	}
	if !cfg.UsingDevSecret() {
		t.Error("expected dev secret when JWT_SECRET is unset")
	}
}

func TestDotenvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nJWT_SECRET=from-file\nCORS_ORIGINS=http://a.test, http://b.test\nLOG_FORMAT=json\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	// Process environment wins over the file.
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	// godotenv sets variables in the process; drop them after the test.
	t.Cleanup(func() {
		for _, k := range keys {
			os.Unsetenv(k)
		}
	})

	if cfg.Port != 9090 {
		t.Errorf("port: expected 9090, got %d", cfg.Port)
	}
	if cfg.JWTSecret != "from-env" {
		t.Errorf("jwt secret: expected from-env, got %q", cfg.JWTSecret)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Errorf("cors origins: got %v", cfg.CORSOrigins)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("log format: expected json, got %q", cfg.LogFormat)
	}
}

func TestInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric port", "PORT", "eighty"},
		{"port out of range", "PORT", "70000"},
		{"bad duration", "TOKEN_TTL", "forever"},
		{"negative duration", "TOKEN_TTL", "-1h"},
		{"unknown log format", "LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.env")); err == nil {
				t.Errorf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}
