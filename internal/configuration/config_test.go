package configuration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"freshcart/internal/logger"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("error writing config file: %v", err)
	}
	return path
}

func TestGetConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
auth_secret_key = "0123456789abcdef0123456789abcdef"
admin_api_key = "admin-key"
`)
	config, err := GetConfig(path)
	if err != nil {
		t.Fatalf("GetConfig error: %v", err)
	}
	if config.ServerAddress != "localhost:8080" {
		t.Fatalf("unexpected default server address: %s", config.ServerAddress)
	}
	if config.LogLevel != logger.LevelInfo {
		t.Fatalf("unexpected default log level: %v", config.LogLevel)
	}
	if config.SessionTTL != 720*time.Hour {
		t.Fatalf("unexpected default session TTL: %v", config.SessionTTL)
	}
	if config.CodeTTL != 5*time.Minute {
		t.Fatalf("unexpected default code TTL: %v", config.CodeTTL)
	}
	if config.AuthCleanupInterval != 10*time.Minute {
		t.Fatalf("unexpected default cleanup interval: %v", config.AuthCleanupInterval)
	}
	if config.AuthSecretKey == nil {
		t.Fatal("expected auth secret key to be set")
	}
}

func TestGetConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing secret key", `admin_api_key = "k"`},
		{"missing admin key", `auth_secret_key = "s"`},
		{"bad log level", `
auth_secret_key = "s"
admin_api_key = "k"
log_level = "LOUD"
`},
		{"session ttl too short", `
auth_secret_key = "s"
admin_api_key = "k"
session_ttl = "5m"
`},
		{"code ttl too short", `
auth_secret_key = "s"
admin_api_key = "k"
code_ttl = "5s"
`},
		{"cleanup interval too short", `
auth_secret_key = "s"
admin_api_key = "k"
auth_cleanup_interval = "5s"
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GetConfig(writeConfig(t, tt.content)); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}
