package configuration

import (
	"time"

	"freshcart/internal/logger"

	"github.com/BurntSushi/toml"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/pkg/errors"
)

type Config struct {
	ServerAddress       string
	LogLevel            logger.Level
	LogToFile           bool
	AuthSecretKey       jwk.Key
	AdminAPIKey         string
	SessionTTL          time.Duration
	CodeTTL             time.Duration
	AuthCleanupInterval time.Duration
	TelegramBotToken    string
	TelegramAdminChatID int64
}

type tomlConfig struct {
	ServerAddress       string `toml:"server_address"`
	LogLevel            string `toml:"log_level"`
	LogToFile           bool   `toml:"log_to_file"`
	AuthSecretKey       string `toml:"auth_secret_key"`
	AdminAPIKey         string `toml:"admin_api_key"`
	SessionTTL          string `toml:"session_ttl"`
	CodeTTL             string `toml:"code_ttl"`
	AuthCleanupInterval string `toml:"auth_cleanup_interval"`
	TelegramBotToken    string `toml:"telegram_bot_token"`
	TelegramAdminChatID int64  `toml:"telegram_admin_chat_id"`
}

func GetConfig(path string) (*Config, error) {
	var tc tomlConfig
	_, err := toml.DecodeFile(path, &tc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode toml file with path: %s", path)
	}

	if tc.ServerAddress == "" {
		tc.ServerAddress = "localhost:8080"
	}

	if tc.LogLevel == "" {
		tc.LogLevel = "INFO"
	}
	logLevel, err := logger.ParseLevel(tc.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse log_level: %s", tc.LogLevel)
	}

	if tc.AuthSecretKey == "" {
		return nil, errors.New("auth_secret_key is not set")
	}
	authSecretKey, err := jwk.FromRaw([]byte(tc.AuthSecretKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create key from auth_secret_key")
	}

	if tc.AdminAPIKey == "" {
		return nil, errors.New("admin_api_key is not set")
	}

	if tc.SessionTTL == "" {
		tc.SessionTTL = "720h"
	}
	sessionTTL, err := time.ParseDuration(tc.SessionTTL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse session_ttl: %s", tc.SessionTTL)
	}
	if sessionTTL < time.Hour {
		return nil, errors.Errorf("session_ttl too short (%v), minimum: 1h", sessionTTL)
	}

	if tc.CodeTTL == "" {
		tc.CodeTTL = "5m"
	}
	codeTTL, err := time.ParseDuration(tc.CodeTTL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse code_ttl: %s", tc.CodeTTL)
	}
	if codeTTL < 30*time.Second {
		return nil, errors.Errorf("code_ttl too short (%v), minimum: 30s", codeTTL)
	}

	if tc.AuthCleanupInterval == "" {
		tc.AuthCleanupInterval = "10m"
	}
	authCleanupInterval, err := time.ParseDuration(tc.AuthCleanupInterval)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse auth_cleanup_interval: %s", tc.AuthCleanupInterval)
	}
	if authCleanupInterval < time.Minute {
		return nil, errors.Errorf("auth_cleanup_interval too short (%v), minimum: 1m", authCleanupInterval)
	}

	return &Config{
		ServerAddress:       tc.ServerAddress,
		LogLevel:            logLevel,
		LogToFile:           tc.LogToFile,
		AuthSecretKey:       authSecretKey,
		AdminAPIKey:         tc.AdminAPIKey,
		SessionTTL:          sessionTTL,
		CodeTTL:             codeTTL,
		AuthCleanupInterval: authCleanupInterval,
		TelegramBotToken:    tc.TelegramBotToken,
		TelegramAdminChatID: tc.TelegramAdminChatID,
	}, nil
}
