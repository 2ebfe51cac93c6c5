package main

import (
	"io"
	"net/http"
	"os"
	"time"

	"freshcart/internal/client"
	"freshcart/internal/configuration"
	"freshcart/internal/logger"
	"freshcart/internal/server"
	"freshcart/internal/store"
)

func main() {
	if err := runApp(); err != nil {
		os.Exit(1)
	}
}

func runApp() error {
	logOutput := io.Writer(os.Stdout)
	appLogger := logger.NewLogger(logger.LevelInfo, logOutput)

	defer func() {
		if r := recover(); r != nil {
			appLogger.Errorf("APPLICATION CRASHED: %+v", r)
		}
	}()

	config, err := configuration.GetConfig("config.toml")
	if err != nil {
		appLogger.Error("Error getting configuration from config.toml:", err)
		return err
	}

	if config.LogToFile {
		logFile, err := os.OpenFile("freshcart_backend.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			appLogger.Error("Error opening log file:", err)
			return err
		}
		defer func() {
			if err := logFile.Close(); err != nil {
				appLogger.Error("Error closing log file:", err)
			}
		}()
		logOutput = io.MultiWriter(logOutput, logFile)
	}
	appLogger = logger.NewLogger(config.LogLevel, logOutput)

	appLogger.Info("Initializing in-memory store with seed data")
	memStore := store.New()

	srv := server.Server{
		Store: memStore,
		Client: client.Client{
			Client:      &http.Client{Timeout: 15 * time.Second},
			BotToken:    config.TelegramBotToken,
			AdminChatID: config.TelegramAdminChatID,
			Logger:      appLogger,
		},
		Logger:        appLogger,
		AuthSecretKey: config.AuthSecretKey,
		AdminAPIKey:   config.AdminAPIKey,
		SessionTTL:    config.SessionTTL,
		CodeTTL:       config.CodeTTL,
	}

	appLogger.Info("Starting auth cleanup with interval:", config.AuthCleanupInterval)
	go srv.CleanupAuthInInterval(time.NewTicker(config.AuthCleanupInterval))

	httpSrv := &http.Server{
		Handler:      srv.Router(),
		Addr:         config.ServerAddress,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	appLogger.Info("Serving on", httpSrv.Addr)
	return httpSrv.ListenAndServe()
}
