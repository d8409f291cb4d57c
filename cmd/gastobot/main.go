package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"gastobot/internal/backend"
	"gastobot/internal/bot"
	"gastobot/internal/cache"
	"gastobot/internal/config"
	apphttp "gastobot/internal/http"
	applog "gastobot/internal/log"
	"gastobot/internal/report"
	"gastobot/internal/transcribe"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.NewDefault()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	result, err := backend.Build(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize ledger backend", "error", err, "backend", cfg.Backend)
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer func() {
			if err := result.Cleanup(); err != nil {
				logger.Error("Backend cleanup error", "error", err)
			}
		}()
	}

	// Voice note transcription is optional; text messages work without it.
	var transcriber transcribe.Transcriber
	if cfg.SpeechEnabled {
		gc, err := transcribe.NewGoogleFromEnv(context.Background())
		if err != nil {
			logger.Error("Failed to initialize speech client", "error", err)
			os.Exit(1)
		}
		transcriber = gc
		logger.Info("Speech transcription enabled")
	} else {
		logger.Info("Speech transcription disabled")
	}

	replyCache := cache.NewReplyCache(cfg.ReportCacheSize, cfg.ReportCacheTTL)
	reports := report.NewGenerator(result.Aggregator)
	interpreter := bot.New(result.Appender, reports, applog.New(slog.Default(), applog.ComponentBot),
		bot.WithReplyCache(replyCache))

	srv := apphttp.NewServer(":"+cfg.Port, interpreter, transcriber, cfg.TranscribeTimeout, result.Ready)

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 15 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting gastobot server", "port", cfg.Port, "backend", cfg.Backend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
