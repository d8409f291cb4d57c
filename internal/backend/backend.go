// Package backend assembles a ledger store from configuration.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"gastobot/internal/amqp"
	"gastobot/internal/config"
	"gastobot/internal/ledger"
	"gastobot/internal/ledger/memory"
	"gastobot/internal/services"
	"gastobot/internal/storage"
)

// Result bundles the assembled ledger with an optional cleanup function.
// Appender may wrap the store (to publish events); Aggregator always reads
// the store directly. Ready probes the durable medium when the backend has
// one; nil means always ready.
type Result struct {
	Appender   ledger.Appender
	Aggregator ledger.Aggregator
	Ready      func(ctx context.Context) error
	Cleanup    func() error
}

// Build creates the ledger backend named by cfg.Backend. The sqlite
// backend optionally publishes recorded-expense events when AMQP is
// configured; the memory backend never does.
func Build(cfg *config.Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Backend {
	case "sqlite":
		return buildSQLite(cfg, logger)
	case "memory":
		store := memory.New()
		logger.Info("Initialized memory ledger backend")
		return &Result{Appender: store, Aggregator: store}, nil
	default:
		return nil, fmt.Errorf("unsupported ledger backend: %s", cfg.Backend)
	}
}

func buildSQLite(cfg *config.Config, logger *slog.Logger) (*Result, error) {
	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("initialize sqlite repository: %w", err)
	}

	var publisher services.EventPublisher
	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without events", "error", err)
			amqpClient = nil
		} else {
			publisher = amqpClient
			logger.Info("Initialized AMQP client",
				"exchange", cfg.AMQPExchange,
				"queue", cfg.AMQPQueue)
		}
	}

	svc := services.NewExpenseService(repo, publisher)
	if amqpClient != nil {
		svc.RegisterCloser(amqpClient.Close)
	}
	svc.RegisterCloser(repo.Close)

	logger.Info("Initialized SQLite ledger backend",
		"db_path", cfg.SQLiteDBPath,
		"amqp_enabled", publisher != nil)

	return &Result{
		Appender:   svc,
		Aggregator: repo,
		Ready:      repo.Ready,
		Cleanup:    svc.Close,
	}, nil
}
