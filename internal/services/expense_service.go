// Package services orchestrates ledger writes with event publication.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gastobot/internal/amqp"
	"gastobot/internal/core"
	"gastobot/internal/ledger"
)

// EventPublisher publishes recorded-expense events for downstream
// consumers (e.g. the CSV export worker).
type EventPublisher interface {
	PublishExpenseRecorded(ctx context.Context, msg *amqp.ExpenseRecordedMessage) error
}

// ExpenseService persists an expense and then publishes an event for it.
// The durable write decides the outcome; a failed publish is logged and
// never fails the user's request.
type ExpenseService struct {
	store     ledger.Store
	publisher EventPublisher
	closers   []func() error
}

var _ ledger.Appender = (*ExpenseService)(nil)

func NewExpenseService(store ledger.Store, publisher EventPublisher) *ExpenseService {
	return &ExpenseService{
		store:     store,
		publisher: publisher,
	}
}

// Append implements ledger.Appender.
func (s *ExpenseService) Append(ctx context.Context, e ledger.NewExpense) (core.ExpenseRecord, error) {
	rec, err := s.store.Append(ctx, e)
	if err != nil {
		return core.ExpenseRecord{}, fmt.Errorf("save expense: %w", err)
	}

	if s.publisher == nil {
		return rec, nil
	}

	msg := &amqp.ExpenseRecordedMessage{
		ID:          rec.ID,
		SenderID:    rec.SenderID,
		Date:        rec.Date.ISO(),
		AmountCents: rec.Amount.Cents,
		Category:    string(rec.Category),
		RawText:     rec.RawText,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.publisher.PublishExpenseRecorded(ctx, msg); err != nil {
		// Expense is saved; the export stream just missed this one.
		slog.ErrorContext(ctx, "Failed to publish expense event",
			"id", rec.ID, "error", err)
	}

	return rec, nil
}

// RegisterCloser adds a cleanup function run by Close.
func (s *ExpenseService) RegisterCloser(fn func() error) {
	s.closers = append(s.closers, fn)
}

// Close releases the underlying resources.
func (s *ExpenseService) Close() error {
	var errs []error
	for _, fn := range s.closers {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close expense service: %v", errs)
	}
	return nil
}
