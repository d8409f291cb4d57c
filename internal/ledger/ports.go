// Package ledger defines the ports of the append-only expense ledger.
package ledger

import (
	"context"
	"errors"
	"strings"
	"time"

	"gastobot/internal/core"
)

// ErrStorage marks failures of the durable medium. Implementations wrap it
// so callers can match with errors.Is and degrade to a failure reply.
var ErrStorage = errors.New("ledger storage unavailable")

// NewExpense carries the fields of a record before the store assigns its
// id and creation timestamp.
type NewExpense struct {
	SenderID string
	Date     core.Date
	Amount   core.Money
	Category core.Category
	RawText  string
}

func (n NewExpense) Validate() error {
	if strings.TrimSpace(n.SenderID) == "" {
		return core.ErrEmptySender
	}
	if err := n.Date.Validate(); err != nil {
		return err
	}
	if err := n.Amount.Validate(); err != nil {
		return err
	}
	if !n.Category.IsValid() {
		return core.ErrInvalidCategory
	}
	if strings.TrimSpace(n.RawText) == "" {
		return core.ErrEmptyText
	}
	return nil
}

// Ports for ledger backends.
type (
	Appender interface {
		// Append durably persists a new record, assigning a fresh id
		// and creation timestamp. Atomic per record.
		Append(ctx context.Context, e NewExpense) (core.ExpenseRecord, error)
	}

	Aggregator interface {
		// QueryByWindow returns per-category sums for one sender over
		// the window resolved against now. Categories with no records
		// in range are omitted.
		QueryByWindow(ctx context.Context, senderID string, w core.Window, now time.Time) ([]core.CategoryTotal, error)
	}

	Store interface {
		Appender
		Aggregator
	}
)

// SumAll derives the window total by summing the grouped aggregates.
func SumAll(ctx context.Context, agg Aggregator, senderID string, w core.Window, now time.Time) (core.Money, error) {
	totals, err := agg.QueryByWindow(ctx, senderID, w, now)
	if err != nil {
		return core.Money{}, err
	}
	var sum core.Money
	for _, ct := range totals {
		sum = sum.Add(ct.Amount)
	}
	return sum, nil
}
