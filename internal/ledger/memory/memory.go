// Package memory implements the ledger ports on an in-process slice.
// It backs the "memory" backend and the test suites; data does not survive
// a restart.
package memory

import (
	"context"
	"sync"
	"time"

	"gastobot/internal/core"
	"gastobot/internal/ledger"
)

type Store struct {
	mu      sync.Mutex
	nextID  int64
	records []core.ExpenseRecord
}

var _ ledger.Store = (*Store)(nil)

func New() *Store {
	return &Store{}
}

// Append stores the expense with a fresh monotonic id. Safe under
// concurrent writers.
func (s *Store) Append(_ context.Context, e ledger.NewExpense) (core.ExpenseRecord, error) {
	if err := e.Validate(); err != nil {
		return core.ExpenseRecord{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	rec := core.ExpenseRecord{
		ID:        s.nextID,
		SenderID:  e.SenderID,
		Date:      e.Date,
		Amount:    e.Amount,
		Category:  e.Category,
		RawText:   e.RawText,
		CreatedAt: time.Now().UTC(),
	}
	s.records = append(s.records, rec)
	return rec, nil
}

// QueryByWindow sums the sender's records inside the window, grouped by
// category. Results follow category declaration order.
func (s *Store) QueryByWindow(_ context.Context, senderID string, w core.Window, now time.Time) ([]core.CategoryTotal, error) {
	if !w.IsValid() {
		return nil, core.ErrInvalidWindow
	}
	from, to := w.Range(now)

	s.mu.Lock()
	defer s.mu.Unlock()

	sums := make(map[core.Category]int64)
	for _, rec := range s.records {
		if rec.SenderID != senderID {
			continue
		}
		if day := rec.Date.ISO(); day < from.ISO() || day > to.ISO() {
			continue
		}
		sums[rec.Category] += rec.Amount.Cents
	}

	var totals []core.CategoryTotal
	for _, cat := range core.Categories() {
		if cents, ok := sums[cat]; ok {
			totals = append(totals, core.CategoryTotal{
				Category: cat,
				Amount:   core.Money{Cents: cents},
			})
		}
	}
	return totals, nil
}

// Len reports the number of stored records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
