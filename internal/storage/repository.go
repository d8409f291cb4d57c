// Package storage implements the ledger ports on SQLite.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gastobot/internal/core"
	"gastobot/internal/ledger"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

var _ ledger.Store = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Append implements ledger.Appender. The insert is a single statement, so
// each record lands atomically.
func (r *SQLiteRepository) Append(ctx context.Context, e ledger.NewExpense) (core.ExpenseRecord, error) {
	if err := e.Validate(); err != nil {
		return core.ExpenseRecord{}, err
	}

	createdAt := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (sender_id, date, amount_cents, category, raw_text, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.SenderID, e.Date.ISO(), e.Amount.Cents, string(e.Category), e.RawText,
		createdAt.Format(time.RFC3339))
	if err != nil {
		return core.ExpenseRecord{}, fmt.Errorf("%w: insert expense: %v", ledger.ErrStorage, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.ExpenseRecord{}, fmt.Errorf("%w: last insert id: %v", ledger.ErrStorage, err)
	}

	rec := core.ExpenseRecord{
		ID:        id,
		SenderID:  e.SenderID,
		Date:      e.Date,
		Amount:    e.Amount,
		Category:  e.Category,
		RawText:   e.RawText,
		CreatedAt: createdAt,
	}

	slog.InfoContext(ctx, "Expense saved",
		"id", rec.ID,
		"sender", rec.SenderID,
		"amount_cents", rec.Amount.Cents,
		"category", string(rec.Category),
		"date", rec.Date.ISO())

	return rec, nil
}

// QueryByWindow implements ledger.Aggregator. The grouped sums come back in
// category declaration order so identical ledger states always render the
// same way.
func (r *SQLiteRepository) QueryByWindow(ctx context.Context, senderID string, w core.Window, now time.Time) ([]core.CategoryTotal, error) {
	if !w.IsValid() {
		return nil, core.ErrInvalidWindow
	}
	from, to := w.Range(now)

	rows, err := r.db.QueryContext(ctx,
		`SELECT category, SUM(amount_cents)
		 FROM expenses
		 WHERE sender_id = ? AND date >= ? AND date <= ?
		 GROUP BY category`,
		senderID, from.ISO(), to.ISO())
	if err != nil {
		return nil, fmt.Errorf("%w: query window: %v", ledger.ErrStorage, err)
	}
	defer rows.Close()

	sums := make(map[core.Category]int64)
	for rows.Next() {
		var cat string
		var cents int64
		if err := rows.Scan(&cat, &cents); err != nil {
			return nil, fmt.Errorf("%w: scan window row: %v", ledger.ErrStorage, err)
		}
		sums[core.Category(cat)] = cents
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate window rows: %v", ledger.ErrStorage, err)
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

// Ready verifies the database answers queries. Readiness checks call it so
// a wedged or closed database flips /readyz before traffic arrives.
func (r *SQLiteRepository) Ready(ctx context.Context) error {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM expenses`).Scan(&n)
	if err != nil {
		return fmt.Errorf("%w: readiness query: %v", ledger.ErrStorage, err)
	}
	return nil
}
