package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// Date is a calendar day, normalized to midnight UTC. The ledger
	// partitions and aggregates by day, never by time of day.
	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// ExpenseRecord is one persisted spending event. Records are
	// append-only: once the store has assigned ID and CreatedAt they are
	// never mutated or deleted.
	ExpenseRecord struct {
		ID        int64
		SenderID  string
		Date      Date
		Amount    Money
		Category  Category
		RawText   string
		CreatedAt time.Time
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidWindow   = errors.New("invalid report window")
	ErrEmptySender     = errors.New("empty sender id")
	ErrEmptyText       = errors.New("empty raw text")
)

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a timestamp to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// ISO renders the date as YYYY-MM-DD, the format the ledger stores and
// compares. Lexicographic order on ISO strings equals chronological order.
func (d Date) ISO() string {
	return d.Format("2006-01-02")
}

func (d Date) Validate() error {
	if d.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (r ExpenseRecord) Validate() error {
	if strings.TrimSpace(r.SenderID) == "" {
		return ErrEmptySender
	}
	if err := r.Date.Validate(); err != nil {
		return err
	}
	if err := r.Amount.Validate(); err != nil {
		return err
	}
	if !r.Category.IsValid() {
		return ErrInvalidCategory
	}
	if len(strings.TrimSpace(r.RawText)) == 0 {
		return ErrEmptyText
	}
	if len(r.RawText) > 500 {
		return errors.New("raw text too long (max 500 characters)")
	}
	return nil
}
