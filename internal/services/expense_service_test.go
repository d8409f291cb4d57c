package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gastobot/internal/amqp"
	"gastobot/internal/core"
	"gastobot/internal/ledger"
	"gastobot/internal/ledger/memory"
)

type capturingPublisher struct {
	messages []*amqp.ExpenseRecordedMessage
	err      error
}

func (p *capturingPublisher) PublishExpenseRecorded(_ context.Context, msg *amqp.ExpenseRecordedMessage) error {
	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, msg)
	return nil
}

func newExpense() ledger.NewExpense {
	return ledger.NewExpense{
		SenderID: "a",
		Date:     core.NewDate(2025, 3, 15),
		Amount:   core.Money{Cents: 1250},
		Category: core.Food,
		RawText:  "Gastei 12,50 no mercado",
	}
}

func TestAppendPublishesEvent(t *testing.T) {
	pub := &capturingPublisher{}
	svc := NewExpenseService(memory.New(), pub)

	rec, err := svc.Append(context.Background(), newExpense())
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	if len(pub.messages) != 1 {
		t.Fatalf("expected 1 event, got %d", len(pub.messages))
	}
	msg := pub.messages[0]
	if msg.ID != rec.ID || msg.AmountCents != 1250 || msg.Category != "food" || msg.Date != "2025-03-15" {
		t.Fatalf("unexpected event: %+v", msg)
	}
}

func TestAppendSurvivesPublishFailure(t *testing.T) {
	store := memory.New()
	svc := NewExpenseService(store, &capturingPublisher{err: errors.New("broker down")})

	if _, err := svc.Append(context.Background(), newExpense()); err != nil {
		t.Fatalf("append should succeed despite publish failure: %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 stored record, have %d", store.Len())
	}
}

func TestAppendWithoutPublisher(t *testing.T) {
	svc := NewExpenseService(memory.New(), nil)
	if _, err := svc.Append(context.Background(), newExpense()); err != nil {
		t.Fatalf("append: %v", err)
	}
}

func TestAppendPropagatesStoreFailure(t *testing.T) {
	pub := &capturingPublisher{}
	svc := NewExpenseService(failingStore{}, pub)

	_, err := svc.Append(context.Background(), newExpense())
	if !errors.Is(err, ledger.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
	if len(pub.messages) != 0 {
		t.Fatal("no event should be published for a failed write")
	}
}

type failingStore struct{}

func (failingStore) Append(context.Context, ledger.NewExpense) (core.ExpenseRecord, error) {
	return core.ExpenseRecord{}, ledger.ErrStorage
}

func (failingStore) QueryByWindow(context.Context, string, core.Window, time.Time) ([]core.CategoryTotal, error) {
	return nil, ledger.ErrStorage
}
