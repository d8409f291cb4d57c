package worker

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gastobot/internal/amqp"
)

func testMessage(id int64) *amqp.ExpenseRecordedMessage {
	return &amqp.ExpenseRecordedMessage{
		ID:          id,
		SenderID:    "whatsapp:+5511999990000",
		Date:        "2025-03-15",
		AmountCents: 1250,
		Category:    "food",
		RawText:     "Gastei 12,50 no mercado",
		Timestamp:   time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestHandleRecordedWritesRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export", "expenses.csv")
	w, err := NewExportWorker(path)
	if err != nil {
		t.Fatalf("new worker: %v", err)
	}

	if err := w.HandleRecorded(testMessage(1)); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if err := w.HandleRecorded(testMessage(2)); err != nil {
		t.Fatalf("handle: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	// header + two rows, header written only once
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0][0] != "id" {
		t.Fatalf("missing header, first row %v", rows[0])
	}
	if rows[1][0] != "1" || rows[2][0] != "2" {
		t.Fatalf("unexpected ids: %v / %v", rows[1], rows[2])
	}
	if rows[1][3] != "1250" || rows[1][4] != "food" {
		t.Fatalf("unexpected row: %v", rows[1])
	}
}
