// Package worker exports recorded expenses consumed from the event queue.
package worker

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"gastobot/internal/amqp"
)

// csvHeader is written once when the export file is created.
var csvHeader = []string{"id", "sender_id", "date", "amount_cents", "category", "raw_text", "recorded_at"}

// ExportWorker appends recorded expenses to a CSV file, one row per event.
// Rows are flushed per message so a crash loses at most the in-flight one;
// the broker redelivers it anyway because the handler error nacks.
type ExportWorker struct {
	mu   sync.Mutex
	path string
}

func NewExportWorker(path string) (*ExportWorker, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}
	return &ExportWorker{path: path}, nil
}

// HandleRecorded is the AMQP consume handler. Returning an error requeues
// the event.
func (w *ExportWorker) HandleRecorded(msg *amqp.ExpenseRecordedMessage) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	writeHeader := false
	if info, err := os.Stat(w.path); err != nil || info.Size() == 0 {
		writeHeader = true
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if writeHeader {
		if err := cw.Write(csvHeader); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	row := []string{
		strconv.FormatInt(msg.ID, 10),
		msg.SenderID,
		msg.Date,
		strconv.FormatInt(msg.AmountCents, 10),
		msg.Category,
		msg.RawText,
		msg.Timestamp.UTC().Format(time.RFC3339),
	}
	if err := cw.Write(row); err != nil {
		return fmt.Errorf("write row: %w", err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush export file: %w", err)
	}

	slog.Info("Exported expense", "id", msg.ID, "sender", msg.SenderID, "path", w.path)
	return nil
}
