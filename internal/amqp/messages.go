package amqp

import (
	"encoding/json"
	"time"
)

// ExpenseRecordedMessage is published after an expense lands in the ledger.
// It carries enough to export the record downstream without another read.
type ExpenseRecordedMessage struct {
	ID          int64     `json:"id"`
	SenderID    string    `json:"sender_id"`
	Date        string    `json:"date"` // YYYY-MM-DD
	AmountCents int64     `json:"amount_cents"`
	Category    string    `json:"category"`
	RawText     string    `json:"raw_text"`
	Timestamp   time.Time `json:"timestamp"`
}

// ToJSON converts the message to JSON bytes
func (m *ExpenseRecordedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ExpenseRecordedMessageFromJSON creates a message from JSON bytes
func ExpenseRecordedMessageFromJSON(data []byte) (*ExpenseRecordedMessage, error) {
	var msg ExpenseRecordedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
