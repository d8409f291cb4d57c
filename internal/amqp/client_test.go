package amqp

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestExponentialBackoff(t *testing.T) {
	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{0, 1 * time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{4, 16 * time.Second},
		{5, 30 * time.Second},  // capped at 30s
		{10, 30 * time.Second}, // capped at 30s
		{-1, 30 * time.Second},
		{40, 30 * time.Second}, // would overflow the shift
		{64, 30 * time.Second},
		{1 << 30, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("attempt_%d", tt.attempt), func(t *testing.T) {
			result := exponentialBackoff(tt.attempt)
			if result != tt.expected {
				t.Errorf("exponentialBackoff(%d) = %v, want %v", tt.attempt, result, tt.expected)
			}
		})
	}
}

// The wait must stay within [1s, 30s] no matter how long an outage lasts;
// a zero or negative wait would turn the reconnect loop into a busy loop.
func TestExponentialBackoffStaysBounded(t *testing.T) {
	for attempt := 0; attempt < 128; attempt++ {
		got := exponentialBackoff(attempt)
		if got < time.Second || got > 30*time.Second {
			t.Fatalf("exponentialBackoff(%d) = %v, outside [1s, 30s]", attempt, got)
		}
	}
}

func TestIsConnectionError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"connection refused", errors.New("dial tcp: connection refused"), true},
		{"connection closed", errors.New("connection closed by server"), true},
		{"EOF", errors.New("unexpected EOF"), true},
		{"broken pipe", errors.New("write: broken pipe"), true},
		{"channel not open", errors.New("Exception (504) Reason: \"channel/connection is not open\""), true},
		{"unrelated error", errors.New("access refused for user"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isConnectionError(tt.err); got != tt.expected {
				t.Errorf("isConnectionError(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestExpenseRecordedMessageJSON(t *testing.T) {
	msg := &ExpenseRecordedMessage{
		ID:          42,
		SenderID:    "whatsapp:+5511999990000",
		Date:        "2025-03-15",
		AmountCents: 1250,
		Category:    "food",
		RawText:     "Gastei 12,50 no mercado",
		Timestamp:   time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC),
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := ExpenseRecordedMessageFromJSON(body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if *got != *msg {
		t.Fatalf("roundtrip mismatch:\n got %+v\nwant %+v", got, msg)
	}

	if _, err := ExpenseRecordedMessageFromJSON([]byte("{not json")); err == nil {
		t.Fatal("expected error for malformed body")
	}
}
