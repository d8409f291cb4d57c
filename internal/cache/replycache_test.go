package cache

import (
	"testing"
	"time"

	"gastobot/internal/core"
)

var testNow = time.Date(2025, 3, 15, 14, 0, 0, 0, time.UTC)

func TestReplyCacheSetGet(t *testing.T) {
	c := NewReplyCache(10, time.Minute)

	if _, ok := c.Get("a", core.Daily, testNow); ok {
		t.Fatal("expected miss on empty cache")
	}

	c.Set("a", core.Daily, testNow, "relatório")
	got, ok := c.Get("a", core.Daily, testNow)
	if !ok || got != "relatório" {
		t.Fatalf("got %q (ok=%v)", got, ok)
	}

	// Other windows and senders are independent keys.
	if _, ok := c.Get("a", core.Weekly, testNow); ok {
		t.Fatal("weekly should miss")
	}
	if _, ok := c.Get("b", core.Daily, testNow); ok {
		t.Fatal("sender b should miss")
	}
}

func TestReplyCacheTTL(t *testing.T) {
	c := NewReplyCache(10, 10*time.Millisecond)
	c.Set("a", core.Daily, testNow, "x")
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("a", core.Daily, testNow); ok {
		t.Fatal("expected entry to expire")
	}
	if c.CleanExpired() != 0 {
		// Get already dropped it
		t.Fatal("expired entry should be gone")
	}
}

// An entry written late in the day must not answer after midnight even
// while its TTL is alive: the daily window has rolled to a new range.
func TestReplyCacheDayRollover(t *testing.T) {
	c := NewReplyCache(10, time.Hour)

	beforeMidnight := time.Date(2025, 3, 15, 23, 59, 30, 0, time.UTC)
	afterMidnight := time.Date(2025, 3, 16, 0, 0, 30, 0, time.UTC)

	c.Set("a", core.Daily, beforeMidnight, "gastos de ontem")

	if got, ok := c.Get("a", core.Daily, beforeMidnight); !ok || got != "gastos de ontem" {
		t.Fatalf("same-day lookup should hit, got %q (ok=%v)", got, ok)
	}
	if _, ok := c.Get("a", core.Daily, afterMidnight); ok {
		t.Fatal("next-day lookup must miss despite the live TTL")
	}

	// Monthly entries roll over at month boundaries the same way.
	endOfMonth := time.Date(2025, 3, 31, 23, 59, 0, 0, time.UTC)
	nextMonth := time.Date(2025, 4, 1, 0, 1, 0, 0, time.UTC)
	c.Set("a", core.Monthly, endOfMonth, "gastos de março")
	if _, ok := c.Get("a", core.Monthly, nextMonth); ok {
		t.Fatal("new month must not see the previous month's entry")
	}
}

func TestReplyCacheInvalidate(t *testing.T) {
	c := NewReplyCache(10, time.Minute)
	c.Set("a", core.Daily, testNow, "d")
	c.Set("a", core.Monthly, testNow, "m")
	c.Set("b", core.Daily, testNow, "other")

	c.Invalidate("a")

	if _, ok := c.Get("a", core.Daily, testNow); ok {
		t.Fatal("daily entry should be invalidated")
	}
	if _, ok := c.Get("a", core.Monthly, testNow); ok {
		t.Fatal("monthly entry should be invalidated")
	}
	if _, ok := c.Get("b", core.Daily, testNow); !ok {
		t.Fatal("sender b must be untouched")
	}
}

func TestReplyCacheEviction(t *testing.T) {
	c := NewReplyCache(2, time.Minute)
	c.Set("a", core.Daily, testNow, "1")
	c.Set("b", core.Daily, testNow, "2")
	c.Set("c", core.Daily, testNow, "3")

	if c.Size() > 2 {
		t.Fatalf("size %d exceeds max", c.Size())
	}
	if _, ok := c.Get("c", core.Daily, testNow); !ok {
		t.Fatal("most recent entry should survive eviction")
	}
}
