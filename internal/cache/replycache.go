// Package cache memoizes generated report replies.
package cache

import (
	"strings"
	"sync"
	"time"

	"gastobot/internal/core"
)

// ReplyCache keeps recent report texts per sender and window for a short
// TTL. A sender's entries are dropped whenever one of their expenses lands,
// so a report generated after an append always reflects it.
type ReplyCache struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	entries map[string]entry
}

type entry struct {
	reply     string
	expiresAt time.Time
}

func NewReplyCache(maxSize int, ttl time.Duration) *ReplyCache {
	return &ReplyCache{
		maxSize: maxSize,
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

// key embeds the window's resolved day range so an entry written before a
// day rollover can never answer for the range after it, TTL or not.
func key(senderID string, w core.Window, now time.Time) string {
	from, to := w.Range(now)
	return senderID + "|" + string(w) + "|" + from.ISO() + "|" + to.ISO()
}

func (c *ReplyCache) Get(senderID string, w core.Window, now time.Time) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := key(senderID, w, now)
	e, ok := c.entries[k]
	if !ok {
		return "", false
	}
	if time.Now().After(e.expiresAt) {
		delete(c.entries, k)
		return "", false
	}
	return e.reply, true
}

func (c *ReplyCache) Set(senderID string, w core.Window, now time.Time, reply string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxSize {
		c.evictLocked()
	}
	c.entries[key(senderID, w, now)] = entry{
		reply:     reply,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Invalidate drops every entry of one sender, whatever window or day range
// it was keyed under.
func (c *ReplyCache) Invalidate(senderID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefix := senderID + "|"
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
}

// CleanExpired removes expired entries and returns how many were dropped.
func (c *ReplyCache) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	removed := 0
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

func (c *ReplyCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictLocked makes room by removing expired entries, falling back to the
// entry closest to expiry. Caller holds the lock.
func (c *ReplyCache) evictLocked() {
	now := time.Now()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	if len(c.entries) < c.maxSize {
		return
	}
	var oldestKey string
	var oldest time.Time
	for k, e := range c.entries {
		if oldestKey == "" || e.expiresAt.Before(oldest) {
			oldestKey = k
			oldest = e.expiresAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}
