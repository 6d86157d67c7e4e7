package models

import (
	"sync"
	"time"
)

// eventsCache holds the unfiltered all-events result set with a fixed TTL.
// Filtered loads bypass it entirely. The mutex only guards this in-process
// state; file reads and rewrites stay unsynchronized.
type eventsCache struct {
	mu       sync.Mutex
	items    []Event
	loadedAt time.Time
	ttl      time.Duration
}

func (c *eventsCache) get(now time.Time) ([]Event, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.items == nil || c.loadedAt.IsZero() {
		return nil, false
	}
	if now.Sub(c.loadedAt) >= c.ttl {
		return nil, false
	}
	return c.items, true
}

func (c *eventsCache) set(items []Event, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.loadedAt = now
}

func (c *eventsCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.loadedAt = time.Time{}
}

// InvalidateEvents drops the cached events set so the next unfiltered load
// re-parses the file. Called after a successful event update.
func (cr *CsvRepo) InvalidateEvents() {
	cr.events.invalidate()
}

// venuesCache has no TTL: loaded once, reused until a force refresh.
type venuesCache struct {
	mu     sync.Mutex
	items  []Venue
	loaded bool
}

func (c *venuesCache) get() ([]Venue, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items, c.loaded
}

func (c *venuesCache) set(items []Venue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.loaded = true
}
