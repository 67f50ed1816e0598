// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package cache

import (
	"sync"
	"time"

	"github.com/tomtom215/mediabrowser/internal/metrics"
)

// lruEntry is a node in the recency list.
type lruEntry[V any] struct {
	key       string
	value     V
	prev      *lruEntry[V]
	next      *lruEntry[V]
	expiresAt time.Time // zero when the cache has no TTL
}

// LRU is a thread-safe least recently used cache with optional TTL.
//
// Get and Set both mark the key most recently used. Inserting a new key into a
// full cache evicts exactly the least recently used entry. Updating an existing
// key never evicts.
//
// The recency order is a doubly-linked list with sentinel head and tail;
// head.next is the most recently used entry, tail.prev the least recently used.
type LRU[V any] struct {
	mu sync.RWMutex

	name     string
	capacity int
	ttl      time.Duration

	items map[string]*lruEntry[V]
	head  *lruEntry[V]
	tail  *lruEntry[V]

	hits      int64
	misses    int64
	evictions int64

	now func() time.Time
}

// NewLRU creates an LRU cache. name labels the cache in metrics; a ttl of zero
// disables expiry. A non-positive capacity is treated as 1.
func NewLRU[V any](name string, capacity int, ttl time.Duration) *LRU[V] {
	if capacity <= 0 {
		capacity = 1
	}
	c := &LRU[V]{
		name:     name,
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*lruEntry[V], capacity),
		head:     &lruEntry[V]{},
		tail:     &lruEntry[V]{},
		now:      time.Now,
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c
}

// Get returns the value for key and marks it most recently used.
func (c *LRU[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	entry, ok := c.items[key]
	if !ok {
		c.recordMiss()
		return zero, false
	}
	if c.expired(entry) {
		c.removeEntry(entry)
		c.evictions++
		metrics.CacheEvictions.WithLabelValues(c.name).Inc()
		c.recordMiss()
		return zero, false
	}
	c.moveToFront(entry)
	c.hits++
	metrics.RecordCacheAccess(c.name, true)
	return entry.value, true
}

// Set inserts or replaces the value for key and marks it most recently used.
func (c *LRU[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(key, value)
}

// SetMany stores several keys under one lock acquisition, in order.
func (c *LRU[V]) SetMany(keys []string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		c.setLocked(k, value)
	}
}

// Remove deletes key and reports whether it was present.
func (c *LRU[V]) Remove(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		return false
	}
	c.removeEntry(entry)
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(len(c.items)))
	return true
}

// Clear removes all entries.
func (c *LRU[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*lruEntry[V], c.capacity)
	c.head.next = c.tail
	c.tail.prev = c.head
	metrics.CacheSize.WithLabelValues(c.name).Set(0)
}

// CleanupExpired removes all expired entries and returns how many were removed.
func (c *LRU[V]) CleanupExpired() int {
	if c.ttl <= 0 {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for entry := c.tail.prev; entry != c.head; {
		prev := entry.prev
		if c.expired(entry) {
			c.removeEntry(entry)
			removed++
		}
		entry = prev
	}
	if removed > 0 {
		c.evictions += int64(removed)
		metrics.CacheEvictions.WithLabelValues(c.name).Add(float64(removed))
		metrics.CacheSize.WithLabelValues(c.name).Set(float64(len(c.items)))
	}
	return removed
}

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Size      int   `json:"size"`
	Capacity  int   `json:"capacity"`
}

// Stats returns hit/miss/eviction counters and the current size.
func (c *LRU[V]) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

// Internal methods (must be called with lock held)

func (c *LRU[V]) setLocked(key string, value V) {
	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = c.now().Add(c.ttl)
	}

	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = expiresAt
		c.moveToFront(entry)
		return
	}

	entry := &lruEntry[V]{key: key, value: value, expiresAt: expiresAt}
	c.addToFront(entry)
	c.items[key] = entry

	for len(c.items) > c.capacity {
		c.evictOldest()
	}
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(len(c.items)))
}

func (c *LRU[V]) recordMiss() {
	c.misses++
	metrics.RecordCacheAccess(c.name, false)
}

func (c *LRU[V]) expired(entry *lruEntry[V]) bool {
	return !entry.expiresAt.IsZero() && c.now().After(entry.expiresAt)
}

func (c *LRU[V]) addToFront(entry *lruEntry[V]) {
	entry.prev = c.head
	entry.next = c.head.next
	c.head.next.prev = entry
	c.head.next = entry
}

func (c *LRU[V]) moveToFront(entry *lruEntry[V]) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	c.addToFront(entry)
}

func (c *LRU[V]) removeEntry(entry *lruEntry[V]) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	delete(c.items, entry.key)
}

func (c *LRU[V]) evictOldest() {
	oldest := c.tail.prev
	if oldest == c.head {
		return
	}
	c.removeEntry(oldest)
	c.evictions++
	metrics.CacheEvictions.WithLabelValues(c.name).Inc()
}
