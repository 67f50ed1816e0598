// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package cache

import (
	"sync"
	"time"

	"github.com/tomtom215/mediabrowser/internal/metrics"
	"github.com/tomtom215/mediabrowser/internal/models"
)

// Default capacities.
const (
	DefaultContentCapacity = 50
	DefaultLeafCapacity    = 500
)

// Cache names used as metric labels.
const (
	ContentCacheName = "content"
	LeafCacheName    = "leaf"
	SearchCacheName  = "search"
)

// ContentCache holds resolved containers keyed by their normalized path.
// Stored and returned containers are clones, so callers never share state
// with the cache.
type ContentCache struct {
	lru *LRU[*models.Container]
}

// NewContentCache creates a content cache with the given capacity and TTL.
func NewContentCache(capacity int, ttl time.Duration) *ContentCache {
	if capacity <= 0 {
		capacity = DefaultContentCapacity
	}
	return &ContentCache{lru: NewLRU[*models.Container](ContentCacheName, capacity, ttl)}
}

// Get returns a copy of the container cached under path.
func (c *ContentCache) Get(path string) (*models.Container, bool) {
	v, ok := c.lru.Get(path)
	if !ok {
		return nil, false
	}
	return v.Clone(), true
}

// Set caches a copy of container under path.
func (c *ContentCache) Set(path string, container *models.Container) {
	c.lru.Set(path, container.Clone())
}

// Remove evicts path and reports whether it was cached.
func (c *ContentCache) Remove(path string) bool { return c.lru.Remove(path) }

// CleanupExpired drops entries past their TTL and returns how many were removed.
func (c *ContentCache) CleanupExpired() int { return c.lru.CleanupExpired() }

// Clear empties the cache.
func (c *ContentCache) Clear() { c.lru.Clear() }

// Stats returns the cache counters.
func (c *ContentCache) Stats() Stats { return c.lru.Stats() }

// LeafCache remembers individual nodes under every identity they have, so a
// node can be found later by its contextual path or by its playable source.
type LeafCache struct {
	lru *LRU[models.Node]
}

// NewLeafCache creates a leaf cache with the given capacity and TTL.
func NewLeafCache(capacity int, ttl time.Duration) *LeafCache {
	if capacity <= 0 {
		capacity = DefaultLeafCapacity
	}
	return &LeafCache{lru: NewLRU[models.Node](LeafCacheName, capacity, ttl)}
}

// Put stores node under each of its identities. Nodes without any identity
// are ignored.
func (c *LeafCache) Put(node models.Node) {
	ids := node.Identities()
	if len(ids) == 0 {
		return
	}
	c.lru.SetMany(ids, node.Clone())
}

// PutAll stores every node in order.
func (c *LeafCache) PutAll(nodes []models.Node) {
	for i := range nodes {
		c.Put(nodes[i])
	}
}

// Get looks a node up by path or playable source.
func (c *LeafCache) Get(id string) (models.Node, bool) {
	n, ok := c.lru.Get(id)
	if !ok {
		return models.Node{}, false
	}
	return n.Clone(), true
}

// Clear empties the cache.
func (c *LeafCache) Clear() { c.lru.Clear() }

// CleanupExpired drops identities past their TTL and returns how many were removed.
func (c *LeafCache) CleanupExpired() int { return c.lru.CleanupExpired() }

// Stats returns the cache counters.
func (c *LeafCache) Stats() Stats { return c.lru.Stats() }

// SearchMemo remembers the results of the most recent search only.
// Querying anything other than the remembered query is a miss.
type SearchMemo struct {
	mu      sync.Mutex
	query   string
	results []models.Node
	valid   bool
}

// NewSearchMemo creates an empty single-slot search cache.
func NewSearchMemo() *SearchMemo {
	return &SearchMemo{}
}

// Get returns a copy of the results if query equals the remembered query.
func (m *SearchMemo) Get(query string) ([]models.Node, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.valid || m.query != query {
		metrics.RecordCacheAccess(SearchCacheName, false)
		return nil, false
	}
	metrics.RecordCacheAccess(SearchCacheName, true)
	return cloneNodes(m.results), true
}

// Set replaces the remembered query and results.
func (m *SearchMemo) Set(query string, results []models.Node) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.query = query
	m.results = cloneNodes(results)
	m.valid = true
}

// Clear forgets the remembered search.
func (m *SearchMemo) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.query, m.results, m.valid = "", nil, false
}

func cloneNodes(nodes []models.Node) []models.Node {
	out := make([]models.Node, len(nodes))
	for i := range nodes {
		out[i] = nodes[i].Clone()
	}
	return out
}
