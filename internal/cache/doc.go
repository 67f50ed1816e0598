// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

/*
Package cache provides the bounded in-memory caches used by the catalog resolver.

Key Components:

  - LRU: generic thread-safe least recently used cache (O(1) get/set/evict,
    optional TTL with lazy expiration and a CleanupExpired sweep, hit/miss/eviction counters exported to
    Prometheus under the cache's name)
  - ContentCache: resolved containers keyed by normalized path
  - LeafCache: individual nodes keyed by both contextual path and playable source
  - SearchMemo: a single-slot cache holding only the latest search

Caches are process-local and never persisted. Every value is cloned on the way
in and out so that hydration or mutation by callers cannot leak into the cache.

Usage Example:

	content := cache.NewContentCache(cache.DefaultContentCapacity, 0)
	content.Set("/albums/42", album)
	if c, ok := content.Get("/albums/42"); ok {
	    render(c)
	}
*/
package cache
