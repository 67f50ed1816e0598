// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package resolver

import (
	"github.com/tomtom215/mediabrowser/internal/cache"
	"github.com/tomtom215/mediabrowser/internal/models"
)

// Status is the navigation state machine position.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusResolving Status = "resolving"
	StatusResolved  Status = "resolved"
	StatusFailed    Status = "failed"
)

// Snapshot is a consistent copy of the observable state.
type Snapshot struct {
	Path    string            `json:"path"`
	Status  Status            `json:"status"`
	Content *models.Container `json:"content"`
	Tabs    []models.Node     `json:"tabs"`
	Error   *NavigationError  `json:"error,omitempty"`
}

// state is the published navigation state. content holds the un-hydrated
// container so favorite changes can be re-applied to it.
type state struct {
	path    string
	status  Status
	content *models.Container
	tabs    []models.Node
	lastErr *NavigationError
}

// Path returns the current navigation path.
func (r *Resolver) Path() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.path
}

// Status returns the navigation state.
func (r *Resolver) Status() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.status
}

// Content returns a hydrated copy of the current content, nil when none.
func (r *Resolver) Content() *models.Container {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.favorites.HydrateContainer(r.state.content)
}

// Tabs returns a hydrated copy of the tab list.
func (r *Resolver) Tabs() []models.Node {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.favorites.HydrateAll(r.state.tabs)
}

// LastError returns the error of the last failed navigation, nil after a success.
func (r *Resolver) LastError() *NavigationError {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.lastErr
}

// Snapshot returns all observable state read at one instant.
func (r *Resolver) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Snapshot{
		Path:    r.state.path,
		Status:  r.state.status,
		Content: r.favorites.HydrateContainer(r.state.content),
		Tabs:    r.favorites.HydrateAll(r.state.tabs),
		Error:   r.state.lastErr,
	}
}

// CacheStats reports the content and leaf cache counters.
type CacheStats struct {
	Content cache.Stats `json:"content"`
	Leaf    cache.Stats `json:"leaf"`
}

// CacheStats returns the current cache counters.
func (r *Resolver) CacheStats() CacheStats {
	return CacheStats{Content: r.content.Stats(), Leaf: r.leaves.Stats()}
}

// CleanupExpired drops content and leaf entries past their TTL and returns
// how many were removed. It is a no-op when the caches have no TTL.
func (r *Resolver) CleanupExpired() int {
	return r.content.CleanupExpired() + r.leaves.CleanupExpired()
}
