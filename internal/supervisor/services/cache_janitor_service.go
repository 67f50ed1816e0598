// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/tomtom215/mediabrowser/internal/logging"
)

// minJanitorInterval bounds how often expired entries are swept.
const minJanitorInterval = time.Second

// ExpiryCleaner is satisfied by *resolver.Resolver.
type ExpiryCleaner interface {
	CleanupExpired() int
}

// CacheJanitorService periodically drops cache entries past their TTL so
// expired content does not hold memory until it is next looked up.
type CacheJanitorService struct {
	cleaner  ExpiryCleaner
	interval time.Duration
	name     string

	removed atomic.Int64
}

// NewCacheJanitorService sweeps cleaner every interval. Intervals below one
// second are raised to one second.
func NewCacheJanitorService(cleaner ExpiryCleaner, interval time.Duration) *CacheJanitorService {
	if interval < minJanitorInterval {
		interval = minJanitorInterval
	}
	return &CacheJanitorService{cleaner: cleaner, interval: interval, name: "cache-janitor"}
}

// Serve implements suture.Service.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *CacheJanitorService) sweep() {
	n := s.cleaner.CleanupExpired()
	if n == 0 {
		return
	}
	s.removed.Add(int64(n))
	logging.Debug().Int("removed", n).Msg("Expired cache entries removed")
}

// Removed returns the total number of entries swept since start.
func (s *CacheJanitorService) Removed() int64 {
	return s.removed.Load()
}

func (s *CacheJanitorService) String() string {
	return s.name
}
