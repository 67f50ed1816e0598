// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package services

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/tomtom215/mediabrowser/internal/logging"
)

// WatchFunc starts watching path and calls onChange on every write.
// config.WatchConfigFile has this signature.
type WatchFunc func(path string, onChange func()) (stop func() error, err error)

// ReloadFunc rereads the configuration and applies the new routes.
type ReloadFunc func(ctx context.Context) error

// RouteReloadService reapplies declared routes when the config file changes.
// A failed reload is logged and the running routes stay in place.
type RouteReloadService struct {
	path     string
	watch    WatchFunc
	reload   ReloadFunc
	debounce time.Duration
	name     string

	reloads  atomic.Int64
	failures atomic.Int64
}

// NewRouteReloadService watches path with watch and calls reload after
// writes settle for debounce.
func NewRouteReloadService(path string, watch WatchFunc, reload ReloadFunc, debounce time.Duration) *RouteReloadService {
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}
	return &RouteReloadService{
		path:     path,
		watch:    watch,
		reload:   reload,
		debounce: debounce,
		name:     "route-reload",
	}
}

func (s *RouteReloadService) Serve(ctx context.Context) error {
	changes := make(chan struct{}, 1)
	stop, err := s.watch(s.path, func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", s.path, err)
	}
	defer func() {
		if err := stop(); err != nil {
			logging.Warn().Err(err).Str("path", s.path).Msg("failed to stop config watcher")
		}
	}()
	logging.Info().Str("path", s.path).Msg("watching config file for route changes")

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-changes:
			settle = time.After(s.debounce)
		case <-settle:
			settle = nil
			s.apply(ctx)
		}
	}
}

func (s *RouteReloadService) apply(ctx context.Context) {
	if err := s.reload(ctx); err != nil {
		s.failures.Add(1)
		logging.Error().Err(err).Str("path", s.path).Msg("route reload failed, keeping current routes")
		return
	}
	s.reloads.Add(1)
	logging.Info().Str("path", s.path).Msg("routes reloaded")
}

// Reloads returns the number of successful and failed reloads.
func (s *RouteReloadService) Reloads() (ok, failed int64) {
	return s.reloads.Load(), s.failures.Load()
}

func (s *RouteReloadService) String() string {
	return s.name
}
