// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/mediabrowser/internal/api"
	"github.com/tomtom215/mediabrowser/internal/config"
	"github.com/tomtom215/mediabrowser/internal/favorites"
	"github.com/tomtom215/mediabrowser/internal/logging"
	"github.com/tomtom215/mediabrowser/internal/resolver"
	"github.com/tomtom215/mediabrowser/internal/source"
)

var errBreakerOpen = errors.New("upstream circuit breaker is open")

// openFavorites opens the persistent favorite store, nil when disabled.
func openFavorites(cfg config.FavoritesConfig) (*favorites.BadgerStore, error) {
	if !cfg.Enabled {
		logging.Info().Msg("Favorite persistence disabled")
		return nil, nil
	}
	store, err := favorites.OpenBadgerStore(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open favorites store at %s: %w", cfg.Path, err)
	}
	logging.Info().Str("path", cfg.Path).Msg("Favorites store opened")
	return store, nil
}

// breakerStater is the part of source.HTTPExecutor readiness needs.
type breakerStater interface {
	BreakerState() string
}

// readinessChecks reports not ready while the upstream breaker is open.
func readinessChecks(exec breakerStater) map[string]api.ReadinessCheck {
	return map[string]api.ReadinessCheck{
		"upstream": func(context.Context) error {
			if exec.BreakerState() == "open" {
				return errBreakerOpen
			}
			return nil
		},
	}
}

// routeSetter is the part of the resolver route reloads need.
type routeSetter interface {
	SetRoutes(routes []source.Route) error
}

var _ routeSetter = (*resolver.Resolver)(nil)

// reloadRoutes re-reads path and swaps the resolver's route table. Upstream
// and breaker settings are fixed at startup; only routes are reloaded.
func reloadRoutes(path string, exec *source.HTTPExecutor, res routeSetter) func(context.Context) error {
	return func(ctx context.Context) error {
		cfg, err := config.LoadFile(path)
		if err != nil {
			return err
		}
		routes, err := source.RoutesFromConfig(cfg.Routes, exec)
		if err != nil {
			return err
		}
		if err := res.SetRoutes(routes); err != nil {
			return err
		}
		logging.Ctx(ctx).Info().Int("routes", len(routes)).Msg("Routes reloaded")
		return nil
	}
}
