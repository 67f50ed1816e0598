// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package services

import (
	"context"
	"fmt"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/mediabrowser/internal/logging"
	"github.com/tomtom215/mediabrowser/internal/models"
)

// TabLoader is satisfied by *resolver.Resolver.
type TabLoader interface {
	LoadTabs(ctx context.Context) ([]models.Node, error)
}

// TabPreloadService loads the tab list once at startup. Failures are returned
// so the supervisor retries with backoff; success ends the service.
type TabPreloadService struct {
	loader TabLoader
	name   string
}

// NewTabPreloadService wraps loader.
func NewTabPreloadService(loader TabLoader) *TabPreloadService {
	return &TabPreloadService{loader: loader, name: "tab-preload"}
}

func (s *TabPreloadService) Serve(ctx context.Context) error {
	tabs, err := s.loader.LoadTabs(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("preload tabs: %w", err)
	}
	logging.Info().Int("tabs", len(tabs)).Msg("tabs preloaded")
	return suture.ErrDoNotRestart
}

func (s *TabPreloadService) String() string {
	return s.name
}
