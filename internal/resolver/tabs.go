// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package resolver

import (
	"context"
	"fmt"

	"github.com/tomtom215/mediabrowser/internal/logging"
	"github.com/tomtom215/mediabrowser/internal/models"
	"github.com/tomtom215/mediabrowser/internal/routing"
	"github.com/tomtom215/mediabrowser/internal/source"
)

// LoadTabs resolves the reserved tabs route, stores its children as the tab
// list and publishes them. Tabs are not cached; every call hits the source.
func (r *Resolver) LoadTabs(ctx context.Context) ([]models.Node, error) {
	ctx = logging.ContextWithNavigation(ctx, routing.TabsKey)

	route, _, ok := r.reserved(routing.TabsKey)
	if !ok {
		return nil, r.fail(ctx, routing.TabsKey, fmt.Errorf("%w: no tabs route declared", ErrNoRoute))
	}

	c, err := r.execute(ctx, route, source.Request{Path: routing.TabsKey, Params: map[string]string{}})
	if err != nil {
		return nil, r.fail(ctx, routing.TabsKey, err)
	}
	if err := validateNodes(routing.TabsKey, c.Children); err != nil {
		return nil, r.fail(ctx, routing.TabsKey, err)
	}

	tabs := c.Clone().Children
	if tabs == nil {
		tabs = []models.Node{}
	}

	r.mu.Lock()
	r.state.tabs = tabs
	r.unlockAndNotify(tabsChanged(r.favorites.HydrateAll(tabs)))

	logging.Ctx(ctx).Debug().Int("tabs", len(tabs)).Msg("Loaded tabs")
	return r.favorites.HydrateAll(tabs), nil
}
