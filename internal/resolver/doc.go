// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

/*
Package resolver is the catalog navigation core. A Resolver matches catalog
paths against declared routes, runs the matched source, keeps the content,
leaf and search caches, hydrates favorite flags and publishes the navigation
state to listeners.

# Resolution

Resolve normalizes the path (a contextual URL resolves its container),
returns a cached copy when allowed, and otherwise runs the most specific
matching route, falling back to the __default__ route. Every child must have
a path or a playable source; playable children without a path receive a
contextual URL rooted at the container. Only successful results are cached.

# Navigation State

Navigate changes the current path and publishes the outcome:

	idle -> resolving -> resolved | failed

A newer navigation supersedes an older one: when a result arrives for a path
that is no longer current it is dropped and ErrSuperseded is returned.
Failures clear the current content and are kept as LastError.

# Errors

Every failure returned by the resolver is a *NavigationError whose Kind is
one of content-not-found, http-error, network-error, invalid-configuration
or unknown-error. The original error stays reachable with errors.Is and
errors.As.

# Notifications

Listeners receive OnPathChanged, OnContentChanged, OnTabsChanged and
OnNavigationError in the order the state changed. Listeners may read state
but must not call mutating methods synchronously.

# Usage

	routes, err := source.RoutesFromConfig(cfg.Routes, exec)
	r, err := resolver.New(routes, resolver.Options{ContentCacheSize: 50})
	r.AddListener(publisher)
	if err := r.Navigate(ctx, "/artists/42"); err != nil {
	    var navErr *resolver.NavigationError
	    if errors.As(err, &navErr) { ... }
	}
*/
package resolver
