// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package source

import (
	"fmt"

	"github.com/tomtom215/mediabrowser/internal/config"
)

// Route binds a pattern (or reserved key) to the source that resolves it.
type Route struct {
	Pattern string
	Source  Source
}

// NewExecutorFromConfig builds the shared HTTP executor from the upstream and
// breaker sections.
func NewExecutorFromConfig(cfg *config.Config) *HTTPExecutor {
	base := RequestConfig{Headers: cfg.Upstream.Headers}
	if cfg.Upstream.BaseURL != "" {
		base.BaseURL = StringPtr(cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.Timeout > 0 {
		timeout := cfg.Upstream.Timeout
		base.Timeout = &timeout
	}

	breaker := DefaultBreakerSettings()
	breaker.MaxRequests = cfg.Breaker.MaxRequests
	breaker.Interval = cfg.Breaker.Interval
	breaker.Timeout = cfg.Breaker.Timeout
	breaker.MinRequests = cfg.Breaker.MinRequests
	breaker.FailureRatio = cfg.Breaker.FailureRatio

	return NewHTTPExecutor(ExecutorConfig{
		Base:      base,
		RateLimit: cfg.Upstream.RateLimit,
		Burst:     cfg.Upstream.Burst,
		Breaker:   breaker,
	})
}

// RoutesFromConfig builds routes in declaration order. HTTP routes share exec.
func RoutesFromConfig(declared []config.RouteConfig, exec *HTTPExecutor) ([]Route, error) {
	routes := make([]Route, 0, len(declared))
	for i, rc := range declared {
		src, err := FromRouteConfig(rc, exec)
		if err != nil {
			return nil, fmt.Errorf("route %d (%s): %w", i, rc.Pattern, err)
		}
		routes = append(routes, Route{Pattern: rc.Pattern, Source: src})
	}
	return routes, nil
}

// FromRouteConfig builds the source declared by one route.
func FromRouteConfig(rc config.RouteConfig, exec *HTTPExecutor) (Source, error) {
	switch {
	case rc.Static != nil && rc.HTTP != nil:
		return nil, fmt.Errorf("%w: both static and http declared", ErrInvalidSource)
	case rc.Static != nil:
		return NewStatic(rc.Static.Clone()), nil
	case rc.HTTP != nil:
		if exec == nil {
			return nil, fmt.Errorf("%w: http route has no executor", ErrInvalidSource)
		}
		return NewHTTP(requestConfigFrom(rc.HTTP), exec), nil
	default:
		return nil, fmt.Errorf("%w: no source declared", ErrInvalidSource)
	}
}

// requestConfigFrom converts a declared route template into a request layer.
// Empty strings and zero durations leave the upstream value in place.
func requestConfigFrom(h *config.HTTPRouteConfig) RequestConfig {
	rc := RequestConfig{Headers: h.Headers, Query: h.Query}
	setString := func(dst **string, v string) {
		if v != "" {
			*dst = StringPtr(v)
		}
	}
	setString(&rc.BaseURL, h.BaseURL)
	setString(&rc.Path, h.Path)
	setString(&rc.Method, h.Method)
	setString(&rc.Body, h.Body)
	setString(&rc.ContentType, h.ContentType)
	if h.Timeout > 0 {
		timeout := h.Timeout
		rc.Timeout = &timeout
	}
	return rc
}
