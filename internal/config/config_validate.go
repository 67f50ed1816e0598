// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/mediabrowser/internal/logging"
	"github.com/tomtom215/mediabrowser/internal/routing"
	"github.com/tomtom215/mediabrowser/internal/validation"
)

// Validate checks that the configuration is complete and consistent.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.validateUpstream(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateRoutes()
}

// validateLogging validates the log level.
func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}

// validateUpstream validates the shared upstream base URL when set.
func (c *Config) validateUpstream() error {
	if c.Upstream.BaseURL == "" {
		return nil
	}
	return validateHTTPURL(c.Upstream.BaseURL, "UPSTREAM_BASE_URL")
}

// validateSecurity validates inbound rate limiting bounds.
func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQS must be at least 1 when rate limiting is enabled")
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive when rate limiting is enabled")
	}
	return nil
}

// validateRoutes checks route declarations: unique patterns, exactly one
// source per route, and a resolvable base URL for every HTTP route.
func (c *Config) validateRoutes() error {
	seen := make(map[string]int, len(c.Routes))
	for i, r := range c.Routes {
		if prev, dup := seen[r.Pattern]; dup {
			return fmt.Errorf("routes[%d]: pattern %q already declared by routes[%d]", i, r.Pattern, prev)
		}
		seen[r.Pattern] = i

		if err := validatePattern(r.Pattern); err != nil {
			return fmt.Errorf("routes[%d]: %w", i, err)
		}

		switch {
		case r.Static != nil && r.HTTP != nil:
			return fmt.Errorf("routes[%d] (%s): declare either static or http, not both", i, r.Pattern)
		case r.Static == nil && r.HTTP == nil:
			return fmt.Errorf("routes[%d] (%s): a source (static or http) is required", i, r.Pattern)
		case r.Static != nil:
			for j := range r.Static.Children {
				if err := r.Static.Children[j].Validate(); err != nil {
					return fmt.Errorf("routes[%d] (%s) child %d: %w", i, r.Pattern, j, err)
				}
			}
		case r.HTTP != nil:
			base := r.HTTP.BaseURL
			if base == "" {
				base = c.Upstream.BaseURL
			}
			if base == "" {
				return fmt.Errorf("routes[%d] (%s): http route needs base_url or UPSTREAM_BASE_URL", i, r.Pattern)
			}
			if err := validateHTTPURL(base, fmt.Sprintf("routes[%d].http.base_url", i)); err != nil {
				return err
			}
		}
	}
	return nil
}

// validatePattern rejects a catch-all segment anywhere but last.
func validatePattern(pattern string) error {
	if routing.IsReserved(pattern) {
		return nil
	}
	segments := strings.Split(strings.Trim(pattern, "/"), "/")
	for i, seg := range segments {
		if seg == "**" && i != len(segments)-1 {
			return fmt.Errorf("pattern %q: ** is only allowed as the last segment", pattern)
		}
	}
	return nil
}
