// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package config

import (
	"net"
	"strconv"
	"time"

	"github.com/tomtom215/mediabrowser/internal/models"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Route declarations are only read from the config file; every other section
// can be overridden from the environment.
//
// Config is immutable after LoadWithKoanf and safe for concurrent reads.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Upstream  UpstreamConfig  `koanf:"upstream"`
	Breaker   BreakerConfig   `koanf:"breaker"`
	Favorites FavoritesConfig `koanf:"favorites"`
	Security  SecurityConfig  `koanf:"security"`
	Routes    []RouteConfig   `koanf:"routes" validate:"dive"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port" validate:"gte=1,lte=65535"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout" validate:"gte=0"`
	Environment string        `koanf:"environment" validate:"omitempty,oneof=development staging production"`
}

// LoggingConfig holds logging settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"omitempty,oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// CatalogConfig sizes the resolver caches.
//
// Environment Variables:
//   - CONTENT_CACHE_SIZE: resolved containers kept (default: 50)
//   - LEAF_CACHE_SIZE: playable leaves kept (default: 500)
//   - CONTENT_CACHE_TTL: optional expiry for cached containers (default: 0, never)
//   - PRELOAD_TABS: resolve the tab bar at startup (default: true)
type CatalogConfig struct {
	ContentCacheSize int           `koanf:"content_cache_size" validate:"gte=1"`
	LeafCacheSize    int           `koanf:"leaf_cache_size" validate:"gte=1"`
	ContentCacheTTL  time.Duration `koanf:"content_cache_ttl" validate:"gte=0"`
	PreloadTabs      bool          `koanf:"preload_tabs"`
}

// UpstreamConfig is the base request layer shared by every HTTP route.
//
// Environment Variables:
//   - UPSTREAM_BASE_URL: catalog API base URL
//   - UPSTREAM_TIMEOUT: request timeout (default: 30s)
//   - UPSTREAM_RATE_LIMIT: outbound requests per second, 0 disables (default: 20)
//   - UPSTREAM_BURST: limiter burst (default: 10)
//   - UPSTREAM_HEADERS: comma-separated key=value pairs added to every request
type UpstreamConfig struct {
	BaseURL   string            `koanf:"base_url"`
	Headers   map[string]string `koanf:"headers"`
	Timeout   time.Duration     `koanf:"timeout" validate:"gte=0"`
	RateLimit float64           `koanf:"rate_limit" validate:"gte=0"`
	Burst     int               `koanf:"burst" validate:"gte=0"`
}

// BreakerConfig configures the upstream circuit breaker.
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests" validate:"gte=1"`
	Interval     time.Duration `koanf:"interval" validate:"gte=0"`
	Timeout      time.Duration `koanf:"timeout" validate:"gt=0"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio" validate:"gt=0,lte=1"`
}

// FavoritesConfig controls favorites persistence.
//
// Environment Variables:
//   - FAVORITES_ENABLED: persist favorites in BadgerDB (default: false)
//   - FAVORITES_PATH: BadgerDB directory, empty keeps it in memory
type FavoritesConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

// SecurityConfig holds inbound HTTP protections.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"gte=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gte=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// RouteConfig declares one route: a pattern and exactly one source.
// Reserved keys (__default__, __search__, __tabs__) are valid patterns.
//
// Example:
//
//	routes:
//	  - pattern: /albums/{id}
//	    http:
//	      path: /catalog/albums/{id}
//	  - pattern: __tabs__
//	    static:
//	      title: Tabs
//	      children:
//	        - { title: Home, path: /home }
type RouteConfig struct {
	Pattern string            `koanf:"pattern" validate:"required,catalogpath"`
	Static  *models.Container `koanf:"static"`
	HTTP    *HTTPRouteConfig  `koanf:"http"`
}

// HTTPRouteConfig is the route request layer. Empty fields inherit from the
// upstream section; Path may reference pattern parameters as {name}.
type HTTPRouteConfig struct {
	BaseURL     string            `koanf:"base_url"`
	Path        string            `koanf:"path"`
	Method      string            `koanf:"method" validate:"omitempty,httpmethod"`
	Headers     map[string]string `koanf:"headers"`
	Query       map[string]string `koanf:"query"`
	Body        string            `koanf:"body"`
	ContentType string            `koanf:"content_type"`
	Timeout     time.Duration     `koanf:"timeout" validate:"gte=0"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
