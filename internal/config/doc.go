// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

/*
Package config loads and validates Mediabrowser configuration.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file (CONFIG_PATH, ./config.yaml, /etc/mediabrowser/config.yaml), then
environment variables. Only mapped environment variables are read.

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8730)
  - SERVER_TIMEOUT: Request timeout (default: 30s)
  - ENVIRONMENT: development, staging or production

Catalog caches:
  - CONTENT_CACHE_SIZE: Resolved containers kept (default: 50)
  - LEAF_CACHE_SIZE: Playable leaves kept (default: 500)
  - CONTENT_CACHE_TTL: Container expiry, 0 disables (default: 0)
  - PRELOAD_TABS: Resolve the tab bar at startup (default: true)

Upstream catalog API:
  - UPSTREAM_BASE_URL: Base URL shared by HTTP routes
  - UPSTREAM_HEADERS: Comma-separated key=value headers
  - UPSTREAM_TIMEOUT: Request timeout (default: 30s)
  - UPSTREAM_RATE_LIMIT / UPSTREAM_BURST: Outbound limiter (default: 20/s, burst 10)
  - BREAKER_*: Circuit breaker tuning

Favorites:
  - FAVORITES_ENABLED: Persist favorites in BadgerDB (default: false)
  - FAVORITES_PATH: BadgerDB directory (default: /data/favorites)

Security:
  - RATE_LIMIT_REQS / RATE_LIMIT_WINDOW: Inbound limit (default: 100/1m)
  - DISABLE_RATE_LIMIT: Turn inbound limiting off
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)

# Routes

Routes are declared in the YAML file only. Each route has a pattern and
exactly one source:

	routes:
	  - pattern: /artists/{id}/albums
	    http:
	      path: /v1/artists/{id}/albums
	      headers: { X-Client: mediabrowser }
	  - pattern: __search__
	    http:
	      path: /v1/search
	  - pattern: __default__
	    static:
	      title: Nothing here
	      children:
	        - { title: Home, path: /home }

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal(err)
	}
*/
package config
