// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

/*
Package main is the entry point for the Mediabrowser server.

Mediabrowser resolves hierarchical media catalog paths ("/albums/42") into
containers of browsable and playable nodes. Routes map path patterns to
static content or upstream HTTP endpoints. Results are cached, favorites are
overlaid at read time, and every navigation change is pushed to WebSocket
clients.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("mediabrowser")
	├── CatalogSupervisor ("catalog-layer")
	│   ├── Tab preload (optional, PRELOAD_TABS)
	│   ├── Cache janitor (when CONTENT_CACHE_TTL > 0)
	│   └── Route reload (when a config file is in use)
	├── MessagingSupervisor ("messaging-layer")
	│   ├── WebSocket Hub
	│   └── Event bridge (resolver events -> hub)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, YAML file and environment variables
 2. Logging: zerolog with JSON/console output modes
 3. Upstream executor: rate limiter and circuit breaker shared by HTTP routes
 4. Favorites store: BadgerDB (optional)
 5. Resolver: routes, caches, favorite overlay
 6. Event bus: Watermill GoChannel carrying resolver notifications
 7. WebSocket Hub and HTTP router
 8. Supervisor tree

# Configuration

	Priority: Environment variables > Config file > Defaults

The config file is read from CONFIG_PATH, ./config.yaml or
/etc/mediabrowser/config.yaml. Routes can only be declared in the file;
edits to it are picked up without a restart.

Example:

	upstream:
	  base_url: https://catalog.example.com
	  timeout: 10s
	routes:
	  - pattern: /albums/{id}
	    http:
	      path: /v1/albums/{id}
	  - pattern: __tabs__
	    static:
	      title: Tabs
	      children:
	        - { title: Albums, path: /albums }

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests, WebSocket clients receive a close frame, then the event bus and
favorites store are closed.
*/
package main
