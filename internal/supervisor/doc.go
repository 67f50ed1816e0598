// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

/*
Package supervisor runs the server's long-lived services under suture v4.

The tree has three layers so a failure in one does not restart the others:

	RootSupervisor ("mediabrowser")
	├── CatalogSupervisor ("catalog-layer")
	│   ├── RouteReloadService   (config file watch, when a file is in use)
	│   ├── TabPreloadService    (when CATALOG preload_tabs is set)
	│   └── CacheJanitorService  (when content_cache_ttl is set)
	├── MessagingSupervisor ("messaging-layer")
	│   ├── WebSocketHubService
	│   └── EventBridgeService   (bus → hub)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events are
logged through sutureslog, whose slog handler is backed by zerolog
(logging.NewSlogLogger), so they share the application's log stream.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	err = tree.Serve(ctx)

The service wrappers live in the services subpackage.
*/
package supervisor
