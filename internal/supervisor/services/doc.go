// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

/*
Package services adapts server components to suture.Service.

Each wrapper implements

	Serve(ctx context.Context) error

and fmt.Stringer for suture's log messages. Wrappers depend on small
interfaces rather than concrete packages so they can be tested with fakes.

  - HTTPServerService: ListenAndServe with graceful Shutdown on cancel
  - WebSocketHubService: runs the hub loop
  - EventBridgeService: subscribes to the catalog topic and forwards each
    event to the hub, acknowledging after hand-off
  - RouteReloadService: watches the config file and reapplies routes
  - TabPreloadService: loads the tab list once, retried by the supervisor
    until it succeeds
  - CacheJanitorService: sweeps expired cache entries on a ticker

Services return ctx.Err() on shutdown. Any other error makes suture restart
them with backoff; suture.ErrDoNotRestart marks one-shot services as done.
*/
package services
