// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

/*
Package api exposes the catalog resolver over HTTP using the chi router.

Endpoints (all under /api/v1):

	POST   /navigate            make a path current and resolve it
	GET    /browse?path=&cache= resolve without changing the current path
	POST   /resolve             resolve with per-call request overrides (use_cache defaults to true)
	GET    /search?q=           run the search route
	GET    /queue?path=         expand a contextual URL into a play queue
	DELETE /cache?path=         invalidate one cached container
	GET    /cache/stats         cache counters
	GET    /favorites           list favorite ids
	PUT    /favorites           replace the favorite set
	PUT    /favorites/{id}      add or remove one favorite
	GET    /tabs                tab list, loaded on first use
	GET    /state               current navigation snapshot
	GET    /leaf?id=            cached leaf lookup
	GET    /ws                  change notifications over WebSocket
	GET    /health/live, /ready probes

Prometheus metrics are served at /metrics.

Every JSON response uses the APIResponse envelope. Resolution failures map
to HTTP status by error kind:

	content-not-found      404
	http-error             502
	network-error          504 on timeout, otherwise 502
	invalid-configuration  500
	unknown-error          500

The classified error is returned in error.details. A navigation that was
superseded by a newer one answers 409.
*/
package api
