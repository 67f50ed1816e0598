// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

/*
Package middleware provides HTTP middleware shared by the API router.

Components:

  - RequestID: assigns or propagates X-Request-ID and seeds the logging context
  - AccessLog: one structured zerolog line per request
  - PrometheusMetrics: request count, latency and in-flight gauges

All three are http.HandlerFunc decorators and are adapted to chi with the
router's chiMiddleware helper. PrometheusMetrics labels requests by chi
route pattern, so it must run inside the router rather than in front of it.

Order inside the router:

	RequestID -> AccessLog -> PrometheusMetrics -> handler

Response writers are wrapped with chi's WrapResponseWriter, which keeps
http.Hijacker available for the WebSocket endpoint.
*/
package middleware
