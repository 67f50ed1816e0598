// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and are
exposed at /metrics by the API router:

	curl http://localhost:3857/metrics

# Available Metrics

Cache Metrics (label cache_type: content, leaf, search):
  - catalog_cache_hits_total / catalog_cache_misses_total (counter)
  - catalog_cache_entries (gauge)
  - catalog_cache_evictions_total (counter)

Resolution Metrics:
  - catalog_resolve_duration_seconds (histogram, labels: source, outcome)
  - catalog_navigation_errors_total (counter, label: kind)
  - catalog_navigation_superseded_total (counter)

Upstream Metrics:
  - upstream_requests_total (counter, labels: method, status_code)
  - upstream_rate_limit_wait_seconds (histogram)
  - circuit_breaker_* (state, requests, consecutive failures, transitions)

API and WebSocket Metrics:
  - api_requests_total, api_request_duration_seconds, api_active_requests
  - websocket_connections, websocket_messages_sent_total, websocket_errors_total
  - catalog_events_published_total (label: event_type)
*/
package metrics
