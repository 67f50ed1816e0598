// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/mediabrowser/internal/resolver"
	ws "github.com/tomtom215/mediabrowser/internal/websocket"
)

// ReadinessCheck reports whether one dependency can serve traffic.
type ReadinessCheck func(ctx context.Context) error

// HandlerOptions configures a Handler.
type HandlerOptions struct {
	// CORSOrigins are the origins accepted for WebSocket upgrades. "*" accepts any.
	CORSOrigins []string

	// ReadinessChecks are evaluated by /health/ready in addition to the route table check.
	ReadinessChecks map[string]ReadinessCheck
}

// Handler serves the catalog operations over HTTP.
type Handler struct {
	resolver  *resolver.Resolver
	hub       *ws.Hub
	upgrader  websocket.Upgrader
	checks    map[string]ReadinessCheck
	startTime time.Time
}

// NewHandler creates a handler for res. hub may be nil, in which case the
// WebSocket endpoint answers 503.
func NewHandler(res *resolver.Resolver, hub *ws.Hub, opts HandlerOptions) *Handler {
	return &Handler{
		resolver:  res,
		hub:       hub,
		upgrader:  newUpgrader(opts.CORSOrigins),
		checks:    opts.ReadinessChecks,
		startTime: time.Now(),
	}
}

func newUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		HandshakeTimeout: 10 * time.Second,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return false
			}
			for _, allowed := range allowedOrigins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			return false
		},
	}
}
