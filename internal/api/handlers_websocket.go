// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/mediabrowser/internal/logging"
	ws "github.com/tomtom215/mediabrowser/internal/websocket"
)

// registerTimeout bounds the wait for the hub loop to accept a client.
const registerTimeout = 5 * time.Second

// WebSocket handles GET /api/v1/ws. The client first receives a "state"
// snapshot, then every change notification in publication order.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		NewResponseWriter(w, r).ServiceUnavailable("change notifications are disabled", nil)
		return
	}

	// Upgrade writes its own error response on failure.
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Str("origin", r.Header.Get("Origin")).Msg("WebSocket upgrade failed")
		return
	}

	client := ws.NewClient(h.hub, conn)
	timer := time.NewTimer(registerTimeout)
	defer timer.Stop()
	select {
	case h.hub.Register <- client:
	case <-timer.C:
		logging.Ctx(r.Context()).Error().Msg("WebSocket hub not accepting clients")
		_ = conn.Close()
		return
	}
	client.Start()

	logging.Ctx(r.Context()).Debug().Uint64("client_id", client.ID()).Msg("WebSocket client connected")
}
