// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

/*
Package websocket pushes catalog change notifications to browser clients.

It uses gorilla/websocket with a hub-client architecture: the Hub owns the
set of connected clients and fans out messages, each Client runs a read and
a write goroutine.

	┌──────────┐
	│   Hub    │ ← catalog events from the bus bridge
	└────┬─────┘
	     │
	┌────┴─────┬─────────┬─────────┐
	│ Client1  │ Client2 │ Client3 │
	└──────────┴─────────┴─────────┘

Message Types:

  - state: sent once on connect, the resolver snapshot
  - path_changed, content_changed, tabs_changed, navigation_error: one
    per resolver notification, data is the catalog event
  - ping / pong: application level keepalive initiated by the client

Usage:

	hub := websocket.NewHub()
	hub.SetSnapshotFunc(func() interface{} { return res.Snapshot() })
	go hub.RunWithContext(ctx)

	// in the /api/v1/ws handler
	client := websocket.NewClient(hub, conn)
	hub.Register <- client
	client.Start()

Ordering:

The hub loop handles registration before broadcasts, so a new client sees
its state snapshot before any change processed afterwards. Broadcasts are
delivered to clients in connection order. A client whose send buffer is full
is disconnected rather than allowed to stall the others.

Timeouts:
  - writeWait: 10 seconds per write
  - pongWait: 60 seconds without a pong closes the connection
  - pingPeriod: 54 seconds
  - maxMessageSize: 4 KB inbound
*/
package websocket
