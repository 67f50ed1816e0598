// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package websocket

import (
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/mediabrowser/internal/logging"
	"github.com/tomtom215/mediabrowser/internal/metrics"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// Clients only send pings; anything larger is a protocol error.
	maxMessageSize = 4 * 1024

	sendBufferSize = 256
)

// clientIDCounter generates unique, monotonically increasing IDs so the hub
// can iterate clients in a stable order.
var clientIDCounter atomic.Uint64

// Client is a middleman between the websocket connection and the hub
type Client struct {
	id   uint64
	hub  *Hub
	conn *websocket.Conn

	// send is owned by the hub, which closes it on unregister.
	send chan Message

	// pong is signalled by readPump and drained by writePump so that only
	// the hub ever writes to send.
	pong chan struct{}
}

// NewClient creates a new Client with a unique deterministic ID
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		id:   clientIDCounter.Add(1),
		hub:  hub,
		conn: conn,
		send: make(chan Message, sendBufferSize),
		pong: make(chan struct{}, 1),
	}
}

// ID returns the client's unique identifier
func (c *Client) ID() uint64 {
	return c.id
}

// trySend queues a message without blocking. Only the hub goroutine calls it.
func (c *Client) trySend(msg Message) bool {
	select {
	case c.send <- msg:
		metrics.WSMessagesSent.Inc()
		return true
	default:
		return false
	}
}

// readPump pumps messages from the websocket connection to the hub
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister <- c
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logging.Error().Err(err).Uint64("client_id", c.id).Msg("failed to set read deadline")
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				metrics.WSErrors.WithLabelValues("unexpected_close").Inc()
				logging.Error().Err(err).Uint64("client_id", c.id).Msg("unexpected websocket close error")
			}
			return
		}

		if msg.Type == MessageTypePing {
			select {
			case c.pong <- struct{}{}:
			default:
			}
		}
	}
}

// writePump pumps messages from the hub to the websocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				// The hub closed the channel
				_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if !c.writeJSON(message) {
				return
			}

		case <-c.pong:
			if !c.writeJSON(Message{Type: MessageTypePong}) {
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) writeJSON(message Message) bool {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		logging.Error().Err(err).Uint64("client_id", c.id).Msg("failed to set write deadline")
		return false
	}
	payload, err := MarshalMessage(message)
	if err != nil {
		metrics.WSErrors.WithLabelValues("encode").Inc()
		logging.Error().Err(err).Uint64("client_id", c.id).Str("message_type", message.Type).Msg("failed to encode message")
		return false
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		metrics.WSErrors.WithLabelValues("write").Inc()
		logging.Error().Err(err).Uint64("client_id", c.id).Str("message_type", message.Type).Msg("failed to write JSON message")
		return false
	}
	return true
}

// Start begins reading and writing for the client
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}
