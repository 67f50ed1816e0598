// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/tomtom215/mediabrowser/internal/logging"
)

// errSubscriptionClosed is returned when the bus closes the subscription
// while the service is still running.
var errSubscriptionClosed = errors.New("event subscription closed")

// Subscriber is satisfied by *events.Bus.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
}

// Broadcaster is satisfied by *websocket.Hub.
type Broadcaster interface {
	BroadcastRaw(data []byte)
}

// EventBridgeService forwards catalog events from the bus to WebSocket
// clients. Every message is acked once handed to the hub; the hub never
// blocks, so a slow browser cannot stall resolver notifications.
type EventBridgeService struct {
	bus   Subscriber
	topic string
	hub   Broadcaster
	name  string

	received  atomic.Int64
	forwarded atomic.Int64
}

// NewEventBridgeService creates a bridge for topic.
func NewEventBridgeService(bus Subscriber, topic string, hub Broadcaster) *EventBridgeService {
	return &EventBridgeService{
		bus:   bus,
		topic: topic,
		hub:   hub,
		name:  "event-bridge",
	}
}

// Serve subscribes and forwards until ctx is canceled. A subscription that
// closes early is an error so the supervisor resubscribes.
func (b *EventBridgeService) Serve(ctx context.Context) error {
	msgs, err := b.bus.Subscribe(ctx, b.topic)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", b.topic, err)
	}
	logging.Debug().Str("topic", b.topic).Msg("event bridge subscribed")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return errSubscriptionClosed
			}
			b.received.Add(1)
			b.hub.BroadcastRaw(msg.Payload)
			b.forwarded.Add(1)
			msg.Ack()
		}
	}
}

// Stats returns bridge counters.
func (b *EventBridgeService) Stats() EventBridgeStats {
	return EventBridgeStats{
		MessagesReceived:  b.received.Load(),
		MessagesForwarded: b.forwarded.Load(),
	}
}

// EventBridgeStats holds runtime statistics.
type EventBridgeStats struct {
	MessagesReceived  int64
	MessagesForwarded int64
}

func (b *EventBridgeService) String() string {
	return b.name
}
