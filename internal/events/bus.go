// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// BusConfig configures the in-process event bus.
type BusConfig struct {
	// OutputChannelBuffer is the per-subscriber channel buffer.
	OutputChannelBuffer int64

	// Logger receives Watermill's internal logs. Defaults to a zerolog adapter.
	Logger watermill.LoggerAdapter
}

// DefaultBusConfig returns the configuration used by the server.
func DefaultBusConfig() BusConfig {
	return BusConfig{OutputChannelBuffer: 256}
}

// Bus is a GoChannel pub/sub. Publish blocks until every subscriber has
// acknowledged the message, which keeps events in emission order.
type Bus struct {
	pubsub *gochannel.GoChannel
	logger watermill.LoggerAdapter

	mu     sync.RWMutex
	closed bool
}

// NewBus creates an in-process bus.
func NewBus(cfg BusConfig) *Bus {
	if cfg.Logger == nil {
		cfg.Logger = NewZerologAdapter()
	}
	if cfg.OutputChannelBuffer <= 0 {
		cfg.OutputChannelBuffer = DefaultBusConfig().OutputChannelBuffer
	}

	ps := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer:            cfg.OutputChannelBuffer,
		BlockPublishUntilSubscriberAck: true,
	}, cfg.Logger)

	return &Bus{pubsub: ps, logger: cfg.Logger}
}

// Publish sends messages to topic.
func (b *Bus) Publish(topic string, msgs ...*message.Message) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return fmt.Errorf("publish to %s: bus closed", topic)
	}
	return b.pubsub.Publish(topic, msgs...)
}

// Subscribe returns a channel of messages for topic. Every message must be
// acked or nacked; publishers block until it is.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, topic)
}

// Logger returns the adapter used by the bus.
func (b *Bus) Logger() watermill.LoggerAdapter {
	return b.logger
}

// Close shuts the bus down. Subscriber channels are closed.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	return b.pubsub.Close()
}
