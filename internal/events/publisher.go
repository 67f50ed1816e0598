// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package events

import (
	"sync/atomic"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/tomtom215/mediabrowser/internal/metrics"
	"github.com/tomtom215/mediabrowser/internal/models"
	"github.com/tomtom215/mediabrowser/internal/resolver"
)

// MessagePublisher is the part of Bus the Publisher needs.
type MessagePublisher interface {
	Publish(topic string, msgs ...*message.Message) error
}

// Publisher is a resolver.Listener that forwards every notification to the bus.
// Publish failures are logged and counted; they never reach the resolver.
type Publisher struct {
	pub    MessagePublisher
	topic  string
	logger watermill.LoggerAdapter
	now    func() time.Time

	published atomic.Int64
	failed    atomic.Int64
}

var _ resolver.Listener = (*Publisher)(nil)

// NewPublisher creates a listener publishing to TopicCatalog on bus.
func NewPublisher(bus *Bus) *Publisher {
	return NewPublisherFor(bus, TopicCatalog, bus.Logger())
}

// NewPublisherFor creates a listener publishing to an arbitrary topic.
func NewPublisherFor(pub MessagePublisher, topic string, logger watermill.LoggerAdapter) *Publisher {
	if logger == nil {
		logger = NewZerologAdapter()
	}
	return &Publisher{pub: pub, topic: topic, logger: logger, now: time.Now}
}

func (p *Publisher) OnPathChanged(path string) {
	p.publish(&Event{Type: TypePathChanged, Path: path})
}

func (p *Publisher) OnContentChanged(content *models.Container) {
	ev := &Event{Type: TypeContentChanged, Content: content}
	if content != nil {
		ev.Path = content.Path
	}
	p.publish(ev)
}

func (p *Publisher) OnTabsChanged(tabs []models.Node) {
	p.publish(&Event{Type: TypeTabsChanged, Tabs: tabs})
}

func (p *Publisher) OnNavigationError(err *resolver.NavigationError) {
	ev := &Event{Type: TypeNavigationError, Error: err}
	if err != nil {
		ev.Path = err.Path
	}
	p.publish(ev)
}

func (p *Publisher) publish(ev *Event) {
	ev.ID = watermill.NewUUID()
	ev.Timestamp = p.now().UTC()

	payload, err := ev.Marshal()
	if err != nil {
		p.failed.Add(1)
		p.logger.Error("failed to encode catalog event", err, watermill.LogFields{"event_type": ev.Type})
		return
	}

	msg := message.NewMessage(ev.ID, payload)
	msg.Metadata.Set("event_type", ev.Type)

	if err := p.pub.Publish(p.topic, msg); err != nil {
		p.failed.Add(1)
		p.logger.Error("failed to publish catalog event", err, watermill.LogFields{"event_type": ev.Type})
		return
	}
	p.published.Add(1)
	metrics.EventsPublished.WithLabelValues(ev.Type).Inc()
}

// Stats returns publish counters.
func (p *Publisher) Stats() PublisherStats {
	return PublisherStats{
		Published: p.published.Load(),
		Failed:    p.failed.Load(),
	}
}

// PublisherStats holds runtime statistics.
type PublisherStats struct {
	Published int64
	Failed    int64
}
