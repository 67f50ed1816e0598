// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

/*
Package events carries resolver change notifications over an in-process
Watermill bus.

The resolver delivers notifications synchronously to its listeners. The
Publisher listener turns each one into an Event, encodes it as JSON and
publishes it on TopicCatalog. Consumers (the WebSocket bridge in the
supervisor package) subscribe to the same topic and fan events out.

The bus is a GoChannel pub/sub configured to block each publish until the
subscriber acknowledges it, so subscribers see events in the order the
resolver emitted them.

Event types:

	path_changed      the current path changed
	content_changed   new content (nil when content was cleared)
	tabs_changed      the tab list was reloaded or re-hydrated
	navigation_error  a navigation failed (nil error when cleared)

Usage:

	bus := events.NewBus(events.DefaultBusConfig())
	res.AddListener(events.NewPublisher(bus))

	msgs, err := bus.Subscribe(ctx, events.TopicCatalog)
	for msg := range msgs {
		var ev events.Event
		_ = json.Unmarshal(msg.Payload, &ev)
		msg.Ack()
	}
*/
package events
