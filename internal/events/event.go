// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package events

import (
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/mediabrowser/internal/models"
	"github.com/tomtom215/mediabrowser/internal/resolver"
)

// TopicCatalog is the topic all resolver notifications are published on.
const TopicCatalog = "catalog.events"

// Event types
const (
	TypePathChanged     = "path_changed"
	TypeContentChanged  = "content_changed"
	TypeTabsChanged     = "tabs_changed"
	TypeNavigationError = "navigation_error"
)

// Event is the wire form of a single resolver notification.
// Only the field matching Type is set; Content and Error are null when
// content was cleared or an error was resolved.
type Event struct {
	ID        string                    `json:"id"`
	Type      string                    `json:"type"`
	Path      string                    `json:"path,omitempty"`
	Content   *models.Container         `json:"content,omitempty"`
	Tabs      []models.Node             `json:"tabs,omitempty"`
	Error     *resolver.NavigationError `json:"error,omitempty"`
	Timestamp time.Time                 `json:"timestamp"`
}

// Marshal encodes the event as JSON.
func (e *Event) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// Unmarshal decodes an event payload.
func Unmarshal(data []byte) (*Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}
