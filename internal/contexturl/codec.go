// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

// Package contexturl encodes a playable leaf together with the container it was
// found in, so that playback can later rebuild the surrounding queue.
//
// Wire format: <containerPath>?__leaf=<query-escaped leaf id>. When the container
// path already carries a query string the marker is appended with "&".
package contexturl

import (
	"net/url"
	"strings"
)

// Marker is the query parameter that carries the leaf identity.
const Marker = "__leaf"

const markerAssign = Marker + "="

// Encode builds the contextual URL for leafID inside containerPath.
func Encode(containerPath, leafID string) string {
	sep := "?"
	if strings.Contains(containerPath, "?") {
		sep = "&"
	}
	return containerPath + sep + markerAssign + url.QueryEscape(leafID)
}

// Decode splits a contextual URL into its container path and leaf id.
// ok is false when path carries no well-formed marker.
func Decode(path string) (containerPath, leafID string, ok bool) {
	idx := strings.LastIndex(path, markerAssign)
	if idx < 1 {
		return "", "", false
	}
	if c := path[idx-1]; c != '?' && c != '&' {
		return "", "", false
	}
	id, err := url.QueryUnescape(path[idx+len(markerAssign):])
	if err != nil {
		return "", "", false
	}
	return path[:idx-1], id, true
}

// Normalize returns the container path for a contextual URL and path unchanged otherwise.
func Normalize(path string) string {
	if container, _, ok := Decode(path); ok {
		return container
	}
	return path
}
