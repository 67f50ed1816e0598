// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

/*
Package models defines the catalog data structures shared by every layer of
Mediabrowser.

Key Components:

  - Node: a catalog item, browsable (Path), playable (PlayableSource) or both
  - Container: a browsable node with ordered children, the unit of caching
  - Queue: the playable children of a container plus a start index
  - Field: tri-state Unset | Null | Value used when decoding request overrides

Invariants:

  - Every node that leaves a route source has a Path or a PlayableSource
    (see Node.Validate).
  - Favorited is nil when unknown; an explicit true/false supplied by a source
    is preserved by the favorites overlay.
  - Values handed out of caches are clones; callers may modify them freely.

Usage Example:

	album := &models.Container{
	    Node: models.Node{Path: "/albums/42", Title: "Blue Train"},
	    Children: []models.Node{
	        {PlayableSource: "track-1", Title: "Blue Train"},
	        {PlayableSource: "track-2", Title: "Moment's Notice"},
	    },
	}
	queue := album.Playable()
*/
package models
