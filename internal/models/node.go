// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package models

import "errors"

// ErrInvalidNode is returned when a node has neither a browsable path nor a playable source.
var ErrInvalidNode = errors.New("node must have a path or a playable source")

// Node is a single item in the media catalog.
//
// A node with a Path is browsable (it leads to another container); a node with a
// PlayableSource can be played. Nodes that have both are browsable and playable.
// Favorited is nil when the favorite state is unknown or not applicable.
type Node struct {
	Path           string  `json:"path,omitempty" koanf:"path"`
	PlayableSource string  `json:"src,omitempty" koanf:"src"`
	Title          string  `json:"title" koanf:"title"`
	Subtitle       string  `json:"subtitle,omitempty" koanf:"subtitle"`
	Description    string  `json:"description,omitempty" koanf:"description"`
	Artist         string  `json:"artist,omitempty" koanf:"artist"`
	Album          string  `json:"album,omitempty" koanf:"album"`
	Artwork        string  `json:"artwork,omitempty" koanf:"artwork"`
	Duration       float64 `json:"duration,omitempty" koanf:"duration"`
	Favorited      *bool   `json:"favorited,omitempty" koanf:"favorited"`
}

// IsPlayable reports whether the node can be played.
func (n Node) IsPlayable() bool {
	return n.PlayableSource != ""
}

// Validate checks the browsable-or-playable invariant.
func (n Node) Validate() error {
	if n.Path == "" && n.PlayableSource == "" {
		return ErrInvalidNode
	}
	return nil
}

// Identities returns the keys the node can be looked up by, playable source first.
// Empty identities are omitted.
func (n Node) Identities() []string {
	ids := make([]string, 0, 2)
	if n.PlayableSource != "" {
		ids = append(ids, n.PlayableSource)
	}
	if n.Path != "" && n.Path != n.PlayableSource {
		ids = append(ids, n.Path)
	}
	return ids
}

// Clone returns a copy that shares no mutable state with n.
func (n Node) Clone() Node {
	if n.Favorited != nil {
		fav := *n.Favorited
		n.Favorited = &fav
	}
	return n
}

// WithFavorited returns a copy of n with the favorite state set explicitly.
func (n Node) WithFavorited(fav bool) Node {
	n.Favorited = &fav
	return n
}

// Container is a browsable node together with its ordered children.
// The container's own Path is the key under which it is cached.
type Container struct {
	Node     `koanf:",squash"`
	Children []Node `json:"children" koanf:"children"`
}

// Clone returns a deep copy of the container.
func (c *Container) Clone() *Container {
	if c == nil {
		return nil
	}
	out := &Container{Node: c.Node.Clone()}
	if c.Children != nil {
		out.Children = make([]Node, len(c.Children))
		for i := range c.Children {
			out.Children[i] = c.Children[i].Clone()
		}
	}
	return out
}

// Playable returns the playable children in their original order.
func (c *Container) Playable() []Node {
	if c == nil {
		return nil
	}
	items := make([]Node, 0, len(c.Children))
	for i := range c.Children {
		if c.Children[i].IsPlayable() {
			items = append(items, c.Children[i])
		}
	}
	return items
}

// Queue is a playback queue built from a container's playable children.
// Index points at the item that should start playing.
type Queue struct {
	Items []Node `json:"items"`
	Index int    `json:"index"`
}
