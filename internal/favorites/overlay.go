// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

// Package favorites tracks which catalog items the user has favorited and
// applies that state to nodes on their way out of the resolver.
package favorites

import (
	"sort"
	"sync"

	"github.com/tomtom215/mediabrowser/internal/models"
)

// Overlay is the set of favorited identities. Cached data is never modified;
// favorite state is applied to copies at read time by Hydrate.
//
// A node matches when its playable source or its path is in the set.
type Overlay struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

// NewOverlay creates an overlay holding ids.
func NewOverlay(ids ...string) *Overlay {
	o := &Overlay{}
	o.SetAll(ids)
	return o
}

// SetAll replaces the whole favorite set. Concurrent readers observe either
// the previous or the new set, never a mix.
func (o *Overlay) SetAll(ids []string) {
	next := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id != "" {
			next[id] = struct{}{}
		}
	}
	o.mu.Lock()
	o.ids = next
	o.mu.Unlock()
}

// Set adds or removes a single identity and reports whether the set changed.
func (o *Overlay) Set(id string, favorited bool) bool {
	if id == "" {
		return false
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	_, had := o.ids[id]
	if favorited == had {
		return false
	}
	if favorited {
		o.ids[id] = struct{}{}
	} else {
		delete(o.ids, id)
	}
	return true
}

// Contains reports whether id is favorited.
func (o *Overlay) Contains(id string) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	_, ok := o.ids[id]
	return ok
}

// IDs returns the favorited identities in sorted order.
func (o *Overlay) IDs() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]string, 0, len(o.ids))
	for id := range o.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Hydrate returns a copy of node with Favorited filled in from the set.
// A node that already carries an explicit favorite value keeps it.
func (o *Overlay) Hydrate(node models.Node) models.Node {
	out := node.Clone()
	if out.Favorited != nil {
		return out
	}
	o.mu.RLock()
	fav := o.matchLocked(out)
	o.mu.RUnlock()
	out.Favorited = &fav
	return out
}

// HydrateAll hydrates nodes against one consistent view of the set.
func (o *Overlay) HydrateAll(nodes []models.Node) []models.Node {
	if nodes == nil {
		return nil
	}
	out := make([]models.Node, len(nodes))
	o.mu.RLock()
	defer o.mu.RUnlock()
	for i := range nodes {
		n := nodes[i].Clone()
		if n.Favorited == nil {
			fav := o.matchLocked(n)
			n.Favorited = &fav
		}
		out[i] = n
	}
	return out
}

// HydrateContainer returns a copy of c with every child hydrated.
func (o *Overlay) HydrateContainer(c *models.Container) *models.Container {
	if c == nil {
		return nil
	}
	return &models.Container{
		Node:     c.Node.Clone(),
		Children: o.HydrateAll(c.Children),
	}
}

func (o *Overlay) matchLocked(n models.Node) bool {
	for _, id := range n.Identities() {
		if _, ok := o.ids[id]; ok {
			return true
		}
	}
	return false
}
