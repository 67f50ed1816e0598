// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package resolver

import (
	"context"
	"errors"
	"fmt"
)

// ErrEmptyFavoriteID is returned by UpdateFavorite for an empty id.
var ErrEmptyFavoriteID = errors.New("favorite id is required")

// LoadFavorites replaces the favorite set with the persisted one.
// Without a store it is a no-op.
func (r *Resolver) LoadFavorites(ctx context.Context) error {
	if r.store == nil {
		return nil
	}
	ids, err := r.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load favorites: %w", err)
	}
	r.favorites.SetAll(ids)
	r.republish()
	return nil
}

// SetFavorites replaces the favorite set and re-publishes the current
// content with the new flags. Cached data is never modified.
func (r *Resolver) SetFavorites(ctx context.Context, ids []string) error {
	if r.store != nil {
		if err := r.store.Replace(ctx, ids); err != nil {
			return fmt.Errorf("persist favorites: %w", err)
		}
	}
	r.favorites.SetAll(ids)
	r.republish()
	return nil
}

// UpdateFavorite adds or removes one id.
func (r *Resolver) UpdateFavorite(ctx context.Context, id string, favorited bool) error {
	if id == "" {
		return ErrEmptyFavoriteID
	}
	if r.store != nil {
		if err := r.store.Put(ctx, id, favorited); err != nil {
			return fmt.Errorf("persist favorite %q: %w", id, err)
		}
	}
	if r.favorites.Set(id, favorited) {
		r.republish()
	}
	return nil
}

// Favorites returns the favorite ids, sorted.
func (r *Resolver) Favorites() []string {
	return r.favorites.IDs()
}

// republish re-sends the current content and tabs hydrated with the
// current favorite set.
func (r *Resolver) republish() {
	r.mu.Lock()
	var events []notification
	if r.state.content != nil {
		events = append(events, contentChanged(r.favorites.HydrateContainer(r.state.content)))
	}
	if len(r.state.tabs) > 0 {
		events = append(events, tabsChanged(r.favorites.HydrateAll(r.state.tabs)))
	}
	r.unlockAndNotify(events...)
}
