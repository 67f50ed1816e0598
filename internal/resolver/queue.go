// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package resolver

import (
	"context"
	"fmt"

	"github.com/tomtom215/mediabrowser/internal/contexturl"
	"github.com/tomtom215/mediabrowser/internal/logging"
	"github.com/tomtom215/mediabrowser/internal/models"
)

// ExpandQueueFromContextualURL turns the selection of one leaf into a queue
// of every playable sibling. The parent container is resolved cache
// preferring, and Index points at the selected leaf.
func (r *Resolver) ExpandQueueFromContextualURL(ctx context.Context, path string) (*models.Queue, error) {
	ctx = logging.ContextWithNavigation(ctx, path)

	containerPath, leafID, ok := contexturl.Decode(path)
	if !ok {
		return nil, r.fail(ctx, path, fmt.Errorf("%w: %s", ErrNotContextual, path))
	}

	parent, err := r.resolveRaw(ctx, containerPath, true, nil)
	if err != nil {
		return nil, r.fail(ctx, containerPath, err)
	}

	playable := parent.Playable()
	for i := range playable {
		if playable[i].PlayableSource == leafID {
			return &models.Queue{Items: r.favorites.HydrateAll(playable), Index: i}, nil
		}
	}
	return nil, r.fail(ctx, path, fmt.Errorf("%w: %q in %s", ErrLeafNotFound, leafID, containerPath))
}

// Leaf looks up a previously resolved item by path or playable source and
// returns it with its favorite flag hydrated.
func (r *Resolver) Leaf(id string) (models.Node, bool) {
	n, ok := r.leaves.Get(id)
	if !ok {
		return models.Node{}, false
	}
	return r.favorites.Hydrate(n), true
}
