// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package resolver

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tomtom215/mediabrowser/internal/logging"
	"github.com/tomtom215/mediabrowser/internal/models"
	"github.com/tomtom215/mediabrowser/internal/routing"
	"github.com/tomtom215/mediabrowser/internal/source"
)

// SearchQueryParam is the parameter name the search route receives the query under.
const SearchQueryParam = "query"

// SearchPath is the path of the synthetic container wrapping results for query.
func SearchPath(query string) string {
	return "/search?q=" + url.QueryEscape(query)
}

// Search runs the reserved search route. The most recent query and its
// results are remembered; repeating that query does not call the source.
// Results are validated and added to the leaf cache, and are returned wrapped
// in a container titled with the query.
func (r *Resolver) Search(ctx context.Context, query string) (*models.Container, error) {
	path := SearchPath(query)
	ctx = logging.ContextWithNavigation(ctx, path)

	if results, ok := r.search.Get(query); ok {
		logging.Ctx(ctx).Debug().Msg("Search cache hit")
		return r.searchContainer(query, results), nil
	}

	route, gen, ok := r.reserved(routing.SearchKey)
	if !ok {
		return nil, r.fail(ctx, path, fmt.Errorf("%w: no search route declared", ErrNoRoute))
	}

	c, err := r.execute(ctx, route, source.Request{
		Path:   path,
		Query:  query,
		Params: map[string]string{SearchQueryParam: query},
	})
	if err != nil {
		return nil, r.fail(ctx, path, err)
	}
	if err := validateNodes(path, c.Children); err != nil {
		return nil, r.fail(ctx, path, err)
	}

	r.mu.RLock()
	if gen == r.generation {
		r.search.Set(query, c.Children)
		r.leaves.PutAll(c.Children)
	}
	r.mu.RUnlock()

	return r.searchContainer(query, c.Children), nil
}

func (r *Resolver) searchContainer(query string, results []models.Node) *models.Container {
	return &models.Container{
		Node:     models.Node{Path: SearchPath(query), Title: query},
		Children: r.favorites.HydrateAll(results),
	}
}
