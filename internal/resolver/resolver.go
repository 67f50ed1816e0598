// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package resolver

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/mediabrowser/internal/cache"
	"github.com/tomtom215/mediabrowser/internal/contexturl"
	"github.com/tomtom215/mediabrowser/internal/favorites"
	"github.com/tomtom215/mediabrowser/internal/logging"
	"github.com/tomtom215/mediabrowser/internal/metrics"
	"github.com/tomtom215/mediabrowser/internal/models"
	"github.com/tomtom215/mediabrowser/internal/routing"
	"github.com/tomtom215/mediabrowser/internal/source"
)

// Options configures a Resolver. Zero values select the defaults.
type Options struct {
	ContentCacheSize int
	LeafCacheSize    int
	CacheTTL         time.Duration

	// Favorites is the initial favorite set; nil starts empty.
	Favorites *favorites.Overlay

	// Store persists favorite changes when set.
	Store favorites.Store
}

// ResolveOptions tunes a single Resolve call.
type ResolveOptions struct {
	UseCache  bool
	Overrides *source.RequestConfig
}

// Resolver owns the route table, the caches, the favorite overlay and the
// published navigation state. All methods are safe for concurrent use.
type Resolver struct {
	mu         sync.RWMutex
	routes     []source.Route
	patterns   []string
	generation uint64 // bumped by SetRoutes; stale results are not cached
	state      state
	listeners  []Listener
	nextTicket uint64

	// Notifications are delivered in ticket order, outside mu.
	notifyMu   sync.Mutex
	notifyCond *sync.Cond
	served     uint64

	content   *cache.ContentCache
	leaves    *cache.LeafCache
	search    *cache.SearchMemo
	favorites *favorites.Overlay
	store     favorites.Store
}

// New creates a resolver serving routes.
func New(routes []source.Route, opts Options) (*Resolver, error) {
	overlay := opts.Favorites
	if overlay == nil {
		overlay = favorites.NewOverlay()
	}
	r := &Resolver{
		state:     state{status: StatusIdle},
		content:   cache.NewContentCache(opts.ContentCacheSize, opts.CacheTTL),
		leaves:    cache.NewLeafCache(opts.LeafCacheSize, opts.CacheTTL),
		search:    cache.NewSearchMemo(),
		favorites: overlay,
		store:     opts.Store,
	}
	r.notifyCond = sync.NewCond(&r.notifyMu)
	if err := r.SetRoutes(routes); err != nil {
		return nil, err
	}
	return r, nil
}

// SetRoutes replaces the whole route table and clears every cache, since
// cached data may belong to routes that no longer exist.
func (r *Resolver) SetRoutes(routes []source.Route) error {
	copied := make([]source.Route, len(routes))
	patterns := make([]string, len(routes))
	for i, rt := range routes {
		if rt.Pattern == "" {
			return fmt.Errorf("%w: route %d has no pattern", source.ErrInvalidSource, i)
		}
		if rt.Source == nil {
			return fmt.Errorf("%w: route %q has no source", source.ErrInvalidSource, rt.Pattern)
		}
		copied[i] = rt
		patterns[i] = rt.Pattern
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = copied
	r.patterns = patterns
	r.generation++
	r.content.Clear()
	r.leaves.Clear()
	r.search.Clear()
	return nil
}

// Patterns returns the declared patterns in declaration order.
func (r *Resolver) Patterns() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.patterns...)
}

// AddListener registers l for change notifications.
func (r *Resolver) AddListener(l Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Copy so notification batches already in flight keep their listener set.
	listeners := make([]Listener, len(r.listeners), len(r.listeners)+1)
	copy(listeners, r.listeners)
	r.listeners = append(listeners, l)
}

// Navigate makes path the current path, resolves it (cache preferring) and
// publishes the outcome. A failure clears the current content and is
// returned as a *NavigationError. If another navigation changed the current
// path before this one finished, nothing is published and ErrSuperseded is
// returned.
func (r *Resolver) Navigate(ctx context.Context, path string) error {
	ctx = logging.ContextWithNavigation(ctx, path)

	r.mu.Lock()
	var events []notification
	if r.state.path != path {
		r.state.path = path
		events = append(events, pathChanged(path))
	}
	r.state.status = StatusResolving
	r.unlockAndNotify(events...)

	raw, err := r.resolveRaw(ctx, path, true, nil)
	return r.publish(ctx, path, raw, err)
}

// Resolve returns the container for path without changing the published state.
func (r *Resolver) Resolve(ctx context.Context, path string, useCache bool) (*models.Container, error) {
	return r.ResolveWith(ctx, path, ResolveOptions{UseCache: useCache})
}

// ResolveWith is Resolve with per-call HTTP overrides.
func (r *Resolver) ResolveWith(ctx context.Context, path string, opts ResolveOptions) (*models.Container, error) {
	ctx = logging.ContextWithNavigation(ctx, path)
	raw, err := r.resolveRaw(ctx, path, opts.UseCache, opts.Overrides)
	if err != nil {
		return nil, r.fail(ctx, path, err)
	}
	return r.favorites.HydrateContainer(raw), nil
}

// InvalidateContentCache drops path from the content cache. When path is the
// current path it is re-resolved from its source and the result published.
func (r *Resolver) InvalidateContentCache(ctx context.Context, path string) error {
	normalized := contexturl.Normalize(path)
	removed := r.content.Remove(normalized)

	r.mu.RLock()
	current := r.state.path
	r.mu.RUnlock()

	logging.Ctx(ctx).Debug().Str("path", normalized).Bool("cached", removed).Msg("Invalidated content")

	if current == "" || contexturl.Normalize(current) != normalized {
		return nil
	}

	ctx = logging.ContextWithNavigation(ctx, current)
	raw, err := r.resolveRaw(ctx, current, false, nil)
	return r.publish(ctx, current, raw, err)
}

// resolveRaw returns the un-hydrated container for path, from the cache when
// allowed or from the matched route's source. Successful source results are
// cached; failures leave the caches untouched.
func (r *Resolver) resolveRaw(ctx context.Context, path string, useCache bool, overrides *source.RequestConfig) (*models.Container, error) {
	normalized := contexturl.Normalize(path)

	if useCache {
		if c, ok := r.content.Get(normalized); ok {
			logging.Ctx(ctx).Debug().Msg("Content cache hit")
			return c, nil
		}
	}

	route, match, gen, ok := r.lookup(normalized)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoRoute, normalized)
	}

	c, err := r.execute(ctx, route, source.Request{
		Path:      normalized,
		Params:    match.Params,
		Overrides: overrides,
	})
	if err != nil {
		return nil, err
	}

	prepared, err := prepareContainer(normalized, c)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	if gen == r.generation {
		r.content.Set(normalized, prepared)
		r.leaves.PutAll(prepared.Children)
	}
	r.mu.RUnlock()

	logging.Ctx(ctx).Debug().
		Str("route", route.Pattern).
		Int("children", len(prepared.Children)).
		Msg("Resolved content")
	return prepared, nil
}

// lookup selects the route for path: the most specific declared pattern,
// else the default route.
func (r *Resolver) lookup(path string) (source.Route, routing.Match, uint64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if idx, m := routing.FindBestMatch(path, r.patterns); idx >= 0 {
		return r.routes[idx], m, r.generation, true
	}
	if route, ok := r.reservedLocked(routing.DefaultKey); ok {
		return route, routing.Match{Params: map[string]string{}}, r.generation, true
	}
	return source.Route{}, routing.Match{}, r.generation, false
}

// reserved returns the route declared under a reserved key.
func (r *Resolver) reserved(key string) (source.Route, uint64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	route, ok := r.reservedLocked(key)
	return route, r.generation, ok
}

func (r *Resolver) reservedLocked(key string) (source.Route, bool) {
	for _, rt := range r.routes {
		if rt.Pattern == key {
			return rt, true
		}
	}
	return source.Route{}, false
}

// execute runs one source call and records its duration.
func (r *Resolver) execute(ctx context.Context, route source.Route, req source.Request) (*models.Container, error) {
	start := time.Now()
	c, err := route.Source.Resolve(ctx, req)
	if err == nil && c == nil {
		err = fmt.Errorf("%w: %s", source.ErrNoContent, req.Path)
	}
	metrics.RecordResolve(string(route.Source.Kind()), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// prepareContainer validates every child and gives playable-only children a
// contextual URL rooted at root. The source's container is not modified.
func prepareContainer(root string, c *models.Container) (*models.Container, error) {
	out := c.Clone()
	if out.Path == "" {
		out.Path = root
	}
	for i := range out.Children {
		child := &out.Children[i]
		if err := child.Validate(); err != nil {
			return nil, fmt.Errorf("child %d (%q) of %s: %w", i, child.Title, root, err)
		}
		if child.Path == "" {
			child.Path = contexturl.Encode(root, child.PlayableSource)
		}
	}
	return out, nil
}

// validateNodes checks every node without transforming it.
func validateNodes(where string, nodes []models.Node) error {
	for i := range nodes {
		if err := nodes[i].Validate(); err != nil {
			return fmt.Errorf("item %d (%q) of %s: %w", i, nodes[i].Title, where, err)
		}
	}
	return nil
}

// fail classifies err, counts it and logs it.
func (r *Resolver) fail(ctx context.Context, path string, err error) *NavigationError {
	navErr := Classify(path, err)
	metrics.RecordNavigationError(string(navErr.Kind))
	logging.Ctx(ctx).Warn().
		Err(navErr.Err).
		Str("kind", string(navErr.Kind)).
		Int("status_code", navErr.StatusCode).
		Msg("Resolution failed")
	return navErr
}

// publish applies a navigation outcome for path unless a newer navigation
// replaced the current path in the meantime.
func (r *Resolver) publish(ctx context.Context, path string, raw *models.Container, err error) error {
	var navErr *NavigationError
	if err != nil {
		navErr = Classify(path, err)
	}

	r.mu.Lock()
	if r.state.path != path {
		current := r.state.path
		r.mu.Unlock()
		metrics.NavigationSuperseded.Inc()
		logging.Ctx(ctx).Debug().Str("current_path", current).Msg("Discarding superseded result")
		return ErrSuperseded
	}

	var events []notification
	if navErr != nil {
		hadContent := r.state.content != nil
		r.state.content = nil
		r.state.lastErr = navErr
		r.state.status = StatusFailed
		if hadContent {
			events = append(events, contentChanged(nil))
		}
		events = append(events, navigationError(navErr))
		r.unlockAndNotify(events...)
		return r.fail(ctx, path, navErr)
	}

	hadErr := r.state.lastErr != nil
	r.state.content = raw
	r.state.lastErr = nil
	r.state.status = StatusResolved
	events = append(events, contentChanged(r.favorites.HydrateContainer(raw)))
	if hadErr {
		events = append(events, navigationError(nil))
	}
	r.unlockAndNotify(events...)
	return nil
}

// unlockAndNotify releases mu, which the caller holds for writing, and then
// delivers events to the listeners registered at that moment. Batches are
// delivered in the order their state changes were made.
func (r *Resolver) unlockAndNotify(events ...notification) {
	if len(events) == 0 {
		r.mu.Unlock()
		return
	}
	ticket := r.nextTicket
	r.nextTicket++
	listeners := r.listeners
	r.mu.Unlock()

	r.notifyMu.Lock()
	for r.served != ticket {
		r.notifyCond.Wait()
	}
	r.notifyMu.Unlock()

	defer func() {
		r.notifyMu.Lock()
		r.served++
		r.notifyCond.Broadcast()
		r.notifyMu.Unlock()
	}()

	for _, ev := range events {
		for _, l := range listeners {
			ev(l)
		}
	}
}
