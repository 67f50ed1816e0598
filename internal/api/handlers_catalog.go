// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/mediabrowser/internal/logging"
	"github.com/tomtom215/mediabrowser/internal/resolver"
	"github.com/tomtom215/mediabrowser/internal/source"
	"github.com/tomtom215/mediabrowser/internal/validation"
)

// badInput writes 400 with field details for validation failures.
func badInput(rw *ResponseWriter, err error) {
	var validationErr *validation.Errors
	if errors.As(err, &validationErr) {
		rw.ValidationError("request validation failed", validationErr.Details())
		return
	}
	rw.BadRequest(err.Error())
}

// Navigate handles POST /api/v1/navigate. On success it returns the snapshot
// published by this navigation.
func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req NavigateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badInput(rw, err)
		return
	}

	if err := h.resolver.Navigate(r.Context(), req.Path); err != nil {
		if !errors.Is(err, resolver.ErrSuperseded) {
			logging.Ctx(r.Context()).Warn().Err(err).Str("path", req.Path).Msg("Navigation failed")
		}
		writeError(rw, err)
		return
	}
	rw.Success(h.resolver.Snapshot())
}

// Browse handles GET /api/v1/browse?path=&cache=. It resolves without
// changing the current path.
func (h *Handler) Browse(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	path, err := pathParam(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	useCache, err := boolParam(r, "cache", true)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	c, err := h.resolver.Resolve(r.Context(), path, useCache)
	if err != nil {
		writeError(rw, err)
		return
	}
	rw.SuccessWithMeta(c, &APIMeta{Cached: &useCache})
}

// Resolve handles POST /api/v1/resolve, which accepts per-call request
// overrides for HTTP-backed routes.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req ResolveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badInput(rw, err)
		return
	}

	var overrides *source.RequestConfig
	if req.Overrides != nil {
		overrides = req.Overrides.Config()
	}

	useCache := req.useCache()
	c, err := h.resolver.ResolveWith(r.Context(), req.Path, resolver.ResolveOptions{
		UseCache:  useCache,
		Overrides: overrides,
	})
	if err != nil {
		writeError(rw, err)
		return
	}
	rw.SuccessWithMeta(c, &APIMeta{Cached: &useCache})
}

// Search handles GET /api/v1/search?q=. An empty query is forwarded to the
// search route as is; a missing one is rejected.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if !r.URL.Query().Has("q") {
		rw.BadRequest("query parameter q is required")
		return
	}

	c, err := h.resolver.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(rw, err)
		return
	}
	rw.Success(c)
}

// Queue handles GET /api/v1/queue?path=, expanding a contextual URL into the
// playable siblings of the selected leaf.
func (h *Handler) Queue(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	path, err := pathParam(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	q, err := h.resolver.ExpandQueueFromContextualURL(r.Context(), path)
	if err != nil {
		writeError(rw, err)
		return
	}
	rw.Success(q)
}

// InvalidateCache handles DELETE /api/v1/cache?path=.
func (h *Handler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	path, err := pathParam(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	if err := h.resolver.InvalidateContentCache(r.Context(), path); err != nil {
		writeError(rw, err)
		return
	}
	rw.NoContent()
}

// CacheStats handles GET /api/v1/cache/stats.
func (h *Handler) CacheStats(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.resolver.CacheStats())
}

// Tabs handles GET /api/v1/tabs. Tabs are loaded on first use or when
// refresh=true.
func (h *Handler) Tabs(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	refresh, err := boolParam(r, "refresh", false)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	tabs := h.resolver.Tabs()
	if refresh || len(tabs) == 0 {
		if _, err := h.resolver.LoadTabs(r.Context()); err != nil {
			writeError(rw, err)
			return
		}
		tabs = h.resolver.Tabs()
	}
	rw.Success(tabs)
}

// State handles GET /api/v1/state.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.resolver.Snapshot())
}

// Leaf handles GET /api/v1/leaf?id=, looking a leaf up by path or playable source.
func (h *Handler) Leaf(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id := r.URL.Query().Get("id")
	if id == "" {
		rw.BadRequest("query parameter id is required")
		return
	}

	leaf, ok := h.resolver.Leaf(id)
	if !ok {
		rw.NotFound("leaf not cached: " + id)
		return
	}
	rw.Success(leaf)
}
