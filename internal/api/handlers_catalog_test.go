// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package api

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/mediabrowser/internal/contexturl"
	"github.com/tomtom215/mediabrowser/internal/models"
	"github.com/tomtom215/mediabrowser/internal/resolver"
)

func TestNavigate(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, HandlerOptions{})

	resp, body := env.do(t, http.MethodPost, "/api/v1/navigate", `{"path":"/albums/7"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body error = %+v", resp.StatusCode, body.Error)
	}

	var snap resolver.Snapshot
	decodeData(t, body, &snap)
	if snap.Path != "/albums/7" || snap.Status != resolver.StatusResolved {
		t.Errorf("snapshot = %s/%s, want /albums/7/resolved", snap.Path, snap.Status)
	}
	if snap.Content == nil || len(snap.Content.Children) != 2 {
		t.Fatalf("content = %+v, want two tracks", snap.Content)
	}
	if got := env.resolver.Path(); got != "/albums/7" {
		t.Errorf("resolver path = %q", got)
	}
}

func TestNavigate_ErrorKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		path   string
		status int
		code   string
		kind   resolver.ErrorKind
	}{
		{"no route", "/playlists/1", http.StatusNotFound, ErrCodeNotFound, resolver.KindContentNotFound},
		{"source has no content", "/albums/gone", http.StatusNotFound, ErrCodeNotFound, resolver.KindContentNotFound},
		{"upstream status", "/albums/broken", http.StatusBadGateway, ErrCodeUpstreamError, resolver.KindHTTPError},
		{"upstream timeout", "/albums/slow", http.StatusGatewayTimeout, ErrCodeUpstreamTimeout, resolver.KindNetworkError},
	}

	env := newTestEnv(t, HandlerOptions{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := env.do(t, http.MethodPost, "/api/v1/navigate", `{"path":"`+tt.path+`"}`)
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if body.Success || body.Error == nil || body.Error.Code != tt.code {
				t.Fatalf("error = %+v, want code %s", body.Error, tt.code)
			}

			var navErr resolver.NavigationError
			if err := json.Unmarshal(body.Error.Details, &navErr); err != nil {
				t.Fatalf("details: %v", err)
			}
			if navErr.Kind != tt.kind || navErr.Path != tt.path {
				t.Errorf("details = %s %s, want %s %s", navErr.Kind, navErr.Path, tt.kind, tt.path)
			}
			if got := env.resolver.Status(); got != resolver.StatusFailed {
				t.Errorf("resolver status = %s, want failed", got)
			}
		})
	}
}

func TestNavigate_BadRequests(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, HandlerOptions{})

	tests := []struct {
		name string
		body string
		code string
	}{
		{"empty body", "", ErrCodeBadRequest},
		{"malformed", `{"path":`, ErrCodeBadRequest},
		{"unknown field", `{"path":"/albums/1","extra":true}`, ErrCodeBadRequest},
		{"missing path", `{}`, ErrCodeValidationFailed},
		{"relative path", `{"path":"albums/1"}`, ErrCodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := env.do(t, http.MethodPost, "/api/v1/navigate", tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}
			if body.Error == nil || body.Error.Code != tt.code {
				t.Errorf("error = %+v, want %s", body.Error, tt.code)
			}
		})
	}
	if got := env.catalog.albumCalls.Load(); got != 0 {
		t.Errorf("source called %d times for rejected requests", got)
	}
}

func TestBrowse_CacheParameter(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, HandlerOptions{})

	for i := 0; i < 2; i++ {
		resp, body := env.do(t, http.MethodGet, "/api/v1/browse?path=/albums/3", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		if body.Meta == nil || body.Meta.Cached == nil || !*body.Meta.Cached {
			t.Errorf("meta.cached = %+v, want true", body.Meta)
		}
	}
	if got := env.catalog.albumCalls.Load(); got != 1 {
		t.Errorf("source calls with cache = %d, want 1", got)
	}

	resp, _ := env.do(t, http.MethodGet, "/api/v1/browse?path=/albums/3&cache=false", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got := env.catalog.albumCalls.Load(); got != 2 {
		t.Errorf("source calls after cache=false = %d, want 2", got)
	}

	if env.resolver.Path() != "" {
		t.Errorf("browse changed the current path to %q", env.resolver.Path())
	}
}

func TestBrowse_InvalidParams(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, HandlerOptions{})

	for _, target := range []string{
		"/api/v1/browse",
		"/api/v1/browse?path=albums",
		"/api/v1/browse?path=/albums/1&cache=maybe",
	} {
		resp, _ := env.do(t, http.MethodGet, target, "")
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, resp.StatusCode)
		}
	}
}

func TestResolve_TriStateOverrides(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, HandlerOptions{})

	// Callback routes ignore HTTP overrides; the request must still decode
	// with absent, null and set fields.
	body := `{"path":"/albums/4","use_cache":false,"overrides":{"method":null,"headers":{"X-Trace":"1"}}}`
	resp, env2 := env.do(t, http.MethodPost, "/api/v1/resolve", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, error = %+v", resp.StatusCode, env2.Error)
	}
	var c models.Container
	decodeData(t, env2, &c)
	if c.Title != "Album 4" {
		t.Errorf("title = %q", c.Title)
	}
}

func TestResolve_UseCacheDefault(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, HandlerOptions{})

	resp, _ := env.do(t, http.MethodGet, "/api/v1/browse?path=/albums/5", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("browse status = %d", resp.StatusCode)
	}

	resp, body := env.do(t, http.MethodPost, "/api/v1/resolve", `{"path":"/albums/5"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("resolve status = %d, error = %+v", resp.StatusCode, body.Error)
	}
	if body.Meta == nil || body.Meta.Cached == nil || !*body.Meta.Cached {
		t.Errorf("meta.cached = %+v, want true", body.Meta)
	}
	if got := env.catalog.albumCalls.Load(); got != 1 {
		t.Errorf("source calls without use_cache = %d, want 1", got)
	}

	resp, _ = env.do(t, http.MethodPost, "/api/v1/resolve", `{"path":"/albums/5","use_cache":false}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("resolve status = %d", resp.StatusCode)
	}
	if got := env.catalog.albumCalls.Load(); got != 2 {
		t.Errorf("source calls with use_cache=false = %d, want 2", got)
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, HandlerOptions{})

	for i := 0; i < 2; i++ {
		resp, body := env.do(t, http.MethodGet, "/api/v1/search?q=blue", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		var c models.Container
		decodeData(t, body, &c)
		if len(c.Children) != 1 || c.Children[0].PlayableSource != "hit-blue" {
			t.Fatalf("results = %+v", c.Children)
		}
	}
	if got := env.catalog.searchCalls.Load(); got != 1 {
		t.Errorf("search source calls = %d, want 1", got)
	}

	resp, _ := env.do(t, http.MethodGet, "/api/v1/search", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing q: status = %d, want 400", resp.StatusCode)
	}
}

func TestQueue(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, HandlerOptions{})

	contextual := contexturl.Encode("/albums/9", "t2-9")
	resp, body := env.do(t, http.MethodGet, "/api/v1/queue?path="+url.QueryEscape(contextual), "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, error = %+v", resp.StatusCode, body.Error)
	}
	var q models.Queue
	decodeData(t, body, &q)
	if len(q.Items) != 2 || q.Index != 1 {
		t.Errorf("queue = %d items at %d, want 2 at 1", len(q.Items), q.Index)
	}

	resp, _ = env.do(t, http.MethodGet, "/api/v1/queue?path="+url.QueryEscape("/albums/9"), "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("non-contextual: status = %d, want 404", resp.StatusCode)
	}

	missing := contexturl.Encode("/albums/9", "nope")
	resp, _ = env.do(t, http.MethodGet, "/api/v1/queue?path="+url.QueryEscape(missing), "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown leaf: status = %d, want 404", resp.StatusCode)
	}
}

func TestInvalidateCache(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, HandlerOptions{})

	env.do(t, http.MethodPost, "/api/v1/navigate", `{"path":"/albums/5"}`)
	if got := env.catalog.albumCalls.Load(); got != 1 {
		t.Fatalf("calls after navigate = %d", got)
	}

	resp, _ := env.do(t, http.MethodDelete, "/api/v1/cache?path=/albums/5", "")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", resp.StatusCode)
	}
	// The current path is re-resolved from its source.
	if got := env.catalog.albumCalls.Load(); got != 2 {
		t.Errorf("calls after invalidate = %d, want 2", got)
	}

	var stats resolver.CacheStats
	_, body := env.do(t, http.MethodGet, "/api/v1/cache/stats", "")
	decodeData(t, body, &stats)
	if stats.Content.Size != 1 {
		t.Errorf("content cache size = %d, want 1", stats.Content.Size)
	}
}

func TestTabs_LoadedOnFirstUse(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, HandlerOptions{})

	resp, body := env.do(t, http.MethodGet, "/api/v1/tabs", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var tabs []models.Node
	decodeData(t, body, &tabs)
	if len(tabs) != 2 || tabs[0].Title != "Album One" {
		t.Errorf("tabs = %+v", tabs)
	}
	if len(env.resolver.Tabs()) != 2 {
		t.Error("tabs were not published to the resolver")
	}
}

func TestStateAndLeaf(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, HandlerOptions{})

	resp, body := env.do(t, http.MethodGet, "/api/v1/leaf?id=t1-8", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("leaf before resolve: status = %d, want 404", resp.StatusCode)
	}

	env.do(t, http.MethodPost, "/api/v1/navigate", `{"path":"/albums/8"}`)

	resp, body = env.do(t, http.MethodGet, "/api/v1/leaf?id=t1-8", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("leaf: status = %d", resp.StatusCode)
	}
	var leaf models.Node
	decodeData(t, body, &leaf)
	if leaf.Title != "Track 1" {
		t.Errorf("leaf = %+v", leaf)
	}

	_, body = env.do(t, http.MethodGet, "/api/v1/state", "")
	var snap resolver.Snapshot
	decodeData(t, body, &snap)
	if snap.Path != "/albums/8" {
		t.Errorf("state path = %q", snap.Path)
	}

	resp, _ = env.do(t, http.MethodGet, "/api/v1/leaf", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing id: status = %d, want 400", resp.StatusCode)
	}
}
