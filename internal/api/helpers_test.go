// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/mediabrowser/internal/logging"
	"github.com/tomtom215/mediabrowser/internal/models"
	"github.com/tomtom215/mediabrowser/internal/resolver"
	"github.com/tomtom215/mediabrowser/internal/routing"
	"github.com/tomtom215/mediabrowser/internal/source"
	ws "github.com/tomtom215/mediabrowser/internal/websocket"
)

func init() {
	logging.Init(logging.Config{Level: "error", Format: "json", Output: io.Discard})
}

// catalog is a small in-memory catalog:
//
//	/albums/{id}   two tracks, or an error for ids "broken", "slow" and "gone"
//	__tabs__       two folders
//	__search__     one track titled after the query
type catalog struct {
	albumCalls  atomic.Int32
	searchCalls atomic.Int32
}

func (c *catalog) routes() []source.Route {
	return []source.Route{
		{Pattern: "/albums/{id}", Source: source.NewCallback(c.album)},
		{Pattern: routing.TabsKey, Source: source.NewStatic(&models.Container{
			Node: models.Node{Title: "tabs"},
			Children: []models.Node{
				{Path: "/albums/1", Title: "Album One"},
				{Path: "/albums/2", Title: "Album Two"},
			},
		})},
		{Pattern: routing.SearchKey, Source: source.NewCallback(c.search)},
	}
}

func (c *catalog) album(_ context.Context, req source.Request) (*models.Container, error) {
	c.albumCalls.Add(1)
	switch id := req.Param("id"); id {
	case "broken":
		return nil, &source.HTTPStatusError{StatusCode: http.StatusServiceUnavailable, URL: "http://upstream/albums/broken"}
	case "slow":
		return nil, &source.NetworkError{Op: "GET /albums/slow", Err: context.DeadlineExceeded}
	case "gone":
		return nil, source.ErrNoContent
	default:
		return &models.Container{
			Node: models.Node{Title: "Album " + id},
			Children: []models.Node{
				{PlayableSource: "t1-" + id, Title: "Track 1"},
				{PlayableSource: "t2-" + id, Title: "Track 2"},
			},
		}, nil
	}
}

func (c *catalog) search(_ context.Context, req source.Request) (*models.Container, error) {
	c.searchCalls.Add(1)
	return &models.Container{Children: []models.Node{
		{PlayableSource: "hit-" + req.Query, Title: "Hit for " + req.Query},
	}}, nil
}

type testEnv struct {
	catalog  *catalog
	resolver *resolver.Resolver
	hub      *ws.Hub
	server   *httptest.Server
}

func newTestEnv(t *testing.T, opts HandlerOptions) *testEnv {
	t.Helper()

	cat := &catalog{}
	res, err := resolver.New(cat.routes(), resolver.Options{})
	if err != nil {
		t.Fatalf("resolver.New: %v", err)
	}

	hub := ws.NewHub()
	hub.SetSnapshotFunc(func() interface{} { return res.Snapshot() })
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = hub.RunWithContext(ctx)
	}()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	router := NewRouter(NewHandler(res, hub, opts), cfg)
	srv := httptest.NewServer(router.SetupChi())

	t.Cleanup(func() {
		srv.Close()
		cancel()
		<-done
	})

	return &testEnv{catalog: cat, resolver: res, hub: hub, server: srv}
}

// envelope is APIResponse with Data left raw for typed decoding.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta *APIMeta `json:"meta"`
}

func (e *testEnv) do(t *testing.T, method, target, body string) (*http.Response, envelope) {
	t.Helper()

	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, e.server.URL+target, rdr)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.server.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()

	var env envelope
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("%s %s: decode %q: %v", method, target, raw, err)
		}
	}
	return resp, env
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
}
