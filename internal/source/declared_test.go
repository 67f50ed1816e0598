// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomtom215/mediabrowser/internal/config"
	"github.com/tomtom215/mediabrowser/internal/models"
)

func TestRoutesFromConfig(t *testing.T) {
	t.Parallel()

	requests := make(chan *http.Request, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests <- r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"Album 7","children":[{"title":"Track","src":"t1"}]}`))
	}))
	defer srv.Close()

	cfg := &config.Config{
		Upstream: config.UpstreamConfig{
			BaseURL: srv.URL,
			Headers: map[string]string{"X-Client": "mediabrowser"},
			Timeout: 5 * time.Second,
		},
		Breaker: config.BreakerConfig{MaxRequests: 1, Interval: time.Minute, Timeout: time.Second, MinRequests: 5, FailureRatio: 0.5},
		Routes: []config.RouteConfig{
			{Pattern: "/albums/{id}", HTTP: &config.HTTPRouteConfig{Path: "/v1/albums/{id}", Query: map[string]string{"include": "tracks"}}},
			{Pattern: "__tabs__", Static: &models.Container{Node: models.Node{Title: "Tabs"}}},
		},
	}

	exec := NewExecutorFromConfig(cfg)
	routes, err := RoutesFromConfig(cfg.Routes, exec)
	if err != nil {
		t.Fatalf("RoutesFromConfig: %v", err)
	}
	if len(routes) != 2 {
		t.Fatalf("got %d routes", len(routes))
	}
	if routes[0].Pattern != "/albums/{id}" || routes[0].Source.Kind() != KindHTTP {
		t.Errorf("route 0 = %+v", routes[0])
	}
	if routes[1].Source.Kind() != KindStatic {
		t.Errorf("route 1 kind = %s", routes[1].Source.Kind())
	}

	c, err := routes[0].Source.Resolve(context.Background(), Request{Path: "/albums/7", Params: map[string]string{"id": "7"}})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if c.Title != "Album 7" || len(c.Children) != 1 {
		t.Errorf("container = %+v", c)
	}
	got := <-requests
	if got.URL.Path != "/v1/albums/7" || got.Header.Get("X-Client") != "mediabrowser" || got.URL.Query().Get("include") != "tracks" {
		t.Errorf("request = %s %v", got.URL, got.Header)
	}
}

func TestFromRouteConfig_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rc   config.RouteConfig
		exec *HTTPExecutor
	}{
		{"none", config.RouteConfig{Pattern: "/a"}, nil},
		{"both", config.RouteConfig{Pattern: "/a", Static: &models.Container{}, HTTP: &config.HTTPRouteConfig{}}, nil},
		{"http without executor", config.RouteConfig{Pattern: "/a", HTTP: &config.HTTPRouteConfig{}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := FromRouteConfig(tt.rc, tt.exec); !errors.Is(err, ErrInvalidSource) {
				t.Errorf("err = %v, want ErrInvalidSource", err)
			}
		})
	}
}

func TestRequestConfigFrom_EmptyFieldsInherit(t *testing.T) {
	t.Parallel()

	rc := requestConfigFrom(&config.HTTPRouteConfig{Method: "POST", Body: `{"a":1}`})
	if rc.BaseURL != nil || rc.Path != nil || rc.Timeout != nil || rc.ContentType != nil {
		t.Errorf("empty fields should stay nil: %+v", rc)
	}
	if rc.Method == nil || *rc.Method != "POST" || rc.Body == nil {
		t.Errorf("set fields missing: %+v", rc)
	}
}
