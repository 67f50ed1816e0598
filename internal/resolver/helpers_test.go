// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package resolver

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/tomtom215/mediabrowser/internal/models"
	"github.com/tomtom215/mediabrowser/internal/source"
)

// countingSource wraps a function and counts calls.
type countingSource struct {
	calls atomic.Int32
	fn    source.Func
}

func newCounting(fn source.Func) *countingSource {
	return &countingSource{fn: fn}
}

func (s *countingSource) Kind() source.Kind { return source.KindCallback }

func (s *countingSource) Resolve(ctx context.Context, req source.Request) (*models.Container, error) {
	s.calls.Add(1)
	return s.fn(ctx, req)
}

// echoContainer returns a container titled after the request path with the
// given children.
func echoContainer(children ...models.Node) source.Func {
	return func(_ context.Context, req source.Request) (*models.Container, error) {
		return &models.Container{
			Node:     models.Node{Title: "container " + req.Path},
			Children: append([]models.Node(nil), children...),
		}, nil
	}
}

func track(src, title string) models.Node {
	return models.Node{PlayableSource: src, Title: title}
}

func folder(path, title string) models.Node {
	return models.Node{Path: path, Title: title}
}

func boolPtr(b bool) *bool { return &b }

func newResolver(t *testing.T, routes ...source.Route) *Resolver {
	t.Helper()
	r, err := New(routes, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

// recorder captures notifications as readable strings.
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (rec *recorder) add(format string, args ...interface{}) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.events = append(rec.events, fmt.Sprintf(format, args...))
}

func (rec *recorder) list() []string {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return append([]string(nil), rec.events...)
}

func (rec *recorder) listener() Listener {
	return ListenerFuncs{
		PathChanged: func(p string) { rec.add("path %s", p) },
		ContentChanged: func(c *models.Container) {
			if c == nil {
				rec.add("content <nil>")
				return
			}
			rec.add("content %s", c.Path)
		},
		TabsChanged: func(tabs []models.Node) { rec.add("tabs %d", len(tabs)) },
		NavigationError: func(err *NavigationError) {
			if err == nil {
				rec.add("error <nil>")
				return
			}
			rec.add("error %s", err.Kind)
		},
	}
}
