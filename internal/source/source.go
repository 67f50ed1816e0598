// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package source

import (
	"context"
	"fmt"

	"github.com/tomtom215/mediabrowser/internal/models"
)

// Kind names the variant of a route source.
type Kind string

const (
	KindStatic   Kind = "static"
	KindCallback Kind = "callback"
	KindHTTP     Kind = "http"
)

// Request describes one resolution handed to a source.
type Request struct {
	// Path is the normalized catalog path being resolved.
	Path string

	// Params are the values captured by the matched route pattern.
	Params map[string]string

	// Query is the search query for search resolutions, empty otherwise.
	Query string

	// Overrides are per-call HTTP settings layered over the route's own.
	// Static and callback sources ignore them.
	Overrides *RequestConfig
}

// Param returns a captured parameter or "".
func (r Request) Param(name string) string {
	return r.Params[name]
}

// Source produces the container for a matched route. Every variant resolves
// with a single call that returns either a container or an error.
type Source interface {
	Kind() Kind
	Resolve(ctx context.Context, req Request) (*models.Container, error)
}

var (
	_ Source = (*Static)(nil)
	_ Source = (*Callback)(nil)
	_ Source = (*HTTP)(nil)
)

// Static serves a fixed container.
type Static struct {
	Container *models.Container
}

// NewStatic creates a static source for c.
func NewStatic(c *models.Container) *Static {
	return &Static{Container: c}
}

// Kind implements Source.
func (s *Static) Kind() Kind { return KindStatic }

// Resolve returns a copy of the fixed container.
func (s *Static) Resolve(ctx context.Context, _ Request) (*models.Container, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Container == nil {
		return nil, fmt.Errorf("%w: static route has no container", ErrInvalidSource)
	}
	return s.Container.Clone(), nil
}

// Func is an application supplied resolution function.
type Func func(ctx context.Context, req Request) (*models.Container, error)

// Callback delegates resolution to application code.
type Callback struct {
	Fn Func
}

// NewCallback creates a callback source.
func NewCallback(fn Func) *Callback {
	return &Callback{Fn: fn}
}

// Kind implements Source.
func (c *Callback) Kind() Kind { return KindCallback }

// Resolve invokes the callback. A nil container without an error is reported
// as ErrNoContent.
func (c *Callback) Resolve(ctx context.Context, req Request) (*models.Container, error) {
	if c.Fn == nil {
		return nil, fmt.Errorf("%w: callback route has no function", ErrInvalidSource)
	}
	out, err := c.Fn(ctx, req)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, ErrNoContent
	}
	return out, nil
}

// HTTP fetches the container from a remote endpoint. Config is the route
// layer; the executor contributes the base layer and the call the overrides.
type HTTP struct {
	Config   RequestConfig
	Executor *HTTPExecutor
}

// NewHTTP creates an HTTP source bound to an executor.
func NewHTTP(cfg RequestConfig, exec *HTTPExecutor) *HTTP {
	return &HTTP{Config: cfg, Executor: exec}
}

// Kind implements Source.
func (h *HTTP) Kind() Kind { return KindHTTP }

// Resolve performs the request.
func (h *HTTP) Resolve(ctx context.Context, req Request) (*models.Container, error) {
	if h.Executor == nil {
		return nil, fmt.Errorf("%w: http route has no executor", ErrInvalidSource)
	}
	return h.Executor.Execute(ctx, &h.Config, req)
}
