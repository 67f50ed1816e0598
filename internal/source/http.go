// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/mediabrowser/internal/logging"
	"github.com/tomtom215/mediabrowser/internal/metrics"
	"github.com/tomtom215/mediabrowser/internal/models"
)

const (
	// DefaultTimeout applies when no layer sets a timeout.
	DefaultTimeout = 30 * time.Second

	// maxErrorBody bounds how much of an error response is kept for messages.
	maxErrorBody = 512

	// maxResponseBody bounds decoded catalog responses.
	maxResponseBody = 16 << 20
)

// ExecutorConfig configures an HTTPExecutor.
type ExecutorConfig struct {
	// Base is the least specific request layer, typically base URL and auth headers.
	Base RequestConfig

	// RateLimit is the sustained outbound requests per second; zero disables limiting.
	RateLimit float64
	Burst     int

	Breaker BreakerSettings

	// Client overrides the HTTP client, mainly for tests.
	Client *http.Client
}

// HTTPExecutor performs catalog requests for HTTP sources. One executor is
// shared by all HTTP routes so they share the rate limit and the breaker.
type HTTPExecutor struct {
	base    RequestConfig
	client  *http.Client
	limiter *rate.Limiter
	breaker *breaker
}

// NewHTTPExecutor creates an executor.
func NewHTTPExecutor(cfg ExecutorConfig) *HTTPExecutor {
	client := cfg.Client
	if client == nil {
		client = &http.Client{}
	}
	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return &HTTPExecutor{
		base:    cfg.Base,
		client:  client,
		limiter: limiter,
		breaker: newBreaker(cfg.Breaker),
	}
}

// BreakerState returns the circuit breaker state ("closed", "half-open", "open").
func (e *HTTPExecutor) BreakerState() string {
	return e.breaker.State()
}

// Execute merges base, route and per-call layers and performs the request.
func (e *HTTPExecutor) Execute(ctx context.Context, route *RequestConfig, req Request) (*models.Container, error) {
	cfg := Merge(&e.base, route, req.Overrides)

	timeout := DefaultTimeout
	if cfg.Timeout != nil && *cfg.Timeout > 0 {
		timeout = *cfg.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if e.limiter != nil {
		start := time.Now()
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, &NetworkError{Op: "rate limit", Err: err}
		}
		metrics.UpstreamRateLimitWaits.Observe(time.Since(start).Seconds())
	}

	return e.breaker.execute(func() (*models.Container, error) {
		return e.do(ctx, cfg, req)
	})
}

func (e *HTTPExecutor) do(ctx context.Context, cfg RequestConfig, req Request) (*models.Container, error) {
	target, err := cfg.buildURL(req)
	if err != nil {
		return nil, err
	}
	method := cfg.methodOrDefault()

	var body io.Reader
	if cfg.Body != nil {
		body = strings.NewReader(*cfg.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrInvalidSource, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	for k, v := range cfg.Headers {
		httpReq.Header.Set(k, v)
	}
	if cfg.Body != nil {
		ct := "application/json"
		if cfg.ContentType != nil {
			ct = *cfg.ContentType
		}
		httpReq.Header.Set("Content-Type", ct)
	}

	log := logging.Ctx(ctx)
	log.Debug().Str("method", method).Str("url", target).Msg("Upstream request")

	resp, err := e.client.Do(httpReq)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(method, "error").Inc()
		return nil, &NetworkError{Op: method + " " + target, Err: err}
	}
	defer resp.Body.Close()
	metrics.UpstreamRequests.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &HTTPStatusError{
			StatusCode: resp.StatusCode,
			URL:        target,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, &NetworkError{Op: "read response", Err: err}
	}
	return decodeContainer(data, req.Path)
}

// decodeContainer accepts either a container object or a bare array of
// children. A bare array becomes the children of a container at path.
func decodeContainer(data []byte, path string) (*models.Container, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrNoContent
	}

	if trimmed[0] == '[' {
		var children []models.Node
		if err := json.Unmarshal(trimmed, &children); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return &models.Container{Node: models.Node{Path: path}, Children: children}, nil
	}

	var c models.Container
	if err := json.Unmarshal(trimmed, &c); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &c, nil
}
