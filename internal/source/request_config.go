// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package source

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tomtom215/mediabrowser/internal/models"
	"github.com/tomtom215/mediabrowser/internal/routing"
)

// SearchQueryParam is the query parameter that carries the search text when
// the route does not set it explicitly.
const SearchQueryParam = "q"

// RequestConfig is one layer of HTTP request settings. Nil fields and empty
// maps leave the value of less specific layers in place.
type RequestConfig struct {
	BaseURL     *string
	Path        *string
	Method      *string
	Headers     map[string]string
	Query       map[string]string
	Body        *string
	ContentType *string
	Timeout     *time.Duration
}

// Merge combines layers from least to most specific. Headers and query
// parameters merge per key with later layers winning; every other field is
// taken from the most specific layer that sets it. Nil layers are skipped.
func Merge(layers ...*RequestConfig) RequestConfig {
	var out RequestConfig
	for _, l := range layers {
		if l == nil {
			continue
		}
		if l.BaseURL != nil {
			out.BaseURL = l.BaseURL
		}
		if l.Path != nil {
			out.Path = l.Path
		}
		if l.Method != nil {
			out.Method = l.Method
		}
		if l.Body != nil {
			out.Body = l.Body
		}
		if l.ContentType != nil {
			out.ContentType = l.ContentType
		}
		if l.Timeout != nil {
			out.Timeout = l.Timeout
		}
		out.Headers = mergeMap(out.Headers, l.Headers)
		out.Query = mergeMap(out.Query, l.Query)
	}
	return out
}

func mergeMap(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// methodOrDefault returns the configured method, GET when unset.
func (c RequestConfig) methodOrDefault() string {
	if c.Method == nil || *c.Method == "" {
		return "GET"
	}
	return strings.ToUpper(*c.Method)
}

// buildURL resolves the final URL for req. When no path is configured the
// catalog path itself is requested. "{name}" placeholders in the path and in
// query values are replaced with the captured route parameters.
func (c RequestConfig) buildURL(req Request) (string, error) {
	path := req.Path
	if c.Path != nil {
		path = expand(*c.Path, req.Params, escapePathParam)
	}
	if strings.Contains(path, "{") {
		return "", fmt.Errorf("%w: unresolved placeholder in path %q", ErrInvalidSource, path)
	}

	base := ""
	if c.BaseURL != nil {
		base = strings.TrimSuffix(*c.BaseURL, "/")
	}
	raw := base + path
	if base != "" && path != "" && !strings.HasPrefix(path, "/") {
		raw = base + "/" + path
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: bad url %q: %v", ErrInvalidSource, raw, err)
	}
	if !u.IsAbs() {
		return "", fmt.Errorf("%w: url %q is not absolute (missing base url?)", ErrInvalidSource, raw)
	}

	q := u.Query()
	for k, v := range c.Query {
		q.Set(k, expand(v, req.Params, func(_, s string) string { return s }))
	}
	if req.Query != "" && q.Get(SearchQueryParam) == "" {
		q.Set(SearchQueryParam, req.Query)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// escapePathParam escapes a parameter for use in a URL path. The "**"
// capture spans several segments, so its separators are kept.
func escapePathParam(name, value string) string {
	if name != routing.TailParam {
		return url.PathEscape(value)
	}
	segs := strings.Split(value, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}

func expand(tmpl string, params map[string]string, escape func(name, value string) string) string {
	if !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "{"+k+"}", escape(k, v))
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// Overrides is the JSON form of a per-call RequestConfig. Each field is
// tri-state so that callers can tell "not provided" from "null".
type Overrides struct {
	BaseURL     models.Field[string]            `json:"baseUrl"`
	Path        models.Field[string]            `json:"path"`
	Method      models.Field[string]            `json:"method"`
	Headers     models.Field[map[string]string] `json:"headers"`
	Query       models.Field[map[string]string] `json:"query"`
	Body        models.Field[string]            `json:"body"`
	ContentType models.Field[string]            `json:"contentType"`
	TimeoutMs   models.Field[int64]             `json:"timeoutMs"`
}

// Config collapses the overrides into a RequestConfig layer. Null and unset
// fields both leave the less specific layers in effect.
func (o Overrides) Config() *RequestConfig {
	cfg := &RequestConfig{
		BaseURL:     o.BaseURL.Ptr(),
		Path:        o.Path.Ptr(),
		Method:      o.Method.Ptr(),
		Body:        o.Body.Ptr(),
		ContentType: o.ContentType.Ptr(),
	}
	if h, ok := o.Headers.Get(); ok {
		cfg.Headers = h
	}
	if q, ok := o.Query.Get(); ok {
		cfg.Query = q
	}
	if ms, ok := o.TimeoutMs.Get(); ok && ms > 0 {
		d := time.Duration(ms) * time.Millisecond
		cfg.Timeout = &d
	}
	return cfg
}

// StringPtr is a helper for building RequestConfig literals.
func StringPtr(s string) *string { return &s }
