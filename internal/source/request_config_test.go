// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package source

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestMerge_ThreeLayers(t *testing.T) {
	t.Parallel()

	base := &RequestConfig{
		BaseURL: StringPtr("https://api.test"),
		Headers: map[string]string{"Authorization": "Bearer base", "X-Client": "mb"},
		Query:   map[string]string{"lang": "en"},
		Method:  StringPtr("GET"),
	}
	route := &RequestConfig{
		Path:    StringPtr("/artists/{id}"),
		Headers: map[string]string{"Authorization": "Bearer route"},
		Query:   map[string]string{"limit": "50"},
	}
	call := &RequestConfig{
		Method: StringPtr("POST"),
		Query:  map[string]string{"lang": "de"},
	}

	got := Merge(base, route, nil, call)

	wantHeaders := map[string]string{"Authorization": "Bearer route", "X-Client": "mb"}
	if !reflect.DeepEqual(got.Headers, wantHeaders) {
		t.Errorf("headers = %v, want %v", got.Headers, wantHeaders)
	}
	wantQuery := map[string]string{"lang": "de", "limit": "50"}
	if !reflect.DeepEqual(got.Query, wantQuery) {
		t.Errorf("query = %v, want %v", got.Query, wantQuery)
	}
	if *got.Method != "POST" || *got.Path != "/artists/{id}" || *got.BaseURL != "https://api.test" {
		t.Errorf("scalar fields not taken from most specific layer: %+v", got)
	}

	// Inputs are never modified.
	if base.Headers["Authorization"] != "Bearer base" || base.Query["lang"] != "en" {
		t.Error("Merge mutated the base layer")
	}
}

func TestBuildURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     RequestConfig
		req     Request
		want    string
		wantErr bool
	}{
		{
			name: "catalog path appended to base",
			cfg:  RequestConfig{BaseURL: StringPtr("https://api.test/")},
			req:  Request{Path: "/artists/123/albums/456"},
			want: "https://api.test/artists/123/albums/456",
		},
		{
			name: "path template",
			cfg:  RequestConfig{BaseURL: StringPtr("https://api.test"), Path: StringPtr("/v2/artist/{id}")},
			req:  Request{Path: "/artists/a b", Params: map[string]string{"id": "a b"}},
			want: "https://api.test/v2/artist/a%20b",
		},
		{
			name: "tail capture keeps its separators",
			cfg:  RequestConfig{BaseURL: StringPtr("https://api.test"), Path: StringPtr("/files/{tail}")},
			req:  Request{Path: "/browse/a/b c/d", Params: map[string]string{"tail": "a/b c/d"}},
			want: "https://api.test/files/a/b%20c/d",
		},
		{
			name: "slash in a named parameter is escaped",
			cfg:  RequestConfig{BaseURL: StringPtr("https://api.test"), Path: StringPtr("/artist/{id}")},
			req:  Request{Path: "/artists/ac/dc", Params: map[string]string{"id": "ac/dc"}},
			want: "https://api.test/artist/ac%2Fdc",
		},
		{
			name: "query values with placeholders and search text",
			cfg: RequestConfig{
				BaseURL: StringPtr("https://api.test"),
				Path:    StringPtr("/find"),
				Query:   map[string]string{"type": "{kind}"},
			},
			req:  Request{Query: "blue train", Params: map[string]string{"kind": "album"}},
			want: "https://api.test/find?q=blue+train&type=album",
		},
		{
			name: "explicit q wins over search text",
			cfg:  RequestConfig{BaseURL: StringPtr("https://api.test"), Path: StringPtr("/find"), Query: map[string]string{"q": "fixed"}},
			req:  Request{Query: "ignored"},
			want: "https://api.test/find?q=fixed",
		},
		{
			name:    "missing base url",
			cfg:     RequestConfig{},
			req:     Request{Path: "/albums"},
			wantErr: true,
		},
		{
			name:    "unresolved placeholder",
			cfg:     RequestConfig{BaseURL: StringPtr("https://api.test"), Path: StringPtr("/a/{missing}")},
			req:     Request{Path: "/a"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.cfg.buildURL(tt.req)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSource) {
					t.Errorf("err = %v, want ErrInvalidSource", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("buildURL: %v", err)
			}
			if got != tt.want {
				t.Errorf("buildURL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOverrides_Config(t *testing.T) {
	t.Parallel()

	var o Overrides
	raw := `{"method":"POST","body":null,"headers":{"X-Trace":"1"},"timeoutMs":1500}`
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	cfg := o.Config()

	if cfg.Method == nil || *cfg.Method != "POST" {
		t.Errorf("method = %v", cfg.Method)
	}
	if cfg.Body != nil {
		t.Error("null body must not override lower layers")
	}
	if cfg.Path != nil || cfg.BaseURL != nil || cfg.Query != nil {
		t.Error("absent fields must stay unset")
	}
	if cfg.Headers["X-Trace"] != "1" {
		t.Errorf("headers = %v", cfg.Headers)
	}
	if cfg.Timeout == nil || *cfg.Timeout != 1500*time.Millisecond {
		t.Errorf("timeout = %v", cfg.Timeout)
	}

	merged := Merge(&RequestConfig{Body: StringPtr(`{"a":1}`)}, cfg)
	if merged.Body == nil || *merged.Body != `{"a":1}` {
		t.Error("base body should survive a null override")
	}
}
