// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/mediabrowser/internal/source"
	"github.com/tomtom215/mediabrowser/internal/validation"
)

const maxRequestBody = 1 << 20

var errEmptyBody = errors.New("request body is required")

// NavigateRequest is the body of POST /navigate.
type NavigateRequest struct {
	Path string `json:"path" validate:"required,catalogpath"`
}

// ResolveRequest is the body of POST /resolve. An absent use_cache reads
// through the cache. Overrides fields that are absent or null leave the
// route's settings in effect.
type ResolveRequest struct {
	Path      string            `json:"path" validate:"required,catalogpath"`
	UseCache  *bool             `json:"use_cache"`
	Overrides *source.Overrides `json:"overrides"`
}

// useCache reports whether the lookup may be served from the cache.
func (r ResolveRequest) useCache() bool {
	return r.UseCache == nil || *r.UseCache
}

// FavoritesRequest is the body of PUT /favorites.
type FavoritesRequest struct {
	IDs []string `json:"ids" validate:"dive,required"`
}

// FavoriteRequest is the body of PUT /favorites/{id}.
type FavoriteRequest struct {
	Favorite *bool `json:"favorite" validate:"required"`
}

// decodeJSON reads a size-limited JSON body into dst and validates it.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return validation.ValidateStruct(dst)
}

// pathParam reads and validates the "path" query parameter.
func pathParam(r *http.Request) (string, error) {
	p := r.URL.Query().Get("path")
	if err := validation.GetValidator().Var(p, "required,catalogpath"); err != nil {
		return "", fmt.Errorf("query parameter path must be an absolute catalog path, got %q", p)
	}
	return p, nil
}

// boolParam parses an optional boolean query parameter.
func boolParam(r *http.Request, name string, def bool) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("query parameter %s must be a boolean, got %q", name, raw)
	}
	return v, nil
}
