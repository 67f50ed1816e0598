// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// FavoritesResponse lists the favorite ids.
type FavoritesResponse struct {
	IDs []string `json:"ids"`
}

// Favorites handles GET /api/v1/favorites.
func (h *Handler) Favorites(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.favoriteIDs())
}

// SetFavorites handles PUT /api/v1/favorites, replacing the whole set.
func (h *Handler) SetFavorites(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req FavoritesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badInput(rw, err)
		return
	}

	if err := h.resolver.SetFavorites(r.Context(), req.IDs); err != nil {
		writeError(rw, err)
		return
	}
	rw.Success(h.favoriteIDs())
}

func (h *Handler) favoriteIDs() FavoritesResponse {
	ids := h.resolver.Favorites()
	if ids == nil {
		ids = []string{}
	}
	return FavoritesResponse{IDs: ids}
}

// UpdateFavorite handles PUT /api/v1/favorites/{id}. Ids that are catalog
// paths are sent percent-encoded ("%2Falbums%2F1").
func (h *Handler) UpdateFavorite(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req FavoriteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badInput(rw, err)
		return
	}

	id, err := url.PathUnescape(chi.URLParam(r, "id"))
	if err != nil {
		rw.BadRequest("invalid favorite id")
		return
	}
	if err := h.resolver.UpdateFavorite(r.Context(), id, *req.Favorite); err != nil {
		writeError(rw, err)
		return
	}
	rw.Success(h.favoriteIDs())
}
