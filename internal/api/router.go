// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/mediabrowser/internal/middleware"
)

// Router wires the handler and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil middleware config selects the defaults.
func NewRouter(handler *Handler, mwConfig *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwConfig),
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(chiMiddleware(middleware.AccessLog))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("no such endpoint")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).Error(http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "method not allowed")
	})

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		// WebSocket upgrades must not pass through Compress.
		r.With(router.chiMiddleware.RateLimitWebSocket()).Get("/ws", router.handler.WebSocket)

		r.Group(func(r chi.Router) {
			r.Use(chimiddleware.Compress(5, "application/json"))

			r.Get("/browse", router.handler.Browse)
			r.Get("/search", router.handler.Search)
			r.Get("/queue", router.handler.Queue)
			r.Get("/tabs", router.handler.Tabs)
			r.Get("/state", router.handler.State)
			r.Get("/leaf", router.handler.Leaf)
			r.Get("/cache/stats", router.handler.CacheStats)
			r.Get("/favorites", router.handler.Favorites)

			r.Group(func(r chi.Router) {
				r.Use(router.chiMiddleware.RateLimitWrite())
				r.Post("/navigate", router.handler.Navigate)
				r.Post("/resolve", router.handler.Resolve)
				r.Delete("/cache", router.handler.InvalidateCache)
				r.Put("/favorites", router.handler.SetFavorites)
				r.Put("/favorites/{id}", router.handler.UpdateFavorite)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
