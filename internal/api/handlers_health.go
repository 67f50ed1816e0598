// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package api

import (
	"context"
	"net/http"
	"sort"
	"time"
)

const readinessTimeout = 2 * time.Second

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// ReadinessStatus is the body of /health/ready.
type ReadinessStatus struct {
	Ready  bool              `json:"ready"`
	Routes int               `json:"routes"`
	Checks map[string]string `json:"checks"`
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// The service is ready when routes are loaded and every registered check passes.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	status := ReadinessStatus{
		Ready:  true,
		Routes: len(h.resolver.Patterns()),
		Checks: make(map[string]string, len(h.checks)+1),
	}

	if status.Routes == 0 {
		status.Ready = false
		status.Checks["routes"] = "no routes configured"
	} else {
		status.Checks["routes"] = "ok"
	}

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			status.Ready = false
			status.Checks[name] = err.Error()
			continue
		}
		status.Checks[name] = "ok"
	}

	if !status.Ready {
		rw.ServiceUnavailable("service not ready", status)
		return
	}
	rw.Success(status)
}
