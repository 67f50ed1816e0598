// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/mediabrowser/internal/resolver"
	"github.com/tomtom215/mediabrowser/internal/validation"
)

// statusForNavigationError maps an error kind to an HTTP status and code.
func statusForNavigationError(e *resolver.NavigationError) (int, string) {
	switch e.Kind {
	case resolver.KindContentNotFound:
		return http.StatusNotFound, ErrCodeNotFound
	case resolver.KindHTTPError:
		return http.StatusBadGateway, ErrCodeUpstreamError
	case resolver.KindNetworkError:
		if errors.Is(e, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout, ErrCodeUpstreamTimeout
		}
		return http.StatusBadGateway, ErrCodeUpstreamUnreachable
	case resolver.KindInvalidConfiguration:
		return http.StatusInternalServerError, ErrCodeInvalidConfig
	default:
		return http.StatusInternalServerError, ErrCodeInternalError
	}
}

// writeError renders err in the standard envelope. Navigation errors carry
// their classified form in details.
func writeError(rw *ResponseWriter, err error) {
	var navErr *resolver.NavigationError
	var validationErr *validation.Errors
	switch {
	case errors.Is(err, resolver.ErrSuperseded):
		rw.Conflict(ErrCodeSuperseded, "navigation was superseded by a newer one")
	case errors.As(err, &navErr):
		status, code := statusForNavigationError(navErr)
		rw.ErrorWithDetails(status, code, navErr.Error(), navErr)
	case errors.As(err, &validationErr):
		rw.ValidationError("request validation failed", validationErr.Details())
	case errors.Is(err, resolver.ErrEmptyFavoriteID):
		rw.BadRequest(err.Error())
	default:
		rw.InternalError(err.Error())
	}
}
