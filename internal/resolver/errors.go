// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package resolver

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/goccy/go-json"

	"github.com/tomtom215/mediabrowser/internal/models"
	"github.com/tomtom215/mediabrowser/internal/source"
)

// ErrorKind is the failure taxonomy reported to collaborators.
type ErrorKind string

const (
	KindContentNotFound      ErrorKind = "content-not-found"
	KindHTTPError            ErrorKind = "http-error"
	KindNetworkError         ErrorKind = "network-error"
	KindInvalidConfiguration ErrorKind = "invalid-configuration"
	KindUnknown              ErrorKind = "unknown-error"
)

var (
	// ErrNoRoute means no declared route and no default route matched.
	ErrNoRoute = errors.New("no route matches path")

	// ErrNotContextual means a queue was requested for a path without a leaf marker.
	ErrNotContextual = errors.New("path is not a contextual url")

	// ErrLeafNotFound means the selected leaf is not among the parent's playable children.
	ErrLeafNotFound = errors.New("leaf not found in container")

	// ErrSuperseded is returned by Navigate and InvalidateContentCache when a newer
	// navigation replaced the current path before the result arrived. The result
	// was not published.
	ErrSuperseded = errors.New("navigation superseded")
)

// NavigationError is a classified resolution failure.
type NavigationError struct {
	Kind       ErrorKind
	StatusCode int // set for KindHTTPError
	Path       string
	Err        error
}

func (e *NavigationError) Error() string {
	if e.Kind == KindHTTPError {
		return fmt.Sprintf("%s (%d) resolving %s: %v", e.Kind, e.StatusCode, e.Path, e.Err)
	}
	return fmt.Sprintf("%s resolving %s: %v", e.Kind, e.Path, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

type navigationErrorJSON struct {
	Kind       ErrorKind `json:"kind"`
	StatusCode int       `json:"status_code,omitempty"`
	Path       string    `json:"path"`
	Message    string    `json:"message"`
}

// MarshalJSON renders the error for notifications and API responses.
func (e *NavigationError) MarshalJSON() ([]byte, error) {
	msg := ""
	if e.Err != nil {
		msg = e.Err.Error()
	}
	return json.Marshal(navigationErrorJSON{e.Kind, e.StatusCode, e.Path, msg})
}

// UnmarshalJSON restores an error received from a notification. The cause
// is only available as its message.
func (e *NavigationError) UnmarshalJSON(data []byte) error {
	var raw navigationErrorJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.Kind = raw.Kind
	e.StatusCode = raw.StatusCode
	e.Path = raw.Path
	e.Err = nil
	if raw.Message != "" {
		e.Err = errors.New(raw.Message)
	}
	return nil
}

// Classify converts err into a NavigationError for path. An error that is
// already a NavigationError is returned unchanged.
func Classify(path string, err error) *NavigationError {
	if err == nil {
		return nil
	}

	var navErr *NavigationError
	if errors.As(err, &navErr) {
		return navErr
	}

	out := &NavigationError{Kind: KindUnknown, Path: path, Err: err}

	var statusErr *source.HTTPStatusError
	var netErr *source.NetworkError
	var transportErr net.Error
	switch {
	case errors.As(err, &statusErr):
		out.Kind = KindHTTPError
		out.StatusCode = statusErr.StatusCode
	case errors.As(err, &netErr),
		errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &transportErr):
		out.Kind = KindNetworkError
	case errors.Is(err, source.ErrInvalidSource),
		errors.Is(err, models.ErrInvalidNode):
		out.Kind = KindInvalidConfiguration
	case errors.Is(err, ErrNoRoute),
		errors.Is(err, source.ErrNoContent),
		errors.Is(err, ErrNotContextual),
		errors.Is(err, ErrLeafNotFound):
		out.Kind = KindContentNotFound
	}
	return out
}
