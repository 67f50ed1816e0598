// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package source

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSource indicates a route source that cannot run as declared.
	ErrInvalidSource = errors.New("invalid route source")

	// ErrNoContent indicates a source that completed without producing a container.
	ErrNoContent = errors.New("route source returned no content")
)

// HTTPStatusError is returned for non-2xx upstream responses.
type HTTPStatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream %s returned status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("upstream %s returned status %d: %s", e.URL, e.StatusCode, e.Body)
}

// NetworkError wraps transport level failures: connection errors, timeouts
// and requests rejected by the circuit breaker.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
