// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/mediabrowser/internal/logging"
)

// APIResponse is the envelope of every API response. Exactly one of Data
// and Error is set.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *APIMeta    `json:"meta,omitempty"`
}

// APIError describes a failure. Code is stable and machine-readable;
// Details carries the classified navigation error or the failing fields.
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`

	RequestID string `json:"request_id,omitempty"`
}

// APIMeta is attached to every response.
type APIMeta struct {
	RequestID  string    `json:"request_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	DurationMs int64     `json:"duration_ms,omitempty"`

	// Cached is set by browse and resolve when the caller asked for a cached answer.
	Cached *bool `json:"cached,omitempty"`
}

const (
	ErrCodeBadRequest          = "BAD_REQUEST"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeMethodNotAllowed    = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests     = "TOO_MANY_REQUESTS"
	ErrCodeInternalError       = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
	ErrCodeUpstreamError       = "UPSTREAM_ERROR"
	ErrCodeUpstreamTimeout     = "UPSTREAM_TIMEOUT"
	ErrCodeUpstreamUnreachable = "UPSTREAM_UNREACHABLE"
	ErrCodeInvalidConfig       = "INVALID_CONFIGURATION"
	ErrCodeSuperseded          = "NAVIGATION_SUPERSEDED"
)

// ResponseWriter writes APIResponse envelopes for one request. It stamps
// every response with the request ID and the time spent since creation.
type ResponseWriter struct {
	w       http.ResponseWriter
	r       *http.Request
	started time.Time
}

// NewResponseWriter starts timing a response for r.
func NewResponseWriter(w http.ResponseWriter, r *http.Request) *ResponseWriter {
	return &ResponseWriter{w: w, r: r, started: time.Now()}
}

// meta fills the request ID, timestamp and duration into m.
func (rw *ResponseWriter) meta(m *APIMeta) *APIMeta {
	if m == nil {
		m = &APIMeta{}
	}
	m.RequestID = logging.RequestIDFromContext(rw.r.Context())
	m.Timestamp = time.Now()
	m.DurationMs = time.Since(rw.started).Milliseconds()
	return m
}

// Success writes 200 with data.
func (rw *ResponseWriter) Success(data interface{}) {
	rw.SuccessWithMeta(data, nil)
}

// SuccessWithMeta writes 200 with data and extra metadata.
func (rw *ResponseWriter) SuccessWithMeta(data interface{}, meta *APIMeta) {
	rw.writeJSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: rw.meta(meta)})
}

// NoContent writes 204.
func (rw *ResponseWriter) NoContent() {
	rw.w.WriteHeader(http.StatusNoContent)
}

// Error writes an error envelope without details.
func (rw *ResponseWriter) Error(statusCode int, code, message string) {
	rw.ErrorWithDetails(statusCode, code, message, nil)
}

// ErrorWithDetails writes an error envelope. details is serialized as is.
func (rw *ResponseWriter) ErrorWithDetails(statusCode int, code, message string, details interface{}) {
	meta := rw.meta(nil)
	rw.writeJSON(statusCode, APIResponse{
		Error: &APIError{Code: code, Message: message, Details: details, RequestID: meta.RequestID},
		Meta:  meta,
	})
}

func (rw *ResponseWriter) BadRequest(message string) {
	rw.Error(http.StatusBadRequest, ErrCodeBadRequest, message)
}

func (rw *ResponseWriter) NotFound(message string) {
	rw.Error(http.StatusNotFound, ErrCodeNotFound, message)
}

func (rw *ResponseWriter) Conflict(code, message string) {
	rw.Error(http.StatusConflict, code, message)
}

func (rw *ResponseWriter) TooManyRequests(message string) {
	rw.Error(http.StatusTooManyRequests, ErrCodeTooManyRequests, message)
}

func (rw *ResponseWriter) InternalError(message string) {
	rw.Error(http.StatusInternalServerError, ErrCodeInternalError, message)
}

func (rw *ResponseWriter) ServiceUnavailable(message string, details interface{}) {
	rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, message, details)
}

// ValidationError writes 400 with the failing fields in details.
func (rw *ResponseWriter) ValidationError(message string, fields interface{}) {
	rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeValidationFailed, message, fields)
}

func (rw *ResponseWriter) writeJSON(statusCode int, body APIResponse) {
	rw.w.Header().Set("Content-Type", "application/json; charset=utf-8")
	rw.w.WriteHeader(statusCode)

	if err := json.NewEncoder(rw.w).Encode(body); err != nil {
		logging.Ctx(rw.r.Context()).Error().Err(err).Int("status", statusCode).Msg("Failed to encode JSON response")
	}
}
