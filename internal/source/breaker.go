// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package source

import (
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/mediabrowser/internal/logging"
	"github.com/tomtom215/mediabrowser/internal/metrics"
	"github.com/tomtom215/mediabrowser/internal/models"
)

// BreakerSettings configures the upstream circuit breaker.
type BreakerSettings struct {
	Name         string
	MaxRequests  uint32        // requests allowed through while half-open
	Interval     time.Duration // closed-state counting window
	Timeout      time.Duration // open-state duration before probing
	MinRequests  uint32        // requests required before the ratio is considered
	FailureRatio float64       // failure ratio that opens the circuit
}

// DefaultBreakerSettings returns the defaults used for upstream catalogs.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		Name:         "catalog-upstream",
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      30 * time.Second,
		MinRequests:  10,
		FailureRatio: 0.6,
	}
}

type breaker struct {
	cb   *gobreaker.CircuitBreaker[*models.Container]
	name string
}

func newBreaker(s BreakerSettings) *breaker {
	def := DefaultBreakerSettings()
	if s.Name == "" {
		s.Name = def.Name
	}
	if s.MaxRequests == 0 {
		s.MaxRequests = def.MaxRequests
	}
	if s.MinRequests == 0 {
		s.MinRequests = def.MinRequests
	}
	if s.FailureRatio <= 0 {
		s.FailureRatio = def.FailureRatio
	}

	metrics.CircuitBreakerState.WithLabelValues(s.Name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(s.Name).Set(0)

	cb := gobreaker.NewCircuitBreaker[*models.Container](gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			trip := ratio >= s.FailureRatio
			if trip {
				logging.Warn().Str("breaker", s.Name).Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return trip
		},
		// Upstream 4xx answers mean the upstream is healthy.
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var statusErr *HTTPStatusError
			return errors.As(err, &statusErr) && statusErr.StatusCode < 500
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})
	return &breaker{cb: cb, name: s.Name}
}

// execute runs fn through the breaker. Rejections are returned as NetworkError.
func (b *breaker) execute(fn func() (*models.Container, error)) (*models.Container, error) {
	result, err := b.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			logging.Warn().Err(err).Str("breaker", b.name).Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, &NetworkError{Op: "circuit breaker " + b.name, Err: err}
		}
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(b.cb.Counts().ConsecutiveFailures))
		return nil, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return result, nil
}

// State returns the breaker state name.
func (b *breaker) State() string {
	return stateToString(b.cb.State())
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
