// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

// Package logging provides the process-wide zerolog logger.
//
//	logging.Init(logging.Config{Level: "debug", Format: "console"})
//	logging.Info().Str("addr", addr).Msg("Server starting")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Upstream request failed")
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never written.
//
// Ctx adds correlation_id, request_id and the catalog path from the context.
// NewSlogHandler adapts the logger for slog consumers such as sutureslog.
package logging
