// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

// Package routing matches catalog paths against declared route patterns.
//
// Scores: constant segment 1000, "{param}" 100, "*" 10, trailing "**" 1.
// "/artists/{id}" (1100) therefore beats "/artists/*" (1010), which beats
// "/artists/**" (1001).
package routing
