// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

// Package validation wraps a shared go-playground/validator instance used for
// configuration and API request structs.
//
// Custom tags:
//   - catalogpath: value starts with "/" or is a reserved route key
//   - httpmethod: GET, POST, PUT, PATCH, DELETE or HEAD (case-insensitive)
//
// Example:
//
//	type navigateRequest struct {
//	    Path string `json:"path" validate:"required,catalogpath"`
//	}
//
//	if err := validation.ValidateStruct(&req); err != nil {
//	    // *validation.Errors
//	}
package validation
