// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide; it caches struct
// metadata after first use and is safe for concurrent calls. Both the
// configuration loader and the HTTP handlers validate through it so that
// error messages have one shape.
//
// Field names in errors come from the koanf, json or query struct tag, so a
// configuration error reads "server.port must be at most 65535" and a request
// error reads "title must not be blank".
//
// # Custom Tags
//
//   - notblank: string is non-empty after trimming whitespace
//   - httpurl: absolute http or https URL with a host
//
// # Example
//
//	type recommendQuery struct {
//	    Title string `query:"title" validate:"notblank,max=500"`
//	}
//
//	if verr := validation.ValidateStruct(&q); verr != nil {
//	    rw.ValidationError(verr.Error(), verr.Details())
//	    return
//	}
package validation
