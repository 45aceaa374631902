// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package logging provides centralized zerolog-based structured logging for Reelmatch.
//
// # Overview
//
// The package provides:
//   - A process-wide zerolog logger configured once from config
//   - JSON output for production, console output for development
//   - Request and correlation IDs carried through context.Context
//   - An slog.Handler backed by zerolog for the Suture supervisor
//   - Redaction helpers for provider API keys embedded in URLs
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("entries", n).Msg("Dataset loaded")
//	logging.Ctx(ctx).Debug().Str("title", title).Msg("Recommendation served")
//
// Components receive a zerolog.Logger by value and add their own field:
//
//	logger := logging.WithComponent("metadata")
//
// # Secrets
//
// TMDB and OMDb authenticate with a key in the query string. Never log a
// provider URL directly; pass it through RedactURL first.
package logging
