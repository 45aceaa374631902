// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metadata

import (
	"context"
	"errors"
)

const (
	// DefaultPlaceholderPoster is shown when no provider returns a poster.
	DefaultPlaceholderPoster = "https://via.placeholder.com/500x750.png?text=No+Poster"

	// DefaultRating is shown when no rating is known.
	DefaultRating = "N/A"

	// DefaultGenre is shown when no genre is known.
	DefaultGenre = "Unknown"

	// notAvailable is the literal OMDb uses for a missing field.
	notAvailable = "N/A"
)

// ErrNoData is returned by a provider that answered but had nothing useful.
// It does not count against the provider's circuit breaker.
var ErrNoData = errors.New("provider returned no data")

// Metadata is the display information for one movie. Every field is always
// populated; missing values carry the defaults.
type Metadata struct {
	Poster string `json:"poster"`
	Rating string `json:"rating"`
	Genre  string `json:"genre"`
}

// Defaults returns metadata with every field at its fallback value.
// An empty placeholder selects DefaultPlaceholderPoster.
func Defaults(placeholder string) Metadata {
	if placeholder == "" {
		placeholder = DefaultPlaceholderPoster
	}
	return Metadata{
		Poster: placeholder,
		Rating: DefaultRating,
		Genre:  DefaultGenre,
	}
}

// Enricher fetches display metadata for a movie. Implementations never fail:
// any error degrades the affected field to its default.
type Enricher interface {
	Enrich(ctx context.Context, title string, id int) Metadata
}

// StatusEnricher is an Enricher that also reports whether every configured
// source answered. A lookup that failed with anything but ErrNoData makes the
// result incomplete; incomplete results must not be cached.
type StatusEnricher interface {
	Enricher
	EnrichStatus(ctx context.Context, title string, id int) (md Metadata, complete bool)
}

// StaticEnricher returns defaults without touching the network. It is used
// when enrichment is disabled and as a deterministic stand-in for tests.
type StaticEnricher struct {
	Placeholder string
}

// Enrich returns Defaults(s.Placeholder).
func (s StaticEnricher) Enrich(_ context.Context, _ string, _ int) Metadata {
	return Defaults(s.Placeholder)
}

// present reports whether a provider field carries a real value.
func present(v string) bool {
	return v != "" && v != notAvailable
}
