// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metadata

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// PosterSource resolves a poster URL from a numeric movie id.
type PosterSource interface {
	PosterURL(ctx context.Context, id int) (string, error)
}

// TitleSource resolves poster, rating and genre from a title.
type TitleSource interface {
	Lookup(ctx context.Context, title string) (OMDbResult, error)
}

// ProviderEnricher queries the id-keyed source for a poster, then the
// title-keyed source for poster, rating and genre. A poster from the title
// source wins over the id source. Either source may be nil.
type ProviderEnricher struct {
	byID        PosterSource
	byTitle     TitleSource
	placeholder string
	logger      zerolog.Logger
}

// NewProviderEnricher creates an enricher over the given sources.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewProviderEnricher(byID PosterSource, byTitle TitleSource, placeholder string, logger zerolog.Logger) *ProviderEnricher {
	return &ProviderEnricher{
		byID:        byID,
		byTitle:     byTitle,
		placeholder: placeholder,
		logger:      logger.With().Str("component", "metadata").Logger(),
	}
}

// Enrich implements Enricher. The two lookups run one after the other so the
// precedence rule is applied on complete data; callers parallelize across
// movies with EnrichAll.
func (p *ProviderEnricher) Enrich(ctx context.Context, title string, id int) Metadata {
	md, _ := p.EnrichStatus(ctx, title, id)
	return md
}

// EnrichStatus implements StatusEnricher. complete is false when a source
// failed for any reason other than having no data for the movie.
func (p *ProviderEnricher) EnrichStatus(ctx context.Context, title string, id int) (Metadata, bool) {
	md := Defaults(p.placeholder)
	complete := true

	if p.byID != nil {
		poster, err := p.byID.PosterURL(ctx, id)
		switch {
		case err == nil && poster != "":
			md.Poster = poster
		case err != nil:
			p.logFailure(err, "tmdb", title, id)
			complete = complete && errors.Is(err, ErrNoData)
		}
	}

	if p.byTitle != nil {
		r, err := p.byTitle.Lookup(ctx, title)
		if err != nil {
			p.logFailure(err, "omdb", title, id)
			return md, complete && errors.Is(err, ErrNoData)
		}
		if r.Poster != "" {
			md.Poster = r.Poster
		}
		if r.Rating != "" {
			md.Rating = r.Rating
		}
		if r.Genre != "" {
			md.Genre = r.Genre
		}
	}

	return md, complete
}

func (p *ProviderEnricher) logFailure(err error, provider, title string, id int) {
	p.logger.Debug().
		Err(err).
		Bool("no_data", errors.Is(err, ErrNoData)).
		Str("provider", provider).
		Str("title", title).
		Int("movie_id", id).
		Msg("Metadata lookup failed, using defaults")
}
