// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Recommender is the read side of recommend.Service used by the handlers.
type Recommender interface {
	Ready() bool
	Status() recommend.Status
	Titles() ([]string, error)
	Movies() ([]catalog.Entry, error)
	RecommendEnriched(ctx context.Context, title string) ([]recommend.Recommendation, error)
}

// Handler serves the JSON API and the HTML page.
type Handler struct {
	svc       Recommender
	logger    zerolog.Logger
	startTime time.Time

	// requestTimeout bounds one recommendation request including enrichment.
	requestTimeout time.Duration
}

// DefaultRequestTimeout covers two sequential metadata calls at their
// default 10s timeout plus headroom.
const DefaultRequestTimeout = 25 * time.Second

// requestTimeoutHeadroom is added on top of the enrichment budget.
const requestTimeoutHeadroom = 5 * time.Second

// RequestTimeoutFor returns a request deadline that lets the TMDB and OMDb
// calls for one movie each run to metadataTimeout.
func RequestTimeoutFor(metadataTimeout time.Duration) time.Duration {
	if metadataTimeout <= 0 {
		return DefaultRequestTimeout
	}
	return 2*metadataTimeout + requestTimeoutHeadroom
}

// NewHandler creates a Handler over svc.
func NewHandler(svc Recommender, logger zerolog.Logger) *Handler {
	return &Handler{
		svc:            svc,
		logger:         logger.With().Str("component", "api").Logger(),
		startTime:      time.Now(),
		requestTimeout: DefaultRequestTimeout,
	}
}

// SetRequestTimeout overrides DefaultRequestTimeout. Non-positive values are ignored.
func (h *Handler) SetRequestTimeout(d time.Duration) {
	if d > 0 {
		h.requestTimeout = d
	}
}
