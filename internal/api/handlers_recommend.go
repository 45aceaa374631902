// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Movies handles GET /api/v1/movies.
// Returns every catalog entry in catalog order; the page dropdown uses the same list.
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	movies, err := h.svc.Movies()
	if err != nil {
		h.respondServiceError(rw, r, err)
		return
	}

	rw.SuccessList(movies, len(movies))
}

// Recommendations handles GET /api/v1/recommendations?title=...
//
// Responses:
//   - 200 with up to top_k enriched neighbours in rank order
//   - 400 VALIDATION_FAILED when title is missing, blank or too long
//   - 404 NOT_FOUND when the title is not in the catalog
//   - 503 SERVICE_UNAVAILABLE while no dataset is loaded
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, verr := parseRecommendationsRequest(r)
	if verr != nil {
		rw.ValidationError(verr.Error(), verr.Details())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	recs, err := h.svc.RecommendEnriched(ctx, req.Title)
	if err != nil {
		h.respondServiceError(rw, r, err)
		return
	}

	rw.SuccessList(recommendationsPayload{
		Title:           req.Title,
		Recommendations: recs,
	}, len(recs))
}

type recommendationsPayload struct {
	Title           string                     `json:"title"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

// respondServiceError maps recommend sentinel errors onto API responses.
func (h *Handler) respondServiceError(rw *ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, recommend.ErrNotFound):
		rw.NotFound("Title not found in catalog")
	case errors.Is(err, recommend.ErrUnavailable):
		rw.ServiceUnavailable("Recommendations are unavailable: model not loaded")
	default:
		h.logger.Error().
			Err(err).
			Str("request_id", rw.meta().RequestID).
			Str("path", r.URL.Path).
			Msg("Recommendation request failed")
		rw.InternalError("An internal error occurred")
	}
}
