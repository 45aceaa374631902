// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"

	"github.com/tomtom215/reelmatch/internal/validation"
)

// RecommendationsRequest represents the validated query parameters for
// GET /api/v1/recommendations. The length bound keeps arbitrarily long
// input out of logs and metrics.
type RecommendationsRequest struct {
	Title string `query:"title" validate:"notblank,max=500"`
}

func parseRecommendationsRequest(r *http.Request) (RecommendationsRequest, *validation.RequestValidationError) {
	req := RecommendationsRequest{Title: r.URL.Query().Get("title")}
	return req, validation.ValidateStruct(&req)
}
