// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Page messages shown below the selector.
const (
	msgNotFound     = "That title is not in the catalog."
	msgInvalidTitle = "Choose a movie from the list."
	msgNoNeighbours = "No recommendations available for this title."
)

// pageData is the view model for templates/index.html.
type pageData struct {
	Titles   []string
	Selected string
	Results  []recommend.Recommendation
	Message  string
	Degraded bool
}

// Index handles GET /, the recommendation page.
//
// Without a title it renders the selector. With ?title= it renders up to
// top_k poster cards, or a not-found message. While no dataset is loaded
// the page shows the degraded banner with status 503.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	titles, err := h.svc.Titles()
	if err != nil {
		if !errors.Is(err, recommend.ErrUnavailable) {
			h.renderError(w, r, err)
			return
		}
		h.render(w, r, http.StatusServiceUnavailable, pageData{Degraded: true})
		return
	}

	data := pageData{Titles: titles}

	query := r.URL.Query()
	if !query.Has("title") {
		h.render(w, r, http.StatusOK, data)
		return
	}

	req, verr := parseRecommendationsRequest(r)
	if verr != nil {
		data.Message = msgInvalidTitle
		h.render(w, r, http.StatusBadRequest, data)
		return
	}
	data.Selected = req.Title

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	recs, err := h.svc.RecommendEnriched(ctx, req.Title)
	switch {
	case errors.Is(err, recommend.ErrNotFound):
		data.Message = msgNotFound
		h.render(w, r, http.StatusNotFound, data)
		return
	case errors.Is(err, recommend.ErrUnavailable):
		h.render(w, r, http.StatusServiceUnavailable, pageData{Degraded: true})
		return
	case err != nil:
		h.renderError(w, r, err)
		return
	}

	data.Results = recs
	if len(recs) == 0 {
		data.Message = msgNoNeighbours
	}
	h.render(w, r, http.StatusOK, data)
}

// render executes the template into a buffer first so a template failure
// never leaves a half-written page behind a 200.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		h.renderError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write page")
	}
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error().
		Err(err).
		Str("request_id", logging.RequestIDFromContext(r.Context())).
		Msg("Page render failed")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
