// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 as long as the process serves HTTP, even in degraded mode.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// readiness is the body of the readiness probe.
type readiness struct {
	Status  string           `json:"status"`
	Dataset recommend.Status `json:"dataset"`
	Uptime  float64          `json:"uptime"`
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 200 once a dataset is installed and 503 while degraded. The body
// carries the dataset status in both cases, including the last load error.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	st := h.svc.Status()

	body := readiness{
		Status:  "ready",
		Dataset: st,
		Uptime:  time.Since(h.startTime).Seconds(),
	}
	code := http.StatusOK
	if !st.Ready {
		body.Status = "degraded"
		code = http.StatusServiceUnavailable
	}

	NewResponseWriter(w, r).Status(code, body)
}
