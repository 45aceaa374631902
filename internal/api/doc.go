// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package api provides the HTTP surface of the recommendation service.

Routes:

	GET /                            recommendation page (dropdown, cards)
	GET /api/v1/movies               catalog entries in catalog order
	GET /api/v1/recommendations      ?title=... enriched neighbours
	GET /api/v1/health/live          liveness, always 200
	GET /api/v1/health/ready         200 when a dataset is loaded, 503 otherwise
	GET /metrics                     Prometheus exposition

JSON endpoints answer with the APIResponse envelope:

	{"success": true, "data": ..., "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 3, "count": 5}}
	{"success": false, "error": {"code": "NOT_FOUND", "message": "..."}, "meta": {...}}

Error codes map from recommend sentinels: recommend.ErrNotFound becomes
404 NOT_FOUND, recommend.ErrUnavailable becomes 503 SERVICE_UNAVAILABLE, and
query validation failures become 400 VALIDATION_FAILED with field details.

Middleware order is request ID, real IP, panic recovery and metrics for every
route, then per-group CORS, rate limiting (go-chi/httprate), security headers
and gzip.
*/
package api
