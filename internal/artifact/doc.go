// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package artifact makes the catalog and similarity matrix available on local
disk and decodes them into a validated catalog.Dataset.

# Download On Demand

Fetcher.Ensure downloads a remote artifact only when the local path does not
exist. Presence alone is sufficient: there is no freshness or checksum check.
Downloads follow redirects, are bounded by a timeout, and are written to a
temporary file in the destination directory before being renamed into
place, so an interrupted download never leaves a truncated artifact that a
later start would mistake for a complete one.

# Formats

The file extension selects the decoder:

	catalog  .csv   header row with movie_id and title columns (any order,
	                extra columns ignored)
	catalog  .json  [{"movie_id": 19995, "title": "Avatar"}, ...]
	matrix   .json  [[1.0, 0.08, ...], ...]
	matrix   .csv   one numeric row per line, no header

# Failure

Any fetch, decode or shape error is returned to the caller. The supervisor
service that drives loading keeps the recommendation service in degraded mode
when that happens; this package never installs partial state.
*/
package artifact
