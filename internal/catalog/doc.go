// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package catalog holds the fixed movie catalog and the precomputed
// similarity matrix aligned to it.
//
// # Data Model
//
// A Catalog is an ordered list of entries. The position of an entry is its
// index, and the index addresses both the row and the column of the Matrix:
//
//	matrix.Row(i)[j] == similarity(catalog.At(i), catalog.At(j))
//
// Scores are opaque real numbers. No normalization or symmetry is assumed,
// but NaN and infinities are rejected at load because they have no order.
//
// # Title Lookup
//
// Titles are the human-facing lookup key and are not guaranteed unique.
// IndexOf resolves a title to the FIRST entry carrying it in catalog order;
// later duplicates are reachable by index only.
//
// # Lifecycle
//
// A Dataset pairs a Catalog with a Matrix and is validated once on
// construction. A dimension mismatch is a fatal error and no Dataset is
// returned. After construction nothing mutates a Dataset, so it is safe for
// concurrent readers without locking.
package catalog
