// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package main is the entry point for the Reelmatch server.

Reelmatch serves content-based movie recommendations from a precomputed
catalog and similarity matrix. A visitor picks a title from a dropdown and
gets the five most similar movies with poster, rating and genre.

# Application Architecture

Processes run under a Suture v4 supervisor tree:

	RootSupervisor ("reelmatch")
	├── DataSupervisor ("data-layer")
	│   └── Dataset Service (download, decode, install)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (page, JSON API, health, metrics)

Initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Metadata: TMDB and OMDb clients behind circuit breakers and a cache
 4. Recommendation service: empty until the dataset is installed
 5. Supervisor tree: dataset service and HTTP server

The HTTP server starts immediately. Until the dataset is installed, or if
loading fails, the page shows "Model not loaded" and the JSON API answers
503 SERVICE_UNAVAILABLE.

# Configuration

Common environment variables:

	HTTP_PORT            listen port (default 8501)
	CATALOG_PATH         local catalog file (.csv or .json)
	CATALOG_URL          download source when CATALOG_PATH is missing
	SIMILARITY_PATH      local similarity matrix file
	SIMILARITY_URL       download source when SIMILARITY_PATH is missing
	TMDB_API_KEY         enables TMDB posters
	OMDB_API_KEY         enables OMDb posters, ratings and genres
	LOG_LEVEL, LOG_FORMAT

# Signals

SIGINT and SIGTERM cancel the root context. The HTTP server drains within
SHUTDOWN_TIMEOUT and the process exits after the tree stops.
*/
package main
