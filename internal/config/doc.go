// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package config provides centralized configuration management for Reelmatch.

Configuration is layered with Koanf v2:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: CONFIG_PATH, else config.yaml, config.yml,
    /etc/reelmatch/config.yaml, /etc/reelmatch/config.yml
 3. Environment variables, through an explicit mapping table

Only mapped environment variables are read; anything else in the process
environment is ignored.

# Sections

	server:      host, port (8501), read/write/idle/shutdown timeouts, environment
	artifacts:   catalog_url, catalog_path, matrix_url, matrix_path,
	             download_timeout (30s), retry_interval (0 = load once), user_agent
	recommend:   top_k (5, range 1..50)
	metadata:    enabled, tmdb{base_url, image_base_url, api_key},
	             omdb{base_url, api_key}, timeout (10s), rate_limit_per_second,
	             placeholder_poster, breaker{...}, cache{enabled, ttl, capacity, persist_path}
	security:    rate_limit_reqs, rate_limit_window, rate_limit_disabled, cors_origins
	logging:     level, format, caller

# Example config.yaml

	server:
	  port: 8501
	artifacts:
	  catalog_url: https://example.com/movie_dict.csv
	  catalog_path: /data/movie_dict.csv
	  matrix_url: https://example.com/similarity.csv
	  matrix_path: /data/similarity.csv
	metadata:
	  tmdb:
	    api_key: ${TMDB_API_KEY}
	  cache:
	    persist_path: /data/metadata-cache

YAML values are not expanded; set secrets through TMDB_API_KEY and
OMDB_API_KEY instead of committing them to the file.

# Validation

Validate runs struct-tag checks through the shared validation package and
then cross-field rules: the two artifact paths must differ, provider base
URLs must not carry query strings, API keys must not look like placeholders,
rate limit and logging values must be in range. Load fails on the first
violation.
*/
package config
