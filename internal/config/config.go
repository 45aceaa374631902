// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Artifacts ArtifactsConfig `koanf:"artifacts"`
	Recommend RecommendConfig `koanf:"recommend"`
	Metadata  MetadataConfig  `koanf:"metadata"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	Environment     string        `koanf:"environment" validate:"oneof=development staging production"`
}

// ArtifactsConfig locates the catalog and similarity matrix.
//
// Environment Variables:
//   - CATALOG_URL, CATALOG_PATH
//   - SIMILARITY_URL, SIMILARITY_PATH
//   - ARTIFACT_DOWNLOAD_TIMEOUT (default: 30s)
//   - ARTIFACT_RETRY_INTERVAL (default: 0, load is attempted once)
//
// A local file at the path is used as-is; the URL is only fetched when the
// file is missing. Supported formats are chosen by extension (.csv, .json).
type ArtifactsConfig struct {
	CatalogURL      string        `koanf:"catalog_url" validate:"omitempty,httpurl"`
	CatalogPath     string        `koanf:"catalog_path" validate:"required"`
	MatrixURL       string        `koanf:"matrix_url" validate:"omitempty,httpurl"`
	MatrixPath      string        `koanf:"matrix_path" validate:"required"`
	DownloadTimeout time.Duration `koanf:"download_timeout" validate:"gt=0"`
	RetryInterval   time.Duration `koanf:"retry_interval" validate:"gte=0"`
	UserAgent       string        `koanf:"user_agent"`
}

// RecommendConfig holds ranking settings.
type RecommendConfig struct {
	TopK int `koanf:"top_k" validate:"min=1,max=50"`
}

// MetadataConfig holds enrichment provider settings.
//
// Environment Variables:
//   - METADATA_ENABLED (default: true)
//   - TMDB_API_KEY, TMDB_BASE_URL, TMDB_IMAGE_BASE_URL
//   - OMDB_API_KEY, OMDB_BASE_URL
//   - METADATA_TIMEOUT (default: 10s)
//   - METADATA_RATE_LIMIT (requests per second per provider, default: 20)
//   - PLACEHOLDER_POSTER
//   - METADATA_CACHE_ENABLED, METADATA_CACHE_TTL, METADATA_CACHE_CAPACITY,
//     METADATA_CACHE_PATH
//
// A provider without an API key is skipped. With neither key set every
// recommendation carries the placeholder poster, "N/A" and "Unknown".
type MetadataConfig struct {
	Enabled           bool                `koanf:"enabled"`
	TMDB              TMDBConfig          `koanf:"tmdb"`
	OMDb              OMDbConfig          `koanf:"omdb"`
	Timeout           time.Duration       `koanf:"timeout" validate:"gt=0"`
	RateLimit         float64             `koanf:"rate_limit_per_second" validate:"gte=0"`
	PlaceholderPoster string              `koanf:"placeholder_poster" validate:"httpurl"`
	Breaker           BreakerConfig       `koanf:"breaker"`
	Cache             MetadataCacheConfig `koanf:"cache"`
}

// TMDBConfig configures the id-keyed poster provider.
type TMDBConfig struct {
	BaseURL      string `koanf:"base_url" validate:"httpurl"`
	ImageBaseURL string `koanf:"image_base_url" validate:"httpurl"`
	APIKey       string `koanf:"api_key"`
}

// OMDbConfig configures the title-keyed poster, rating and genre provider.
type OMDbConfig struct {
	BaseURL string `koanf:"base_url" validate:"httpurl"`
	APIKey  string `koanf:"api_key"`
}

// BreakerConfig tunes the per-provider circuit breakers.
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests" validate:"min=1"`
	Interval     time.Duration `koanf:"interval" validate:"gte=0"`
	Timeout      time.Duration `koanf:"timeout" validate:"gt=0"`
	MinRequests  uint32        `koanf:"min_requests" validate:"min=1"`
	FailureRatio float64       `koanf:"failure_ratio" validate:"gt=0,lte=1"`
}

// MetadataCacheConfig configures enrichment memoization. PersistPath enables
// the BadgerDB tier.
type MetadataCacheConfig struct {
	Enabled     bool          `koanf:"enabled"`
	TTL         time.Duration `koanf:"ttl" validate:"gt=0"`
	Capacity    int           `koanf:"capacity" validate:"min=1"`
	PersistPath string        `koanf:"persist_path"`
}

// SecurityConfig holds inbound HTTP protection settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}

// Load reads configuration with the following precedence (highest to lowest):
//  1. Environment variables
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Built-in defaults
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
