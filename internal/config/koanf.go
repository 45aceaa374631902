// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/reelmatch/config.yaml",
	"/etc/reelmatch/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8501,
			Host:            "0.0.0.0",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second, // two sequential provider calls per enrichment
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Artifacts: ArtifactsConfig{
			CatalogURL:      "",
			CatalogPath:     "data/movie_dict.csv",
			MatrixURL:       "",
			MatrixPath:      "data/similarity.csv",
			DownloadTimeout: 30 * time.Second,
			RetryInterval:   0, // load once; degraded mode persists until restart
			UserAgent:       "reelmatch/1.0",
		},
		Recommend: RecommendConfig{
			TopK: 5,
		},
		Metadata: MetadataConfig{
			Enabled: true,
			TMDB: TMDBConfig{
				BaseURL:      "https://api.themoviedb.org/3",
				ImageBaseURL: "https://image.tmdb.org/t/p",
			},
			OMDb: OMDbConfig{
				BaseURL: "https://www.omdbapi.com",
			},
			Timeout:           10 * time.Second,
			RateLimit:         20,
			PlaceholderPoster: "https://via.placeholder.com/500x750.png?text=No+Poster",
			Breaker: BreakerConfig{
				MaxRequests:  3,
				Interval:     time.Minute,
				Timeout:      2 * time.Minute,
				MinRequests:  10,
				FailureRatio: 0.6,
			},
			Cache: MetadataCacheConfig{
				Enabled:     true,
				TTL:         24 * time.Hour,
				Capacity:    10000,
				PersistPath: "",
			},
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any mapped setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// TMDB_API_KEY -> metadata.tmdb.api_key
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
// Unmapped variables are ignored so unrelated environment cannot leak in.
var envMappings = map[string]string{
	// Server mappings
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_idle_timeout":     "server.idle_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	// Artifact mappings
	"catalog_url":               "artifacts.catalog_url",
	"catalog_path":              "artifacts.catalog_path",
	"similarity_url":            "artifacts.matrix_url",
	"similarity_path":           "artifacts.matrix_path",
	"artifact_download_timeout": "artifacts.download_timeout",
	"artifact_retry_interval":   "artifacts.retry_interval",
	"artifact_user_agent":       "artifacts.user_agent",

	// Recommendation mappings
	"recommend_top_k": "recommend.top_k",

	// Metadata mappings
	"metadata_enabled":              "metadata.enabled",
	"tmdb_api_key":                  "metadata.tmdb.api_key",
	"tmdb_base_url":                 "metadata.tmdb.base_url",
	"tmdb_image_base_url":           "metadata.tmdb.image_base_url",
	"omdb_api_key":                  "metadata.omdb.api_key",
	"omdb_base_url":                 "metadata.omdb.base_url",
	"metadata_timeout":              "metadata.timeout",
	"metadata_rate_limit":           "metadata.rate_limit_per_second",
	"placeholder_poster":            "metadata.placeholder_poster",
	"metadata_breaker_max_requests": "metadata.breaker.max_requests",
	"metadata_breaker_interval":     "metadata.breaker.interval",
	"metadata_breaker_timeout":      "metadata.breaker.timeout",
	"metadata_breaker_min_requests": "metadata.breaker.min_requests",
	"metadata_breaker_failure_rate": "metadata.breaker.failure_ratio",
	"metadata_cache_enabled":        "metadata.cache.enabled",
	"metadata_cache_ttl":            "metadata.cache.ttl",
	"metadata_cache_capacity":       "metadata.cache.capacity",
	"metadata_cache_path":           "metadata.cache.persist_path",

	// Security mappings
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging mappings
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - TMDB_API_KEY -> metadata.tmdb.api_key
//   - SIMILARITY_URL -> artifacts.matrix_url
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
