// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import "fmt"

const (
	// DefaultTopK is the number of recommendations returned per lookup.
	DefaultTopK = 5

	// MaxTopK bounds TopK.
	MaxTopK = 50
)

// Config contains configuration for the recommendation engine.
type Config struct {
	// TopK is the maximum number of results per lookup.
	TopK int `json:"top_k"`
}

// DefaultConfig returns a configuration with production defaults.
func DefaultConfig() *Config {
	return &Config{TopK: DefaultTopK}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.TopK < 1 || c.TopK > MaxTopK {
		return fmt.Errorf("top_k must be in [1, %d], got %d", MaxTopK, c.TopK)
	}
	return nil
}
