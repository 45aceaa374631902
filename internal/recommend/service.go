// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/metadata"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// Service is the process-wide recommendation state. It starts degraded and
// becomes ready once Install succeeds; the installed dataset is never
// replaced for the life of the process.
type Service struct {
	cfg      *Config
	enricher metadata.Enricher
	logger   zerolog.Logger

	engine atomic.Pointer[Engine]

	mu        sync.RWMutex
	lastErr   error
	failedAt  time.Time
	failures  int64
	installMu sync.Mutex
}

// NewService creates a degraded service. A nil enricher serves placeholders.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewService(cfg *Config, enricher metadata.Enricher, logger zerolog.Logger) (*Service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if enricher == nil {
		enricher = metadata.StaticEnricher{}
	}

	metrics.RecordDatasetState(false, 0)

	return &Service{
		cfg:      cfg,
		enricher: enricher,
		logger:   logger.With().Str("component", "recommend_service").Logger(),
	}, nil
}

// Install makes ds the served dataset. It fails with ErrAlreadyLoaded once a
// dataset is in place.
func (s *Service) Install(ds *catalog.Dataset) error {
	s.installMu.Lock()
	defer s.installMu.Unlock()

	if s.engine.Load() != nil {
		return ErrAlreadyLoaded
	}

	engine, err := NewEngine(ds, s.cfg, s.logger)
	if err != nil {
		return err
	}
	if !s.engine.CompareAndSwap(nil, engine) {
		return ErrAlreadyLoaded
	}

	metrics.RecordDatasetState(true, ds.Size())
	s.logger.Info().
		Int("entries", ds.Size()).
		Int("top_k", engine.TopK()).
		Msg("Dataset installed, recommendations ready")
	return nil
}

// RecordLoadFailure notes a failed load attempt. The service stays degraded.
func (s *Service) RecordLoadFailure(err error) {
	if err == nil {
		return
	}

	s.mu.Lock()
	s.lastErr = err
	s.failedAt = time.Now()
	s.failures++
	failures := s.failures
	s.mu.Unlock()

	metrics.ArtifactLoadFailures.Inc()
	s.logger.Error().Err(err).Int64("failures", failures).Msg("Dataset load failed, serving in degraded mode")
}

// Ready reports whether a dataset is installed.
func (s *Service) Ready() bool {
	return s.engine.Load() != nil
}

// Status returns a snapshot for health checks and the UI.
func (s *Service) Status() Status {
	s.mu.RLock()
	st := Status{
		FailedAt: s.failedAt,
		Failures: s.failures,
	}
	if s.lastErr != nil {
		st.LastError = s.lastErr.Error()
	}
	s.mu.RUnlock()

	if e := s.engine.Load(); e != nil {
		ds := e.Dataset()
		st.Ready = true
		st.Entries = ds.Size()
		st.LoadedAt = ds.LoadedAt()
	}
	return st
}

// Titles returns catalog titles in catalog order, or ErrUnavailable.
func (s *Service) Titles() ([]string, error) {
	e, err := s.current()
	if err != nil {
		return nil, err
	}
	return e.Dataset().Catalog().Titles(), nil
}

// Movies returns catalog entries in catalog order, or ErrUnavailable.
func (s *Service) Movies() ([]catalog.Entry, error) {
	e, err := s.current()
	if err != nil {
		return nil, err
	}
	return e.Dataset().Catalog().Entries(), nil
}

// Recommend returns the ranked neighbours of title without metadata.
func (s *Service) Recommend(_ context.Context, title string) ([]Result, error) {
	start := time.Now()

	e, err := s.current()
	if err != nil {
		metrics.RecordRecommendation("unavailable", time.Since(start))
		return []Result{}, err
	}

	results, err := e.Recommend(title)
	metrics.RecordRecommendation(outcome(err), time.Since(start))
	return results, err
}

// RecommendEnriched returns the ranked neighbours of title with metadata.
// Enrichment runs concurrently but never reorders or drops results.
func (s *Service) RecommendEnriched(ctx context.Context, title string) ([]Recommendation, error) {
	results, err := s.Recommend(ctx, title)
	if err != nil {
		return []Recommendation{}, err
	}

	items := make([]metadata.Item, len(results))
	for i, r := range results {
		items[i] = metadata.Item{Title: r.Title, ID: r.ID}
	}
	mds := metadata.EnrichAll(ctx, s.enricher, items)

	recs := make([]Recommendation, len(results))
	for i, r := range results {
		recs[i] = Recommendation{Result: r, Metadata: mds[i]}
	}
	return recs, nil
}

func (s *Service) current() (*Engine, error) {
	if e := s.engine.Load(); e != nil {
		return e, nil
	}

	s.mu.RLock()
	lastErr := s.lastErr
	s.mu.RUnlock()

	if lastErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, lastErr)
	}
	return nil, ErrUnavailable
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
