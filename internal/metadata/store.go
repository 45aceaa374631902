// Reelmatch - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metadata

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

const metadataKeyPrefix = "metadata:"

// Store is a persistent metadata tier shared across restarts.
type Store interface {
	Get(key string) (Metadata, bool, error)
	Set(key string, md Metadata) error
	Close() error
}

// BadgerStore persists metadata in BadgerDB with a per-entry TTL.
type BadgerStore struct {
	db  *badger.DB
	ttl time.Duration
}

// OpenBadgerStore opens (or creates) a store at dir. Entries expire after ttl.
func OpenBadgerStore(dir string, ttl time.Duration) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", dir, err)
	}
	return NewBadgerStore(db, ttl), nil
}

// NewBadgerStore wraps an already open database.
func NewBadgerStore(db *badger.DB, ttl time.Duration) *BadgerStore {
	return &BadgerStore{db: db, ttl: ttl}
}

// Get returns the stored metadata for key.
func (s *BadgerStore) Get(key string) (Metadata, bool, error) {
	var md Metadata
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(metadataKeyPrefix + key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &md)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Metadata{}, false, nil
	}
	if err != nil {
		return Metadata{}, false, fmt.Errorf("get metadata: %w", err)
	}
	return md, true, nil
}

// Set stores md under key.
func (s *BadgerStore) Set(key string, md Metadata) error {
	data, err := json.Marshal(md)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(metadataKeyPrefix+key), data)
		if s.ttl > 0 {
			e = e.WithTTL(s.ttl)
		}
		if err := txn.SetEntry(e); err != nil {
			return fmt.Errorf("set metadata: %w", err)
		}
		return nil
	})
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
