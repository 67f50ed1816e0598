// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package favorites

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// Store persists the favorite set across restarts.
type Store interface {
	Load(ctx context.Context) ([]string, error)
	Put(ctx context.Context, id string, favorited bool) error
	Replace(ctx context.Context, ids []string) error
	Close() error
}

var _ Store = (*BadgerStore)(nil)

// Key prefix for BadgerDB storage
const favoriteKeyPrefix = "favorite:"

type favoriteRecord struct {
	ID      string    `json:"id"`
	AddedAt time.Time `json:"added_at"`
}

// BadgerStore implements Store on top of BadgerDB.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadgerStore opens (or creates) a store in dir. An empty dir opens an
// in-memory database, which is useful for tests.
func OpenBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open favorites store: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// NewBadgerStore wraps an already open database.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// Load returns all persisted favorite ids in sorted order.
func (s *BadgerStore) Load(ctx context.Context) ([]string, error) {
	var ids []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(favoriteKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			key := it.Item().Key()
			ids = append(ids, string(key[len(favoriteKeyPrefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

// Put adds or removes a single favorite.
func (s *BadgerStore) Put(ctx context.Context, id string, favorited bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := []byte(favoriteKeyPrefix + id)
	if !favorited {
		return s.db.Update(func(txn *badger.Txn) error {
			return txn.Delete(key)
		})
	}

	data, err := json.Marshal(favoriteRecord{ID: id, AddedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("marshal favorite: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, data); err != nil {
			return fmt.Errorf("set favorite: %w", err)
		}
		return nil
	})
}

// Replace overwrites the persisted set with ids in a single transaction.
func (s *BadgerStore) Replace(ctx context.Context, ids []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := time.Now().UTC()
	return s.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(favoriteKeyPrefix)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		var stale [][]byte
		for it.Rewind(); it.Valid(); it.Next() {
			stale = append(stale, it.Item().KeyCopy(nil))
		}
		it.Close()

		for _, k := range stale {
			if err := txn.Delete(k); err != nil {
				return fmt.Errorf("delete favorite: %w", err)
			}
		}
		for _, id := range ids {
			if id == "" {
				continue
			}
			data, err := json.Marshal(favoriteRecord{ID: id, AddedAt: now})
			if err != nil {
				return fmt.Errorf("marshal favorite: %w", err)
			}
			if err := txn.Set([]byte(favoriteKeyPrefix+id), data); err != nil {
				return fmt.Errorf("set favorite: %w", err)
			}
		}
		return nil
	})
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
