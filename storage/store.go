// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package storage provides the key/value state backing all pallets. Pallets
// never touch raw keys; they use typed Map and Value items whose key spaces
// are derived from the pallet and item names.
package storage

import (
	"bytes"

	"github.com/0xsoniclabs/pallets/common"
	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/memdb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

const (
	ErrNotFound = common.ConstError("not found")
)

// Store is an ordered key/value store holding runtime state.
type Store interface {
	// Get returns a copy of the value stored for the given key or ErrNotFound.
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
	// Delete removes the given key. Deleting a missing key is not an error.
	Delete(key []byte) error
	// Iterate visits all entries whose key starts with the given prefix in
	// ascending key order. Iteration stops at the first error returned by
	// visit, which is then returned. The store must not be modified during
	// the iteration.
	Iterate(prefix []byte, visit func(key, value []byte) error) error
	Close() error
}

// memoryStore is an in-memory Store based on LevelDB's skip-list memtable.
// All operations are O(log n) and iteration is ordered by key.
type memoryStore struct {
	db *memdb.DB
}

// NewMemoryStore creates a new, empty in-memory store.
func NewMemoryStore() Store {
	return &memoryStore{db: memdb.New(comparer.DefaultComparer, 0)}
}

func (s *memoryStore) Get(key []byte) ([]byte, error) {
	data, err := s.db.Get(key)
	if err == memdb.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return bytes.Clone(data), nil
}

func (s *memoryStore) Set(key []byte, value []byte) error {
	return s.db.Put(key, value)
}

func (s *memoryStore) Delete(key []byte) error {
	err := s.db.Delete(key)
	if err == memdb.ErrNotFound {
		return nil
	}
	return err
}

func (s *memoryStore) Iterate(prefix []byte, visit func(key, value []byte) error) error {
	iter := s.db.NewIterator(util.BytesPrefix(prefix))
	defer iter.Release()
	for iter.Next() {
		if err := visit(bytes.Clone(iter.Key()), bytes.Clone(iter.Value())); err != nil {
			return err
		}
	}
	return iter.Error()
}

func (s *memoryStore) Close() error {
	s.db.Reset()
	return nil
}
