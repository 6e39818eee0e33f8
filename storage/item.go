// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package storage

import (
	"fmt"

	"github.com/0xsoniclabs/pallets/common"
	"golang.org/x/crypto/blake2b"
)

// Storage items are laid out as follows:
//
//	value item: blake2b-128(pallet) || blake2b-128(item)
//	map entry:  blake2b-128(pallet) || blake2b-128(item) || blake2b-128(key) || key
//
// where key is the encoded map key. Hashing the key spreads entries evenly
// while appending it in plain keeps entries enumerable.

const (
	hashLength = 16

	errStopIteration = common.ConstError("stop iteration")
)

// Prefix returns the key prefix shared by all entries of the given item.
func Prefix(pallet, item string) []byte {
	res := make([]byte, 0, 2*hashLength)
	res = append(res, hash128([]byte(pallet))...)
	return append(res, hash128([]byte(item))...)
}

func hash128(data []byte) []byte {
	hasher, err := blake2b.New(hashLength, nil)
	if err != nil {
		panic(fmt.Sprintf("failed to create blake2b hasher: %v", err))
	}
	hasher.Write(data)
	return hasher.Sum(nil)
}

// Value is a single typed value kept in a store. Its zero value is the zero
// value of T. Failures of the underlying store are considered fatal and cause
// a panic; the stores used by runtimes are in-memory and never fail, and all
// stored data is produced by the item's own codec.
type Value[T any] struct {
	store Store
	key   []byte
	codec Codec[T]
}

// NewValue creates a value item of the given pallet.
func NewValue[T any](store Store, pallet, item string, codec Codec[T]) *Value[T] {
	return &Value[T]{
		store: store,
		key:   Prefix(pallet, item),
		codec: codec,
	}
}

// Get returns the stored value or the zero value if none is stored.
func (v *Value[T]) Get() T {
	var res T
	data, err := v.store.Get(v.key)
	if err == ErrNotFound {
		return res
	}
	if err != nil {
		panic(fmt.Errorf("failed to read storage value: %w", err))
	}
	res, err = v.codec.Decode(data)
	if err != nil {
		panic(fmt.Errorf("failed to decode storage value: %w", err))
	}
	return res
}

func (v *Value[T]) Set(value T) {
	if err := v.store.Set(v.key, v.codec.Encode(value)); err != nil {
		panic(fmt.Errorf("failed to write storage value: %w", err))
	}
}

// Map is a typed mapping kept in a store. Absent keys map to the zero value
// of V. Like Value, it treats store failures as fatal.
type Map[K, V any] struct {
	store  Store
	prefix []byte
	keys   Codec[K]
	values Codec[V]
}

// NewMap creates a map item of the given pallet.
func NewMap[K, V any](store Store, pallet, item string, keys Codec[K], values Codec[V]) *Map[K, V] {
	return &Map[K, V]{
		store:  store,
		prefix: Prefix(pallet, item),
		keys:   keys,
		values: values,
	}
}

func (m *Map[K, V]) key(k K) []byte {
	encoded := m.keys.Encode(k)
	res := make([]byte, 0, len(m.prefix)+hashLength+len(encoded))
	res = append(res, m.prefix...)
	res = append(res, hash128(encoded)...)
	return append(res, encoded...)
}

// Get returns the value stored for the given key and whether it was present.
func (m *Map[K, V]) Get(k K) (V, bool) {
	var res V
	data, err := m.store.Get(m.key(k))
	if err == ErrNotFound {
		return res, false
	}
	if err != nil {
		panic(fmt.Errorf("failed to read storage map: %w", err))
	}
	res, err = m.values.Decode(data)
	if err != nil {
		panic(fmt.Errorf("failed to decode storage map entry: %w", err))
	}
	return res, true
}

func (m *Map[K, V]) Contains(k K) bool {
	_, found := m.Get(k)
	return found
}

func (m *Map[K, V]) Set(k K, v V) {
	if err := m.store.Set(m.key(k), m.values.Encode(v)); err != nil {
		panic(fmt.Errorf("failed to write storage map: %w", err))
	}
}

func (m *Map[K, V]) Delete(k K) {
	if err := m.store.Delete(m.key(k)); err != nil {
		panic(fmt.Errorf("failed to delete from storage map: %w", err))
	}
}

// Iterate visits all entries of the map in storage order, which is
// deterministic but unrelated to any order of K. Iteration stops early when
// visit returns false.
func (m *Map[K, V]) Iterate(visit func(K, V) bool) {
	offset := len(m.prefix) + hashLength
	err := m.store.Iterate(m.prefix, func(key, value []byte) error {
		if len(key) < offset {
			return fmt.Errorf("%w: map key too short", ErrInvalidEncoding)
		}
		k, err := m.keys.Decode(key[offset:])
		if err != nil {
			return err
		}
		v, err := m.values.Decode(value)
		if err != nil {
			return err
		}
		if !visit(k, v) {
			return errStopIteration
		}
		return nil
	})
	if err != nil && err != errStopIteration {
		panic(fmt.Errorf("failed to iterate storage map: %w", err))
	}
}
