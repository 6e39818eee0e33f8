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
	"testing"

	"github.com/0xsoniclabs/pallets/common"
	"github.com/stretchr/testify/require"
)

var _ Store = (*memoryStore)(nil)

func TestMemoryStore_CanSetAndGet(t *testing.T) {
	require := require.New(t)
	store := NewMemoryStore()

	key1 := []byte("key1")
	value1 := []byte("value1")
	key2 := []byte("key2")
	value2 := []byte("value2")

	require.NoError(store.Set(key1, value1))
	require.NoError(store.Set(key2, value2))
	val, err := store.Get(key1)
	require.NoError(err)
	require.Equal(value1, val)

	val, err = store.Get(key2)
	require.NoError(err)
	require.Equal(value2, val)

	require.NoError(store.Set(key1, value2))
	val, err = store.Get(key1)
	require.NoError(err)
	require.Equal(value2, val)
}

func TestMemoryStore_ReturnsNotFoundForMissingKey(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Get([]byte("nonexistent"))
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, store.Close())
}

func TestMemoryStore_DeleteRemovesEntries(t *testing.T) {
	require := require.New(t)
	store := NewMemoryStore()

	key := []byte("key")
	require.NoError(store.Set(key, []byte("value")))
	require.NoError(store.Delete(key))
	_, err := store.Get(key)
	require.ErrorIs(err, ErrNotFound)

	// deleting a missing key is fine
	require.NoError(store.Delete(key))
}

func TestMemoryStore_ReturnedValuesAreCopies(t *testing.T) {
	require := require.New(t)
	store := NewMemoryStore()

	key := []byte("key")
	require.NoError(store.Set(key, []byte{1, 2, 3}))
	val, err := store.Get(key)
	require.NoError(err)
	val[0] = 9

	val, err = store.Get(key)
	require.NoError(err)
	require.Equal([]byte{1, 2, 3}, val)
}

func TestMemoryStore_IteratesPrefixInKeyOrder(t *testing.T) {
	require := require.New(t)
	store := NewMemoryStore()

	require.NoError(store.Set([]byte("b2"), []byte{2}))
	require.NoError(store.Set([]byte("a1"), []byte{0}))
	require.NoError(store.Set([]byte("b1"), []byte{1}))
	require.NoError(store.Set([]byte("c1"), []byte{3}))

	var keys []string
	require.NoError(store.Iterate([]byte("b"), func(key, value []byte) error {
		keys = append(keys, string(key))
		return nil
	}))
	require.Equal([]string{"b1", "b2"}, keys)

	keys = keys[:0]
	require.NoError(store.Iterate(nil, func(key, value []byte) error {
		keys = append(keys, string(key))
		return nil
	}))
	require.Equal([]string{"a1", "b1", "b2", "c1"}, keys)
}

func TestMemoryStore_IterationStopsAtFirstError(t *testing.T) {
	require := require.New(t)
	store := NewMemoryStore()
	require.NoError(store.Set([]byte("a"), nil))
	require.NoError(store.Set([]byte("b"), nil))

	const stop = common.ConstError("stop")
	visited := 0
	err := store.Iterate(nil, func(key, value []byte) error {
		visited++
		return stop
	})
	require.ErrorIs(err, stop)
	require.Equal(1, visited)
}
