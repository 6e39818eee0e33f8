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

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestPrefix_DiffersBetweenPalletsAndItems(t *testing.T) {
	require := require.New(t)
	require.Len(Prefix("System", "Number"), 32)
	require.NotEqual(Prefix("System", "Number"), Prefix("System", "Nonce"))
	require.NotEqual(Prefix("System", "Account"), Prefix("Balances", "Account"))
	require.Equal(Prefix("System", "Number"), Prefix("System", "Number"))
}

func TestValue_DefaultsToZero(t *testing.T) {
	require := require.New(t)
	value := NewValue[uint32](NewMemoryStore(), "System", "Number", UnsignedCodec[uint32]{})

	require.Equal(uint32(0), value.Get())
	value.Set(12)
	require.Equal(uint32(12), value.Get())
}

func TestMap_GetSetDelete(t *testing.T) {
	require := require.New(t)
	m := NewMap[string, uint256.Int](NewMemoryStore(), "Balances", "Account", StringCodec{}, U256Codec{})

	balance, found := m.Get("alice")
	require.False(found)
	require.True(balance.IsZero())

	m.Set("alice", *uint256.NewInt(100))
	balance, found = m.Get("alice")
	require.True(found)
	require.Equal(*uint256.NewInt(100), balance)
	require.True(m.Contains("alice"))
	require.False(m.Contains("bob"))

	m.Delete("alice")
	require.False(m.Contains("alice"))
}

func TestMap_ItemsOfDifferentPalletsDoNotInterfere(t *testing.T) {
	require := require.New(t)
	store := NewMemoryStore()
	a := NewMap[string, uint64](store, "A", "Item", StringCodec{}, UnsignedCodec[uint64]{})
	b := NewMap[string, uint64](store, "B", "Item", StringCodec{}, UnsignedCodec[uint64]{})

	a.Set("key", 1)
	b.Set("key", 2)

	got, _ := a.Get("key")
	require.Equal(uint64(1), got)
	got, _ = b.Get("key")
	require.Equal(uint64(2), got)
}

func TestMap_IterateVisitsAllEntries(t *testing.T) {
	require := require.New(t)
	store := NewMemoryStore()
	m := NewMap[string, uint32](store, "System", "Account", StringCodec{}, UnsignedCodec[uint32]{})
	other := NewValue[uint32](store, "System", "Number", UnsignedCodec[uint32]{})
	other.Set(5)

	want := map[string]uint32{"alice": 1, "bob": 2, "charlie": 3}
	for k, v := range want {
		m.Set(k, v)
	}

	got := map[string]uint32{}
	m.Iterate(func(k string, v uint32) bool {
		got[k] = v
		return true
	})
	require.Equal(want, got)

	visited := 0
	m.Iterate(func(string, uint32) bool {
		visited++
		return false
	})
	require.Equal(1, visited)
}

func TestMap_CorruptedEntriesCausePanic(t *testing.T) {
	store := NewMemoryStore()
	m := NewMap[string, uint32](store, "System", "Account", StringCodec{}, UnsignedCodec[uint32]{})
	m.Set("alice", 1)

	// overwrite the entry with data the codec cannot decode
	require.NoError(t, store.Set(m.key("alice"), []byte{1, 2}))
	require.Panics(t, func() { m.Get("alice") })
}

func TestCommitment_DependsOnContent(t *testing.T) {
	require := require.New(t)
	store := NewMemoryStore()

	empty, err := Commitment(store)
	require.NoError(err)
	require.Equal("0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", empty.String())

	require.NoError(store.Set([]byte("a"), []byte{1}))
	one, err := Commitment(store)
	require.NoError(err)
	require.NotEqual(empty, one)

	require.NoError(store.Set([]byte("a"), []byte{2}))
	two, err := Commitment(store)
	require.NoError(err)
	require.NotEqual(one, two)

	require.NoError(store.Set([]byte("a"), []byte{1}))
	again, err := Commitment(store)
	require.NoError(err)
	require.Equal(one, again)
}

func TestCommitment_IsIndependentOfInsertionOrder(t *testing.T) {
	require := require.New(t)
	s1 := NewMemoryStore()
	s2 := NewMemoryStore()

	require.NoError(s1.Set([]byte("a"), []byte{1}))
	require.NoError(s1.Set([]byte("b"), []byte{2}))
	require.NoError(s2.Set([]byte("b"), []byte{2}))
	require.NoError(s2.Set([]byte("a"), []byte{1}))

	h1, err := Commitment(s1)
	require.NoError(err)
	h2, err := Commitment(s2)
	require.NoError(err)
	require.Equal(h1, h2)
}
