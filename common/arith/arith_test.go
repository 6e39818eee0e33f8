// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package arith

import (
	"math"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

var _ Arithmetic[uint64] = Unsigned[uint64]{}
var _ Arithmetic[uint256.Int] = U256{}

func TestInc_WrapsAroundAtMaximum(t *testing.T) {
	require := require.New(t)
	require.Equal(uint8(1), Inc(uint8(0)))
	require.Equal(uint8(0), Inc(uint8(math.MaxUint8)))
	require.Equal(uint32(0), Inc(uint32(math.MaxUint32)))
}

func TestUnsigned_CheckedAdd(t *testing.T) {
	require := require.New(t)
	a := Unsigned[uint8]{}

	sum, ok := a.CheckedAdd(200, 55)
	require.True(ok)
	require.Equal(uint8(255), sum)

	_, ok = a.CheckedAdd(200, 56)
	require.False(ok)

	_, ok = a.CheckedAdd(math.MaxUint8, math.MaxUint8)
	require.False(ok)
}

func TestUnsigned_CheckedSub(t *testing.T) {
	require := require.New(t)
	a := Unsigned[uint64]{}

	diff, ok := a.CheckedSub(10, 10)
	require.True(ok)
	require.True(a.IsZero(diff))

	diff, ok = a.CheckedSub(10, 3)
	require.True(ok)
	require.Equal(uint64(7), diff)

	_, ok = a.CheckedSub(3, 10)
	require.False(ok)
}

func TestU256_CheckedAdd(t *testing.T) {
	require := require.New(t)
	a := U256{}

	sum, ok := a.CheckedAdd(*uint256.NewInt(40), *uint256.NewInt(2))
	require.True(ok)
	require.Equal(*uint256.NewInt(42), sum)

	var max uint256.Int
	max.SetAllOne()
	_, ok = a.CheckedAdd(max, *uint256.NewInt(1))
	require.False(ok)

	sum, ok = a.CheckedAdd(max, a.Zero())
	require.True(ok)
	require.Equal(max, sum)
}

func TestU256_CheckedSub(t *testing.T) {
	require := require.New(t)
	a := U256{}

	diff, ok := a.CheckedSub(*uint256.NewInt(100), *uint256.NewInt(30))
	require.True(ok)
	require.Equal(*uint256.NewInt(70), diff)

	diff, ok = a.CheckedSub(*uint256.NewInt(5), *uint256.NewInt(5))
	require.True(ok)
	require.True(a.IsZero(diff))

	_, ok = a.CheckedSub(*uint256.NewInt(5), *uint256.NewInt(6))
	require.False(ok)
}
