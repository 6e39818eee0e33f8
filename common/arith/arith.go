// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package arith defines the numeric contracts pallets require from the types
// a runtime plugs into them.
package arith

import (
	"github.com/holiman/uint256"
	"golang.org/x/exp/constraints"
)

// Counter is the contract of block numbers and nonces: a numeric type with a
// zero value that can be incremented by one. Increments follow Go's unsigned
// integer semantics and wrap around to zero after the maximum value of the
// chosen bit width. Counters are not expected to get anywhere near that bound.
type Counter interface {
	constraints.Unsigned
}

// Inc returns c+1, wrapping around to zero on overflow.
func Inc[T Counter](c T) T {
	return c + 1
}

// Arithmetic is the contract of balance types. Addition and subtraction
// report overflow and underflow instead of wrapping; on failure the returned
// value must be ignored.
type Arithmetic[T any] interface {
	Zero() T
	IsZero(T) bool
	CheckedAdd(a, b T) (T, bool)
	CheckedSub(a, b T) (T, bool)
}

// Unsigned implements Arithmetic for Go's unsigned integer types.
type Unsigned[T constraints.Unsigned] struct{}

func (Unsigned[T]) Zero() T {
	return 0
}

func (Unsigned[T]) IsZero(v T) bool {
	return v == 0
}

func (Unsigned[T]) CheckedAdd(a, b T) (T, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

func (Unsigned[T]) CheckedSub(a, b T) (T, bool) {
	if b > a {
		return 0, false
	}
	return a - b, true
}

// U256 implements Arithmetic for 256-bit unsigned integers.
type U256 struct{}

func (U256) Zero() uint256.Int {
	return uint256.Int{}
}

func (U256) IsZero(v uint256.Int) bool {
	return v.IsZero()
}

func (U256) CheckedAdd(a, b uint256.Int) (uint256.Int, bool) {
	var res uint256.Int
	if _, overflow := res.AddOverflow(&a, &b); overflow {
		return uint256.Int{}, false
	}
	return res, true
}

func (U256) CheckedSub(a, b uint256.Int) (uint256.Int, bool) {
	var res uint256.Int
	if _, underflow := res.SubOverflow(&a, &b); underflow {
		return uint256.Int{}, false
	}
	return res, true
}
