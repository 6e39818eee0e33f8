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
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/0xsoniclabs/pallets/common"
	geth "github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"golang.org/x/exp/constraints"
)

const ErrInvalidEncoding = common.ConstError("invalid encoding")

// Codec converts values of type T to and from their storage representation.
// Encodings must be deterministic since they end up in storage keys and in
// the state commitment.
type Codec[T any] interface {
	Encode(T) []byte
	Decode([]byte) (T, error)
}

// StringCodec stores strings as their raw bytes.
type StringCodec struct{}

func (StringCodec) Encode(s string) []byte {
	return []byte(s)
}

func (StringCodec) Decode(data []byte) (string, error) {
	return string(data), nil
}

// BytesCodec stores byte slices as they are.
type BytesCodec struct{}

func (BytesCodec) Encode(b []byte) []byte {
	return bytes.Clone(b)
}

func (BytesCodec) Decode(data []byte) ([]byte, error) {
	return bytes.Clone(data), nil
}

// UnsignedCodec stores unsigned integers as 8-byte big-endian values,
// independent of the width of T.
type UnsignedCodec[T constraints.Unsigned] struct{}

func (UnsignedCodec[T]) Encode(v T) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(v))
}

func (UnsignedCodec[T]) Decode(data []byte) (T, error) {
	if len(data) != 8 {
		return 0, fmt.Errorf("%w: expected 8 bytes, got %d", ErrInvalidEncoding, len(data))
	}
	raw := binary.BigEndian.Uint64(data)
	res := T(raw)
	if uint64(res) != raw {
		return 0, fmt.Errorf("%w: value %d out of range", ErrInvalidEncoding, raw)
	}
	return res, nil
}

// U256Codec stores 256-bit integers as 32-byte big-endian values.
type U256Codec struct{}

func (U256Codec) Encode(v uint256.Int) []byte {
	data := v.Bytes32()
	return data[:]
}

func (U256Codec) Decode(data []byte) (uint256.Int, error) {
	if len(data) != 32 {
		return uint256.Int{}, fmt.Errorf("%w: expected 32 bytes, got %d", ErrInvalidEncoding, len(data))
	}
	var res uint256.Int
	res.SetBytes32(data)
	return res, nil
}

// AddressCodec stores 20-byte Ethereum style addresses.
type AddressCodec struct{}

func (AddressCodec) Encode(a geth.Address) []byte {
	return bytes.Clone(a[:])
}

func (AddressCodec) Decode(data []byte) (geth.Address, error) {
	if len(data) != geth.AddressLength {
		return geth.Address{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidEncoding, geth.AddressLength, len(data))
	}
	return geth.BytesToAddress(data), nil
}
