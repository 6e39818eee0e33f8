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
	"encoding/binary"

	"github.com/0xsoniclabs/pallets/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Commitment computes a Keccak-256 digest over all entries of the given
// store in key order. Each entry contributes its length-prefixed key followed
// by its length-prefixed value, so distinct contents produce distinct inputs.
// An empty store yields the hash of the empty input.
func Commitment(store Store) (common.Hash, error) {
	hasher := crypto.NewKeccakState()
	var scratch []byte
	err := store.Iterate(nil, func(key, value []byte) error {
		scratch = scratch[:0]
		scratch = binary.BigEndian.AppendUint32(scratch, uint32(len(key)))
		scratch = append(scratch, key...)
		scratch = binary.BigEndian.AppendUint32(scratch, uint32(len(value)))
		scratch = append(scratch, value...)
		_, err := hasher.Write(scratch)
		return err
	})
	if err != nil {
		return common.Hash{}, err
	}
	return common.Hash(hasher.Sum(nil)), nil
}
