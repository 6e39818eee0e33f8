// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package system implements the System pallet: the current block height and
// the per-account transaction counters.
package system

import (
	"github.com/0xsoniclabs/pallets/common/arith"
	"github.com/0xsoniclabs/pallets/storage"
)

const Name = "System"

// Config lists what the System pallet requires from its host runtime.
type Config[AccountID comparable, BlockNumber, Nonce arith.Counter] struct {
	Store    storage.Store
	Accounts storage.Codec[AccountID]
}

// Pallet tracks the block height and the nonce of every account that has
// submitted at least one extrinsic. Both counters wrap around to zero when
// exceeding the maximum of their type, see arith.Counter.
type Pallet[AccountID comparable, BlockNumber, Nonce arith.Counter] struct {
	number *storage.Value[BlockNumber]
	nonces *storage.Map[AccountID, Nonce]
}

// New creates a System pallet keeping its state in the configured store.
func New[AccountID comparable, BlockNumber, Nonce arith.Counter](
	config Config[AccountID, BlockNumber, Nonce],
) *Pallet[AccountID, BlockNumber, Nonce] {
	return &Pallet[AccountID, BlockNumber, Nonce]{
		number: storage.NewValue[BlockNumber](config.Store, Name, "Number", storage.UnsignedCodec[BlockNumber]{}),
		nonces: storage.NewMap[AccountID, Nonce](config.Store, Name, "Account", config.Accounts, storage.UnsignedCodec[Nonce]{}),
	}
}

// BlockNumber returns the current block height, zero before the first block.
func (p *Pallet[AccountID, BlockNumber, Nonce]) BlockNumber() BlockNumber {
	return p.number.Get()
}

func (p *Pallet[AccountID, BlockNumber, Nonce]) IncBlockNumber() {
	p.number.Set(arith.Inc(p.number.Get()))
}

// Nonce returns the number of extrinsics submitted by the given account.
func (p *Pallet[AccountID, BlockNumber, Nonce]) Nonce(who AccountID) Nonce {
	nonce, _ := p.nonces.Get(who)
	return nonce
}

// IncNonce records a new extrinsic of the given account. The first call for
// an account sets its nonce to one.
func (p *Pallet[AccountID, BlockNumber, Nonce]) IncNonce(who AccountID) {
	p.nonces.Set(who, arith.Inc(p.Nonce(who)))
}

// Accounts visits all accounts with a recorded nonce until visit returns
// false.
func (p *Pallet[AccountID, BlockNumber, Nonce]) Accounts(visit func(AccountID, Nonce) bool) {
	p.nonces.Iterate(visit)
}
