// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package runtime composes the System, Balances and Claims pallets into a
// single state machine with fixed concrete types.
package runtime

import (
	"github.com/0xsoniclabs/pallets/common"
	"github.com/0xsoniclabs/pallets/common/arith"
	"github.com/0xsoniclabs/pallets/executive"
	"github.com/0xsoniclabs/pallets/pallets/balances"
	"github.com/0xsoniclabs/pallets/pallets/claims"
	"github.com/0xsoniclabs/pallets/pallets/system"
	"github.com/0xsoniclabs/pallets/storage"
	"github.com/holiman/uint256"
)

type (
	AccountID   = string
	Balance     = uint256.Int
	BlockNumber = uint32
	Nonce       = uint32
	Content     = string
)

type (
	Block     = executive.Block[AccountID, BlockNumber, Call]
	Header    = executive.Header[BlockNumber]
	Extrinsic = executive.Extrinsic[AccountID, Call]
	Report    = executive.Report[BlockNumber]
	Failure   = executive.Failure[AccountID, BlockNumber]
	Executive = executive.Executive[AccountID, BlockNumber, Call]
)

// Runtime holds one instance of every pallet, all sharing the same
// transactional store.
type Runtime struct {
	store    *storage.Layered
	system   *system.Pallet[AccountID, BlockNumber, Nonce]
	balances *balances.Pallet[AccountID, Balance]
	claims   *claims.Pallet[AccountID, Content]
}

// New creates a runtime with empty in-memory state.
func New() *Runtime {
	return NewWithStore(storage.NewMemoryStore())
}

// NewWithStore creates a runtime on top of the given store.
func NewWithStore(store storage.Store) *Runtime {
	layered := storage.NewLayered(store)
	return &Runtime{
		store: layered,
		system: system.New(system.Config[AccountID, BlockNumber, Nonce]{
			Store:    layered,
			Accounts: storage.StringCodec{},
		}),
		balances: balances.New(balances.Config[AccountID, Balance]{
			Store:      layered,
			Accounts:   storage.StringCodec{},
			Balances:   storage.U256Codec{},
			Arithmetic: arith.U256{},
		}),
		claims: claims.New(claims.Config[AccountID, Content]{
			Store:    layered,
			Accounts: storage.StringCodec{},
			Contents: storage.StringCodec{},
		}),
	}
}

func (r *Runtime) System() *system.Pallet[AccountID, BlockNumber, Nonce] {
	return r.system
}

func (r *Runtime) Balances() *balances.Pallet[AccountID, Balance] {
	return r.balances
}

func (r *Runtime) Claims() *claims.Pallet[AccountID, Content] {
	return r.claims
}

func (r *Runtime) BlockNumber() BlockNumber {
	return r.system.BlockNumber()
}

func (r *Runtime) IncBlockNumber() {
	r.system.IncBlockNumber()
}

func (r *Runtime) IncNonce(who AccountID) {
	r.system.IncNonce(who)
}

// Transaction runs the given function in a new storage layer which is
// committed if run succeeds and discarded otherwise.
func (r *Runtime) Transaction(run func() error) error {
	return r.store.Transaction(run)
}

// StateRoot returns a commitment to the complete state of all pallets. It
// must not be called from within a transaction.
func (r *Runtime) StateRoot() (common.Hash, error) {
	return storage.Commitment(r.store)
}

// Close releases the underlying store.
func (r *Runtime) Close() error {
	return r.store.Close()
}

// NewExecutive creates a block executor driving this runtime.
func (r *Runtime) NewExecutive(config executive.Config[AccountID, BlockNumber]) *Executive {
	return executive.New[AccountID, BlockNumber, Call](r, config)
}
