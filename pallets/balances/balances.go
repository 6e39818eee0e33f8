// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package balances implements the Balances pallet tracking the free balance
// of every account.
package balances

import (
	"github.com/0xsoniclabs/pallets/common"
	"github.com/0xsoniclabs/pallets/common/arith"
	"github.com/0xsoniclabs/pallets/storage"
)

const Name = "Balances"

const (
	ErrInsufficientFunds = common.ConstError("insufficient funds")
	ErrOverflow          = common.ConstError("overflow")
)

// Config lists what the Balances pallet requires from its host runtime.
type Config[AccountID comparable, Balance any] struct {
	Store      storage.Store
	Accounts   storage.Codec[AccountID]
	Balances   storage.Codec[Balance]
	Arithmetic arith.Arithmetic[Balance]
}

// Pallet keeps one balance per account. Accounts without an entry have a
// zero balance; zero balances are never stored.
type Pallet[AccountID comparable, Balance any] struct {
	arith    arith.Arithmetic[Balance]
	balances *storage.Map[AccountID, Balance]
}

// New creates a Balances pallet keeping its state in the configured store.
func New[AccountID comparable, Balance any](
	config Config[AccountID, Balance],
) *Pallet[AccountID, Balance] {
	return &Pallet[AccountID, Balance]{
		arith:    config.Arithmetic,
		balances: storage.NewMap[AccountID, Balance](config.Store, Name, "Account", config.Accounts, config.Balances),
	}
}

// SetBalance overwrites the balance of the given account. It is intended for
// bootstrapping state only and bypasses all checks.
func (p *Pallet[AccountID, Balance]) SetBalance(who AccountID, amount Balance) {
	if p.arith.IsZero(amount) {
		p.balances.Delete(who)
		return
	}
	p.balances.Set(who, amount)
}

// Balance returns the balance of the given account, zero if unknown.
func (p *Pallet[AccountID, Balance]) Balance(who AccountID) Balance {
	balance, found := p.balances.Get(who)
	if !found {
		return p.arith.Zero()
	}
	return balance
}

// Transfer moves amount from one account to another. It fails with
// ErrInsufficientFunds if the sender cannot cover the amount and with
// ErrOverflow if the recipient's balance would exceed the range of Balance,
// checked in this order. On failure no balance is modified.
func (p *Pallet[AccountID, Balance]) Transfer(from, to AccountID, amount Balance) error {
	newFromBalance, ok := p.arith.CheckedSub(p.Balance(from), amount)
	if !ok {
		return ErrInsufficientFunds
	}

	// Debit and credit of a self-transfer cancel out.
	if from == to {
		return nil
	}

	newToBalance, ok := p.arith.CheckedAdd(p.Balance(to), amount)
	if !ok {
		return ErrOverflow
	}

	p.SetBalance(from, newFromBalance)
	p.SetBalance(to, newToBalance)
	return nil
}

// Accounts visits all accounts with a non-zero balance until visit returns
// false.
func (p *Pallet[AccountID, Balance]) Accounts(visit func(AccountID, Balance) bool) {
	p.balances.Iterate(visit)
}
