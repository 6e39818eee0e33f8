// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package claims implements a proof-of-existence registry: a piece of
// content can be claimed by exactly one account, which is the only one
// allowed to revoke the claim again.
package claims

import (
	"github.com/0xsoniclabs/pallets/common"
	"github.com/0xsoniclabs/pallets/storage"
)

const Name = "Claims"

const (
	ErrAlreadyClaimed = common.ConstError("already claimed")
	ErrClaimNotFound  = common.ConstError("claim not found")
	ErrNotClaimOwner  = common.ConstError("not claim owner")
)

// Config lists what the Claims pallet requires from its host runtime.
type Config[AccountID comparable, Content any] struct {
	Store    storage.Store
	Accounts storage.Codec[AccountID]
	Contents storage.Codec[Content]
}

// Pallet maps claimed content to its owner.
type Pallet[AccountID comparable, Content any] struct {
	claims *storage.Map[Content, AccountID]
}

// New creates a Claims pallet keeping its state in the configured store.
func New[AccountID comparable, Content any](
	config Config[AccountID, Content],
) *Pallet[AccountID, Content] {
	return &Pallet[AccountID, Content]{
		claims: storage.NewMap[Content, AccountID](config.Store, Name, "Claims", config.Contents, config.Accounts),
	}
}

// GetClaim returns the owner of the given content, if it is claimed.
func (p *Pallet[AccountID, Content]) GetClaim(content Content) (AccountID, bool) {
	return p.claims.Get(content)
}

// CreateClaim registers caller as the owner of content.
func (p *Pallet[AccountID, Content]) CreateClaim(caller AccountID, content Content) error {
	if p.claims.Contains(content) {
		return ErrAlreadyClaimed
	}
	p.claims.Set(content, caller)
	return nil
}

// RevokeClaim removes the claim on content. Only the owner may do so.
func (p *Pallet[AccountID, Content]) RevokeClaim(caller AccountID, content Content) error {
	owner, found := p.claims.Get(content)
	if !found {
		return ErrClaimNotFound
	}
	if owner != caller {
		return ErrNotClaimOwner
	}
	p.claims.Delete(content)
	return nil
}

// Claims visits all claims until visit returns false.
func (p *Pallet[AccountID, Content]) Claims(visit func(Content, AccountID) bool) {
	p.claims.Iterate(visit)
}
