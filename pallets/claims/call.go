// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package claims

import "github.com/0xsoniclabs/pallets/frame"

// Call is the closed set of calls exposed by the Claims pallet.
type Call[AccountID comparable, Content any] interface {
	dispatch(p *Pallet[AccountID, Content], caller AccountID) error
}

type CreateClaim[AccountID comparable, Content any] struct {
	Content Content
}

func (c CreateClaim[AccountID, Content]) dispatch(p *Pallet[AccountID, Content], caller AccountID) error {
	return p.CreateClaim(caller, c.Content)
}

type RevokeClaim[AccountID comparable, Content any] struct {
	Content Content
}

func (c RevokeClaim[AccountID, Content]) dispatch(p *Pallet[AccountID, Content], caller AccountID) error {
	return p.RevokeClaim(caller, c.Content)
}

// Dispatch applies the given call on behalf of caller.
func (p *Pallet[AccountID, Content]) Dispatch(caller AccountID, call Call[AccountID, Content]) error {
	if call == nil {
		return frame.ErrInvalidCall
	}
	return call.dispatch(p, caller)
}
