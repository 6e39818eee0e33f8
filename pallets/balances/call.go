// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package balances

import "github.com/0xsoniclabs/pallets/frame"

// Call is the closed set of calls exposed by the Balances pallet. Every
// variant implements the unexported dispatch method, so the set can only be
// extended within this package and Dispatch covers all variants by
// construction.
type Call[AccountID comparable, Balance any] interface {
	dispatch(p *Pallet[AccountID, Balance], caller AccountID) error
}

// Transfer moves Amount from the caller to To.
type Transfer[AccountID comparable, Balance any] struct {
	To     AccountID
	Amount Balance
}

func (c Transfer[AccountID, Balance]) dispatch(p *Pallet[AccountID, Balance], caller AccountID) error {
	return p.Transfer(caller, c.To, c.Amount)
}

// Dispatch applies the given call on behalf of caller.
func (p *Pallet[AccountID, Balance]) Dispatch(caller AccountID, call Call[AccountID, Balance]) error {
	if call == nil {
		return frame.ErrInvalidCall
	}
	return call.dispatch(p, caller)
}
