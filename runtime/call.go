// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package runtime

import (
	"github.com/0xsoniclabs/pallets/frame"
	"github.com/0xsoniclabs/pallets/pallets/balances"
	"github.com/0xsoniclabs/pallets/pallets/claims"
)

// Call is any call understood by the runtime. Its variants wrap the calls of
// the individual pallets.
type Call interface {
	dispatch(r *Runtime, caller AccountID) error
}

type BalancesCall struct {
	Call balances.Call[AccountID, Balance]
}

func (c BalancesCall) dispatch(r *Runtime, caller AccountID) error {
	return r.balances.Dispatch(caller, c.Call)
}

type ClaimsCall struct {
	Call claims.Call[AccountID, Content]
}

func (c ClaimsCall) dispatch(r *Runtime, caller AccountID) error {
	return r.claims.Dispatch(caller, c.Call)
}

// Dispatch routes the call to the pallet owning it. Errors of the pallet are
// returned unchanged. Calls without a variant, including wrappers holding no
// pallet call, fail with frame.ErrInvalidCall.
func (r *Runtime) Dispatch(caller AccountID, call Call) error {
	if call == nil {
		return frame.ErrInvalidCall
	}
	return call.dispatch(r, caller)
}

func Transfer(to AccountID, amount Balance) Call {
	return BalancesCall{Call: balances.Transfer[AccountID, Balance]{To: to, Amount: amount}}
}

func CreateClaim(content Content) Call {
	return ClaimsCall{Call: claims.CreateClaim[AccountID, Content]{Content: content}}
}

func RevokeClaim(content Content) Call {
	return ClaimsCall{Call: claims.RevokeClaim[AccountID, Content]{Content: content}}
}
