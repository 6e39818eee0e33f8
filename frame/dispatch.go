// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package frame defines the contract shared by pallets and the runtime
// composing them.
package frame

import "github.com/0xsoniclabs/pallets/common"

// ErrInvalidCall is returned when dispatching a call that carries no
// variant, e.g. a nil call interface.
const ErrInvalidCall = common.ConstError("invalid call")

// Dispatchable is implemented by every pallet exposing calls and by the
// runtime aggregating them. Dispatch applies the given call on behalf of the
// caller and returns nil on success or the error kind describing why the call
// was rejected. A rejected call must not leave any partial modification
// behind.
type Dispatchable[AccountID any, Call any] interface {
	Dispatch(caller AccountID, call Call) error
}

// DispatchFunc adapts a function to the Dispatchable interface.
type DispatchFunc[AccountID any, Call any] func(caller AccountID, call Call) error

func (f DispatchFunc[AccountID, Call]) Dispatch(caller AccountID, call Call) error {
	return f(caller, call)
}
