// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package executive

import "github.com/0xsoniclabs/pallets/common/arith"

// Header carries the metadata of a block.
type Header[BlockNumber arith.Counter] struct {
	Number BlockNumber
}

// Extrinsic is a single call submitted by Caller.
type Extrinsic[AccountID any, Call any] struct {
	Caller AccountID
	Call   Call
}

// Block is an ordered list of extrinsics to be applied on top of the
// runtime's current state.
type Block[AccountID any, BlockNumber arith.Counter, Call any] struct {
	Header     Header[BlockNumber]
	Extrinsics []Extrinsic[AccountID, Call]
}

// Report summarizes the outcome of applying a block.
type Report[BlockNumber arith.Counter] struct {
	Number  BlockNumber // < the height of the block
	Applied int         // < number of successfully dispatched extrinsics
	Failed  int         // < number of rejected extrinsics
}

// Failure describes an extrinsic rejected by the runtime.
type Failure[AccountID any, BlockNumber arith.Counter] struct {
	Block  BlockNumber
	Index  int // < position of the extrinsic in its block
	Caller AccountID
	Err    error
}
