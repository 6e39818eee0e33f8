// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

// ConstError is an error type that can be used to define immutable error
// constants. Two ConstErrors with the same message are considered equal,
// so they can be compared using errors.Is.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}
