// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package result

import "errors"

// Result pairs the outcome of an operation with the error that may have
// prevented it. It is used where a sequence of independent operations is
// processed and each outcome has to be kept, e.g. when executing a batch of
// blocks where a rejected block must not hide the outcomes of its successors.
type Result[T any] struct {
	Value T
	Error error
}

func Ok[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

func Err[T any](err error) Result[T] {
	return Result[T]{Error: err}
}

// Get returns the value and error contained in the Result.
func (r Result[T]) Get() (T, error) {
	return r.Value, r.Error
}

// IsOk reports whether the result carries no error.
func (r Result[T]) IsOk() bool {
	return r.Error == nil
}

// Join combines the errors of all given results. It returns nil if every
// result is ok.
func Join[T any](results []Result[T]) error {
	var errs []error
	for _, r := range results {
		if r.Error != nil {
			errs = append(errs, r.Error)
		}
	}
	return errors.Join(errs...)
}
