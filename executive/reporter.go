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

import (
	"github.com/0xsoniclabs/pallets/common/arith"
	"go.uber.org/zap"
)

// LogReporter writes every failure as a structured log entry.
type LogReporter[AccountID any, BlockNumber arith.Counter] struct {
	logger *zap.Logger
}

func NewLogReporter[AccountID any, BlockNumber arith.Counter](logger *zap.Logger) *LogReporter[AccountID, BlockNumber] {
	return &LogReporter[AccountID, BlockNumber]{logger: logger}
}

func (r *LogReporter[AccountID, BlockNumber]) ExtrinsicFailed(failure Failure[AccountID, BlockNumber]) {
	r.logger.Warn("extrinsic failed",
		zap.Uint64("block", uint64(failure.Block)),
		zap.Int("index", failure.Index),
		zap.Any("caller", failure.Caller),
		zap.Error(failure.Err),
	)
}

// NopReporter discards all failures.
type NopReporter[AccountID any, BlockNumber arith.Counter] struct{}

func (NopReporter[AccountID, BlockNumber]) ExtrinsicFailed(Failure[AccountID, BlockNumber]) {}
