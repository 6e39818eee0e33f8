// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package executive applies blocks of extrinsics to a runtime.
package executive

//go:generate mockgen -source executive.go -destination executive_mocks.go -package executive

import (
	"fmt"

	"github.com/0xsoniclabs/pallets/common"
	"github.com/0xsoniclabs/pallets/common/arith"
	"github.com/0xsoniclabs/pallets/common/result"
	"github.com/0xsoniclabs/pallets/frame"
	"go.uber.org/zap"
)

const ErrBlockNumberMismatch = common.ConstError("block number mismatch")

// Runtime is the view of a runtime required for executing blocks.
type Runtime[AccountID any, BlockNumber arith.Counter, Call any] interface {
	frame.Dispatchable[AccountID, Call]

	BlockNumber() BlockNumber
	IncBlockNumber()
	IncNonce(who AccountID)

	// Transaction runs the given function such that its state modifications
	// are discarded if it fails.
	Transaction(run func() error) error
}

// Reporter receives the extrinsics rejected during block execution.
type Reporter[AccountID any, BlockNumber arith.Counter] interface {
	ExtrinsicFailed(Failure[AccountID, BlockNumber])
}

// Config holds the optional collaborators of an Executive. All fields may be
// left empty.
type Config[AccountID any, BlockNumber arith.Counter] struct {
	Reporter Reporter[AccountID, BlockNumber]
	Logger   *zap.Logger
	Metrics  *Metrics
}

// Executive drives a runtime through a sequence of blocks. It is not safe for
// concurrent use; blocks have to be executed one at a time.
type Executive[AccountID any, BlockNumber arith.Counter, Call any] struct {
	runtime  Runtime[AccountID, BlockNumber, Call]
	reporter Reporter[AccountID, BlockNumber]
	logger   *zap.Logger
	metrics  *Metrics
}

// New creates an Executive for the given runtime.
func New[AccountID any, BlockNumber arith.Counter, Call any](
	runtime Runtime[AccountID, BlockNumber, Call],
	config Config[AccountID, BlockNumber],
) *Executive[AccountID, BlockNumber, Call] {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	reporter := config.Reporter
	if reporter == nil {
		reporter = NewLogReporter[AccountID, BlockNumber](logger)
	}
	return &Executive[AccountID, BlockNumber, Call]{
		runtime:  runtime,
		reporter: reporter,
		logger:   logger,
		metrics:  config.Metrics,
	}
}

// ExecuteBlock applies the given block. The block height is advanced before
// the block's declared number is validated; a block with an unexpected
// number is rejected with ErrBlockNumberMismatch and none of its extrinsics
// are applied, yet the height stays advanced.
//
// Each extrinsic increments its caller's nonce and is then dispatched in its
// own storage transaction. Rejected extrinsics are passed to the Reporter and
// leave no state modification except the nonce increment; they never cause
// the block to be rejected.
func (e *Executive[AccountID, BlockNumber, Call]) ExecuteBlock(
	block Block[AccountID, BlockNumber, Call],
) (Report[BlockNumber], error) {
	e.runtime.IncBlockNumber()
	current := e.runtime.BlockNumber()
	e.metrics.observeHeight(uint64(current))

	report := Report[BlockNumber]{Number: current}
	if block.Header.Number != current {
		e.metrics.blockRejected()
		e.logger.Warn("block rejected",
			zap.Uint64("expected", uint64(current)),
			zap.Uint64("declared", uint64(block.Header.Number)),
		)
		return report, fmt.Errorf("%w: expected %d, got %d", ErrBlockNumberMismatch, current, block.Header.Number)
	}

	for i, extrinsic := range block.Extrinsics {
		e.runtime.IncNonce(extrinsic.Caller)
		err := e.runtime.Transaction(func() error {
			return e.runtime.Dispatch(extrinsic.Caller, extrinsic.Call)
		})
		if err != nil {
			report.Failed++
			e.metrics.extrinsicFailed()
			e.reporter.ExtrinsicFailed(Failure[AccountID, BlockNumber]{
				Block:  current,
				Index:  i,
				Caller: extrinsic.Caller,
				Err:    err,
			})
			continue
		}
		report.Applied++
		e.metrics.extrinsicApplied()
	}

	e.metrics.blockApplied()
	e.logger.Debug("block applied",
		zap.Uint64("number", uint64(current)),
		zap.Int("applied", report.Applied),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}

// ExecuteBlocks applies the given blocks in order. A rejected block does not
// stop the execution of its successors; the outcome of every block is
// returned.
func (e *Executive[AccountID, BlockNumber, Call]) ExecuteBlocks(
	blocks []Block[AccountID, BlockNumber, Call],
) []result.Result[Report[BlockNumber]] {
	res := make([]result.Result[Report[BlockNumber]], 0, len(blocks))
	for _, block := range blocks {
		report, err := e.ExecuteBlock(block)
		if err != nil {
			res = append(res, result.Err[Report[BlockNumber]](err))
		} else {
			res = append(res, result.Ok(report))
		}
	}
	return res
}
