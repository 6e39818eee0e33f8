// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/0xsoniclabs/pallets/executive"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.Run(append([]string{"palletnode"}, args...))
	return out.String(), errOut.String(), err
}

func TestRun_ExecutesDemoBlocks(t *testing.T) {
	require := require.New(t)
	out, logs, err := runApp(t, "run")
	require.NoError(err)

	require.Contains(out, "block 1: 2 applied, 0 failed\n")
	require.Contains(out, "block 2: 1 applied, 1 failed\n")
	require.Contains(out, "state root: 0x")
	require.Contains(out, "balances:\n  alice: 50\n  bob: 30\n  charlie: 20\n")
	require.Contains(out, "nonces:\n  alice: 2\n  bob: 1\n  charlie: 1\n")
	require.Contains(out, "claims:\n  hello: bob\n")

	require.Contains(logs, "extrinsic failed")
	require.Contains(logs, "insufficient funds")
}

func TestRun_InitialBalanceCanBeConfigured(t *testing.T) {
	require := require.New(t)
	out, _, err := runApp(t, "run", "--alice-balance", "40", "--log-level", "error")
	require.NoError(err)

	// alice can only afford the first transfer
	require.Contains(out, "block 1: 1 applied, 1 failed\n")
	require.Contains(out, "balances:\n  alice: 10\n  bob: 30\n")
}

func TestRun_StateRootIsDeterministic(t *testing.T) {
	require := require.New(t)
	first, _, err := runApp(t, "run")
	require.NoError(err)
	second, _, err := runApp(t, "run")
	require.NoError(err)
	require.Equal(first, second)
}

func TestRun_InvalidLogLevelIsRejected(t *testing.T) {
	_, _, err := runApp(t, "run", "--log-level", "loud")
	require.ErrorContains(t, err, "invalid log level")
}

func TestServeMetrics_StopsWhenContextIsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := serveMetrics(ctx, "127.0.0.1:0", executive.NewMetrics("test").Registry(), zap.NewNop())
	require.NoError(t, err)
}

func TestServeMetrics_ReportsListenErrors(t *testing.T) {
	err := serveMetrics(context.Background(), "127.0.0.1:-1", executive.NewMetrics("test").Registry(), zap.NewNop())
	require.ErrorContains(t, err, "metrics server failed")
}
