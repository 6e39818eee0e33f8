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
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/0xsoniclabs/pallets/executive"
	"github.com/0xsoniclabs/pallets/log"
	"github.com/0xsoniclabs/pallets/runtime"
	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var (
	logLevelFlag = cli.StringFlag{
		Name:  "log-level",
		Usage: "minimum level of log messages (debug, info, warn, error)",
		Value: "info",
	}
	logFileFlag = cli.StringFlag{
		Name:  "log-file",
		Usage: "additionally write JSON logs to the given file",
	}
	metricsAddrFlag = cli.StringFlag{
		Name:  "metrics-addr",
		Usage: "serve Prometheus metrics on the given address until interrupted",
	}
	aliceBalanceFlag = cli.Uint64Flag{
		Name:  "alice-balance",
		Usage: "initial balance of alice",
		Value: 100,
	}
)

var Run = cli.Command{
	Action: run,
	Name:   "run",
	Usage:  "executes the demo blocks and prints the resulting state",
	Flags: []cli.Flag{
		&logLevelFlag,
		&logFileFlag,
		&metricsAddrFlag,
		&aliceBalanceFlag,
	},
}

func run(context *cli.Context) error {
	logger, err := log.New(log.Options{
		Level:      context.String(logLevelFlag.Name),
		Console:    context.App.ErrWriter,
		File:       context.String(logFileFlag.Name),
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
	})
	if err != nil {
		return err
	}
	defer logger.Sync()

	rt := runtime.New()
	metrics := executive.NewMetrics("palletnode")
	exec := rt.NewExecutive(executive.Config[runtime.AccountID, runtime.BlockNumber]{
		Logger:  logger,
		Metrics: metrics,
	})

	rt.Balances().SetBalance("alice", *uint256.NewInt(context.Uint64(aliceBalanceFlag.Name)))

	out := context.App.Writer
	for i, res := range exec.ExecuteBlocks(demoBlocks()) {
		report, err := res.Get()
		if err != nil {
			fmt.Fprintf(out, "block #%d rejected: %v\n", i+1, err)
			continue
		}
		fmt.Fprintf(out, "block %d: %d applied, %d failed\n", report.Number, report.Applied, report.Failed)
	}

	root, err := rt.StateRoot()
	if err != nil {
		return errors.Join(err, rt.Close())
	}
	fmt.Fprintf(out, "state root: %v\n", root)
	printState(out, rt)

	if addr := context.String(metricsAddrFlag.Name); addr != "" {
		if err := serveMetrics(context.Context, addr, metrics.Registry(), logger); err != nil {
			return errors.Join(err, rt.Close())
		}
	}
	return rt.Close()
}

func demoBlocks() []runtime.Block {
	return []runtime.Block{
		{
			Header: runtime.Header{Number: 1},
			Extrinsics: []runtime.Extrinsic{
				{Caller: "alice", Call: runtime.Transfer("bob", *uint256.NewInt(30))},
				{Caller: "alice", Call: runtime.Transfer("charlie", *uint256.NewInt(20))},
			},
		},
		{
			Header: runtime.Header{Number: 2},
			Extrinsics: []runtime.Extrinsic{
				{Caller: "bob", Call: runtime.CreateClaim("hello")},
				{Caller: "charlie", Call: runtime.Transfer("alice", *uint256.NewInt(1000))},
			},
		},
	}
}

func printState(out io.Writer, rt *runtime.Runtime) {
	balances := map[string]string{}
	rt.Balances().Accounts(func(who runtime.AccountID, balance runtime.Balance) bool {
		balances[who] = balance.Dec()
		return true
	})
	printSection(out, "balances", balances)

	nonces := map[string]string{}
	rt.System().Accounts(func(who runtime.AccountID, nonce runtime.Nonce) bool {
		nonces[who] = fmt.Sprint(nonce)
		return true
	})
	printSection(out, "nonces", nonces)

	claims := map[string]string{}
	rt.Claims().Claims(func(content runtime.Content, owner runtime.AccountID) bool {
		claims[content] = owner
		return true
	})
	printSection(out, "claims", claims)
}

// printSection lists the entries sorted by key; storage order follows the
// key hashes and is not meaningful to a reader.
func printSection(out io.Writer, title string, entries map[string]string) {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	fmt.Fprintf(out, "%s:\n", title)
	for _, key := range keys {
		fmt.Fprintf(out, "  %s: %s\n", key, entries[key])
	}
}

// serveMetrics exposes the registry via HTTP until ctx is canceled or the
// process receives an interrupt.
func serveMetrics(ctx context.Context, addr string, registry *prometheus.Registry, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		errs <- server.ListenAndServe()
	}()
	logger.Info("serving metrics", zap.String("addr", addr))

	select {
	case err := <-errs:
		return fmt.Errorf("metrics server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
