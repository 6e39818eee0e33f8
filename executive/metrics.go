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
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects block execution telemetry in its own registry. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	blocksApplied  prometheus.Counter
	blocksRejected prometheus.Counter
	extrinsics     *prometheus.CounterVec
	height         prometheus.Gauge
}

// NewMetrics creates the execution metrics using the given namespace.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "runtime"
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
	}

	m.blocksApplied = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "executive",
		Name:      "blocks_applied_total",
		Help:      "Number of blocks applied",
	})
	m.blocksRejected = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "executive",
		Name:      "blocks_rejected_total",
		Help:      "Number of blocks rejected due to an unexpected block number",
	})
	m.extrinsics = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "executive",
			Name:      "extrinsics_total",
			Help:      "Number of processed extrinsics by result (applied, failed)",
		},
		[]string{"result"},
	)
	m.height = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "executive",
		Name:      "block_height",
		Help:      "Current block height",
	})

	m.registry.MustRegister(m.blocksApplied, m.blocksRejected, m.extrinsics, m.height)
	return m
}

// Registry returns the registry holding all execution metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) blockApplied() {
	if m != nil {
		m.blocksApplied.Inc()
	}
}

func (m *Metrics) blockRejected() {
	if m != nil {
		m.blocksRejected.Inc()
	}
}

func (m *Metrics) extrinsicApplied() {
	if m != nil {
		m.extrinsics.WithLabelValues("applied").Inc()
	}
}

func (m *Metrics) extrinsicFailed() {
	if m != nil {
		m.extrinsics.WithLabelValues("failed").Inc()
	}
}

func (m *Metrics) observeHeight(height uint64) {
	if m != nil {
		m.height.Set(float64(height))
	}
}
