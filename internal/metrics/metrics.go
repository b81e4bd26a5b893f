// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package metrics defines the Prometheus collectors every engine updates as
// it processes batches, so a long-running benchmark process can expose
// throughput and rebalancing activity to a scrape endpoint.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Set holds the collectors a single engine instance owns.
type Set struct {
	BatchesProcessed prometheus.Counter
	UpdatesProcessed prometheus.Counter
	QueriesProcessed prometheus.Counter
	Rebalances       prometheus.Counter
	QueueDepth       prometheus.Gauge
}

// NewSet builds an unregistered Set labeled by strategy, so multiple
// engines coexisting in one process (a benchmark comparing strategies back
// to back) don't collide on metric identity.
func NewSet(strategy string) *Set {
	labels := prometheus.Labels{"strategy": strategy}
	return &Set{
		BatchesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "parfenwick_batches_processed_total",
			Help:        "Number of batches fully processed by this engine.",
			ConstLabels: labels,
		}),
		UpdatesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "parfenwick_updates_processed_total",
			Help:        "Number of add operations applied by this engine.",
			ConstLabels: labels,
		}),
		QueriesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "parfenwick_queries_processed_total",
			Help:        "Number of query operations answered by this engine.",
			ConstLabels: labels,
		}),
		Rebalances: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "parfenwick_partition_rebalances_total",
			Help:        "Number of semi-static partition boundary adjustments made.",
			ConstLabels: labels,
		}),
		QueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "parfenwick_dispatcher_queue_depth",
			Help:        "Approximate items outstanding across worker queues after the last dispatch.",
			ConstLabels: labels,
		}),
	}
}

// MustRegister registers every collector in the set with reg.
func (s *Set) MustRegister(reg *prometheus.Registry) {
	reg.MustRegister(s.BatchesProcessed, s.UpdatesProcessed, s.QueriesProcessed, s.Rebalances, s.QueueDepth)
}
