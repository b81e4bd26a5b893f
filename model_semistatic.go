// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package parfenwick

import (
	"time"

	"github.com/EricTsengTy/parfenwick/internal/aligned"
	"github.com/EricTsengTy/parfenwick/internal/metrics"
	"github.com/EricTsengTy/parfenwick/internal/workerpool"
)

// semiStaticStep is the fixed odd boundary-shift step used when rebalancing
// two neighboring workers' slabs. An odd step avoids the partition
// oscillating around a boundary that sits on a power-of-two bit.
const semiStaticStep = 127

// SemiStaticEngine is the model-parallel variant that adjusts its own
// partition between batches from measured per-worker wall time: the
// boundary between a slower worker and its faster neighbor shifts by a
// fixed step to shrink the slower worker's slab.
type SemiStaticEngine struct {
	n         int
	bits      []int64
	partition Partition
	pool      *workerpool.Pool
	logger    Logger
	metrics   *metrics.Set
	total     int64

	// elapsed[w] holds worker w's wall time (nanoseconds) for the most
	// recent add run, cache-line padded because every worker writes to a
	// distinct but adjacent cell every batch.
	elapsed []aligned.PaddedCounter
}

// NewSemiStaticEngine constructs a semi-static model-parallel engine,
// seeded with the same load-balanced partition the fixed variant uses
// (unaligned, since this variant is free to move boundaries later).
func NewSemiStaticEngine(n, w int, logger Logger) *SemiStaticEngine {
	if logger == nil {
		logger = DefaultLogger()
	}
	return &SemiStaticEngine{
		n:         n,
		bits:      aligned.Int64Slice(n + 1),
		partition: PlanPartition(n, w, false),
		pool:      workerpool.New(w, logger),
		logger:    logger,
		metrics:   metrics.NewSet("pipeline-semi-static"),
		elapsed:   make([]aligned.PaddedCounter, w),
	}
}

// Init resets the batch's accumulated query total.
func (e *SemiStaticEngine) Init() { e.total = 0 }

// Submit applies batch, then rebalances the partition from the just-
// recorded per-worker timings before the next Submit call.
func (e *SemiStaticEngine) Submit(batch Batch) {
	e.total += runModelBatch(e.pool.Run, e.applyAdds, e.sum, batch)
	e.rebalance()
	e.metrics.BatchesProcessed.Inc()
}

func (e *SemiStaticEngine) applyAdds(id int, adds []Op) {
	start := time.Now()
	r := e.partition[id]
	for _, op := range adds {
		standardSlabAdd(e.bits, r, op.Index, op.Value)
	}
	e.elapsed[id].Store(int64(time.Since(start)))
	if id == 0 {
		e.metrics.UpdatesProcessed.Add(float64(len(adds)))
	}
}

func (e *SemiStaticEngine) sum(i int) int64 {
	e.metrics.QueriesProcessed.Inc()
	return treeSum(e.bits, i)
}

// rebalance walks adjacent worker pairs and shifts the shared boundary by
// semiStaticStep toward the slower worker, shrinking its slab. It runs on
// the single dispatcher goroutine after Submit's barrier has already
// closed, giving an "exactly one adjustment per pair per batch" guarantee
// without needing a CAS race among the workers themselves.
func (e *SemiStaticEngine) rebalance() {
	for w := 0; w < len(e.partition)-1; w++ {
		slow := e.elapsed[w].Load()
		fast := e.elapsed[w+1].Load()
		if slow == fast {
			continue
		}
		delta := semiStaticStep
		if slow > fast {
			delta = -delta
		}
		boundary := e.partition[w].Upper + delta
		if boundary <= e.partition[w].Lower {
			boundary = e.partition[w].Lower + 1
		}
		if boundary >= e.partition[w+1].Upper {
			boundary = e.partition[w+1].Upper - 1
		}
		if boundary == e.partition[w].Upper {
			continue
		}
		e.partition[w].Upper = boundary
		e.partition[w+1].Lower = boundary
		e.metrics.Rebalances.Inc()
	}
}

// Sync is a no-op: Submit already ran every add to completion before
// returning.
func (e *SemiStaticEngine) Sync() {}

// ValidateSum returns the batch's accumulated query total.
func (e *SemiStaticEngine) ValidateSum() int64 { return e.total }

// Shutdown releases the worker pool.
func (e *SemiStaticEngine) Shutdown() { e.pool.Shutdown() }

var _ Engine = (*SemiStaticEngine)(nil)
