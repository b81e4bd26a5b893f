// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package parfenwick

import (
	"github.com/EricTsengTy/parfenwick/internal/aligned"
	"github.com/EricTsengTy/parfenwick/internal/metrics"
	"github.com/EricTsengTy/parfenwick/internal/workerpool"
)

// AggregateEngine is the model-parallel variant that converts each
// worker's O(log N) scattered update-chain writes per operation into O(1)
// per operation plus one linear sweep over its slab: only the first index
// an operation's update chain lands on inside the slab is touched during
// the write run; a post-run sweep then propagates each cell along the
// chain within the slab and flushes the result into the shared tree.
type AggregateEngine struct {
	n         int
	bits      []int64
	partition Partition
	localBits [][]int64 // per-worker shadow slab, reused across batches
	pool      *workerpool.Pool
	logger    Logger
	metrics   *metrics.Set
	total     int64
}

// NewAggregateEngine constructs an aggregate-batching model-parallel
// engine.
func NewAggregateEngine(n, w int, logger Logger) *AggregateEngine {
	if logger == nil {
		logger = DefaultLogger()
	}
	partition := PlanPartition(n, w, false)
	local := make([][]int64, w)
	for i, r := range partition {
		local[i] = make([]int64, r.Len())
	}
	return &AggregateEngine{
		n:         n,
		bits:      aligned.Int64Slice(n + 1),
		partition: partition,
		localBits: local,
		pool:      workerpool.New(w, logger),
		logger:    logger,
		metrics:   metrics.NewSet("pipeline-aggregate"),
	}
}

// Init resets the batch's accumulated query total.
func (e *AggregateEngine) Init() { e.total = 0 }

// Submit applies batch, sweeping each worker's shadow slab into the shared
// tree at every query boundary (and at the end of the batch).
func (e *AggregateEngine) Submit(batch Batch) {
	e.total += runModelBatch(e.pool.Run, e.applyAdds, e.sum, batch)
	e.metrics.BatchesProcessed.Inc()
}

func (e *AggregateEngine) applyAdds(id int, adds []Op) {
	r := e.partition[id]
	local := e.localBits[id]

	for _, op := range adds {
		x := op.Index + 1
		if x < r.Lower {
			x = jumpIntoRange(x, r.Lower)
		}
		if x < r.Upper {
			local[x-r.Lower] += op.Value
		}
	}
	if id == 0 {
		e.metrics.UpdatesProcessed.Add(float64(len(adds)))
	}

	// Sweep in increasing index order so every cell has already received
	// its upstream propagation by the time it is visited.
	for i := 0; i < len(local); i++ {
		if local[i] == 0 {
			continue
		}
		x := r.Lower + i
		if next := x + lowbit(x); next < r.Upper {
			local[next-r.Lower] += local[i]
		}
		e.bits[x] += local[i]
		local[i] = 0
	}
}

func (e *AggregateEngine) sum(i int) int64 {
	e.metrics.QueriesProcessed.Inc()
	return treeSum(e.bits, i)
}

// Sync is a no-op: Submit already ran every add to completion before
// returning.
func (e *AggregateEngine) Sync() {}

// ValidateSum returns the batch's accumulated query total.
func (e *AggregateEngine) ValidateSum() int64 { return e.total }

// Shutdown releases the worker pool.
func (e *AggregateEngine) Shutdown() { e.pool.Shutdown() }

var _ Engine = (*AggregateEngine)(nil)
