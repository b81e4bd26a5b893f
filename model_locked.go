// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package parfenwick

import (
	"sync"

	"github.com/EricTsengTy/parfenwick/internal/aligned"
	"github.com/EricTsengTy/parfenwick/internal/metrics"
	"github.com/EricTsengTy/parfenwick/internal/workerpool"
)

// lockRegionSize is the number of consecutive cells guarded by one mutex.
const lockRegionSize = 16384

// LockedEngine is an earlier, index-range-mutex model-parallel variant: the
// shared tree is not partitioned among workers at all, and Add instead
// takes the lock covering whatever region of the array its update chain is
// currently visiting, releasing and reacquiring as the chain crosses a
// region boundary. It is dominated in practice by the lock-free partition
// variants but is kept as a documented evolutionary step (it is the
// FenwickTreeLocked class the other model-parallel engines evolved from).
type LockedEngine struct {
	n       int
	bits    []int64
	regions []sync.Mutex
	pool    *workerpool.Pool
	logger  Logger
	metrics *metrics.Set
	total   int64
}

// NewLockedEngine constructs a region-mutex model-parallel engine over a
// tree of size n with w worker goroutines.
func NewLockedEngine(n, w int, logger Logger) *LockedEngine {
	if logger == nil {
		logger = DefaultLogger()
	}
	return &LockedEngine{
		n:       n,
		bits:    aligned.Int64Slice(n + 1),
		regions: make([]sync.Mutex, n/lockRegionSize+2),
		pool:    workerpool.New(w, logger),
		logger:  logger,
		metrics: metrics.NewSet("lock"),
	}
}

// Init resets the batch's accumulated query total.
func (e *LockedEngine) Init() { e.total = 0 }

// Submit distributes batch's adds round-robin across workers (add itself
// is thread-safe via per-region locking, so no index-range partition is
// required) and evaluates queries sequentially at each write-window
// boundary.
func (e *LockedEngine) Submit(batch Batch) {
	e.total += runModelBatch(e.pool.Run, e.applyAdds, e.sum, batch)
	e.metrics.BatchesProcessed.Inc()
}

func (e *LockedEngine) applyAdds(id int, adds []Op) {
	n := e.pool.N()
	for i := id; i < len(adds); i += n {
		op := adds[i]
		e.add(op.Index, op.Value)
	}
	e.metrics.UpdatesProcessed.Add(float64((len(adds) + n - 1 - id) / n))
}

// add applies a single point update, taking the lock covering the chain's
// current region and hopping to the next region's lock as the chain
// crosses a boundary.
func (e *LockedEngine) add(index int, value int64) {
	x := index + 1
	region := x / lockRegionSize
	e.regions[region].Lock()
	for x < len(e.bits) {
		if r := x / lockRegionSize; r != region {
			e.regions[region].Unlock()
			region = r
			e.regions[region].Lock()
		}
		e.bits[x] += value
		x += lowbit(x)
	}
	e.regions[region].Unlock()
}

func (e *LockedEngine) sum(i int) int64 {
	e.metrics.QueriesProcessed.Inc()
	return treeSum(e.bits, i)
}

// Sync is a no-op: Submit already ran every add to completion before
// returning.
func (e *LockedEngine) Sync() {}

// ValidateSum returns the batch's accumulated query total.
func (e *LockedEngine) ValidateSum() int64 { return e.total }

// Shutdown releases the worker pool.
func (e *LockedEngine) Shutdown() { e.pool.Shutdown() }

var _ Engine = (*LockedEngine)(nil)
