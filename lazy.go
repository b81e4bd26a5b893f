// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package parfenwick

import (
	"runtime"
	"sync/atomic"

	"github.com/EricTsengTy/parfenwick/internal/aligned"
	"github.com/EricTsengTy/parfenwick/internal/metrics"
	"github.com/EricTsengTy/parfenwick/internal/workerpool"
)

// LazyEngine is a single shared Fenwick array of atomic cells. On its own
// it is linearizable but slow, since every cell touch is an atomic
// operation; it is meant to be driven by a batching policy that
// parallelizes the writes between two consecutive queries in a batch (a
// "write window") with no per-cell locking, relying only on the
// reader/writer arbitration below to keep a query from observing a torn
// window.
//
// The arbitration is single-reader, multi-writer with an explicit writer
// gate: a writer spins while any reader is active before declaring itself
// active, and a reader spins while any writer is active before declaring
// itself active. Without the writer-side gate a query could start reading
// while a write window is still committing, observing a torn window.
type LazyEngine struct {
	n      int
	bits   []atomic.Int64
	reads  aligned.PaddedCounter
	writes aligned.PaddedCounter

	pool    *workerpool.Pool
	logger  Logger
	metrics *metrics.Set
	total   int64
}

// NewLazyEngine constructs a lazy-sync engine over a tree of size n with w
// worker goroutines available to parallelize a batch's write windows.
func NewLazyEngine(n, w int, logger Logger) *LazyEngine {
	if logger == nil {
		logger = DefaultLogger()
	}
	return &LazyEngine{
		n:       n,
		bits:    make([]atomic.Int64, n+1),
		pool:    workerpool.New(w, logger),
		logger:  logger,
		metrics: metrics.NewSet("lazy"),
	}
}

// Init resets the batch's accumulated query total.
func (e *LazyEngine) Init() { e.total = 0 }

// Submit splits batch into write windows at query boundaries: adds
// accumulate into a pending window, and reaching a query flushes the
// window (parallelized across workers, gated against any in-flight reader)
// before evaluating the query.
func (e *LazyEngine) Submit(batch Batch) {
	var pending []Op
	flush := func() {
		if len(pending) == 0 {
			return
		}
		adds := pending
		e.writerEnter()
		e.pool.Run(func(id int) { e.applyAdds(id, adds) })
		e.writerExit()
		pending = nil
	}
	for _, op := range batch {
		switch op.Kind {
		case OpAdd:
			pending = append(pending, op)
		case OpQuery:
			flush()
			e.total += e.sum(op.Index)
		}
	}
	flush()
	e.metrics.BatchesProcessed.Inc()
}

// applyAdds chunk-splits adds round-robin across workers. No index-range
// partition is needed: every cell touch is an atomic fetch-add, so any
// worker may touch any cell.
func (e *LazyEngine) applyAdds(id int, adds []Op) {
	n := e.pool.N()
	count := 0
	for i := id; i < len(adds); i += n {
		op := adds[i]
		for x := op.Index + 1; x < len(e.bits); x += lowbit(x) {
			e.bits[x].Add(op.Value)
		}
		count++
	}
	e.metrics.UpdatesProcessed.Add(float64(count))
}

func (e *LazyEngine) sum(i int) int64 {
	e.readerEnter()
	defer e.readerExit()
	var total int64
	for x := i + 1; x > 0; x -= lowbit(x) {
		total += e.bits[x].Load()
	}
	e.metrics.QueriesProcessed.Inc()
	return total
}

func (e *LazyEngine) writerEnter() {
	for e.reads.Load() != 0 {
		runtime.Gosched()
	}
	e.writes.Add(1)
}

func (e *LazyEngine) writerExit() {
	e.writes.Add(-1)
}

func (e *LazyEngine) readerEnter() {
	for e.writes.Load() != 0 {
		runtime.Gosched()
	}
	e.reads.Add(1)
}

func (e *LazyEngine) readerExit() {
	e.reads.Add(-1)
}

// Sync is a no-op: Submit already ran every write window to completion
// before returning.
func (e *LazyEngine) Sync() {}

// ValidateSum returns the batch's accumulated query total.
func (e *LazyEngine) ValidateSum() int64 { return e.total }

// Shutdown releases the worker pool.
func (e *LazyEngine) Shutdown() { e.pool.Shutdown() }

var _ Engine = (*LazyEngine)(nil)
