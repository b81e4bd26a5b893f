// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package parfenwick

import (
	"github.com/EricTsengTy/parfenwick/internal/aligned"
	"github.com/EricTsengTy/parfenwick/internal/metrics"
	"github.com/EricTsengTy/parfenwick/internal/workerpool"
)

// PureParallelEngine is the decentralized task-parallel variant: there is
// no dispatcher and no queues. Every worker is handed the same batch slice
// and its own private replica, and independently walks the whole batch in
// order, executing every W-th add (by a purely local counter, so no
// coordination between workers is needed) and computing every query
// against its own replica, atomically accumulating into the shared result
// vector.
type PureParallelEngine struct {
	n        int
	w        int
	replicas []*SequentialTree
	pool     *workerpool.Pool
	logger   Logger
	metrics  *metrics.Set
	result   []aligned.PaddedCounter
}

// NewPureParallelEngine constructs a decentralized task-parallel engine
// with w workers, each owning a private tree of size n.
func NewPureParallelEngine(n, w int, logger Logger) *PureParallelEngine {
	if logger == nil {
		logger = DefaultLogger()
	}
	replicas := make([]*SequentialTree, w)
	for i := range replicas {
		replicas[i] = NewSequentialTree(n)
	}
	return &PureParallelEngine{
		n:        n,
		w:        w,
		replicas: replicas,
		pool:     workerpool.New(w, logger),
		logger:   logger,
		metrics:  metrics.NewSet("pure_parallel"),
	}
}

// Init resets the batch's result vector.
func (e *PureParallelEngine) Init() { e.result = nil }

// Submit hands every worker the whole batch and its own replica, and
// blocks until all workers have finished walking it.
func (e *PureParallelEngine) Submit(batch Batch) {
	e.result = make([]aligned.PaddedCounter, len(batch))
	e.pool.Run(func(id int) {
		replica := e.replicas[id]
		counter := 0
		for slot, op := range batch {
			switch op.Kind {
			case OpAdd:
				if counter%e.w == id {
					replica.Add(op.Index, op.Value)
				}
				counter++
			case OpQuery:
				e.result[slot].Add(replica.Sum(op.Index))
			}
		}
	})
	e.metrics.BatchesProcessed.Inc()
}

// Sync is a no-op: Submit's pool.Run barrier already joined every worker.
func (e *PureParallelEngine) Sync() {}

// ValidateSum returns the batch's accumulated query total.
func (e *PureParallelEngine) ValidateSum() int64 {
	var total int64
	for i := range e.result {
		total += e.result[i].Load()
	}
	return total
}

// Shutdown releases the worker pool.
func (e *PureParallelEngine) Shutdown() { e.pool.Shutdown() }

var _ Engine = (*PureParallelEngine)(nil)
