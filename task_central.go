// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package parfenwick

import (
	"github.com/EricTsengTy/parfenwick/internal/metrics"
	"github.com/EricTsengTy/parfenwick/internal/queue"
)

// CentralEngine is the task-parallel scheduler backed by a mutex/condvar
// queue per worker: the tree is replicated, one private SequentialTree per
// worker, and the dispatcher shards updates round-robin while broadcasting
// queries to every replica.
type CentralEngine struct {
	taskDispatcher
	replicas []*SequentialTree
}

// NewCentralEngine constructs a central-scheduler task-parallel engine
// with w workers, each owning a private tree of size n.
func NewCentralEngine(n, w int, logger Logger) *CentralEngine {
	if logger == nil {
		logger = DefaultLogger()
	}
	e := &CentralEngine{}
	e.n = w
	e.logger = logger
	e.metrics = metrics.NewSet("central_scheduler")
	e.queues = make([]queue.Queue, w)
	e.replicas = make([]*SequentialTree, w)
	for i := 0; i < w; i++ {
		q := queue.NewMutexQueue()
		e.queues[i] = q
		e.replicas[i] = NewSequentialTree(n)
		go runReplicaWorker(i, e.replicas[i], q, &e.taskDispatcher)
	}
	return e
}

// Init resets per-batch dispatcher state.
func (e *CentralEngine) Init() { e.init() }

// Submit shards batch across the replica workers.
func (e *CentralEngine) Submit(batch Batch) { e.submit(batch) }

// Sync drains every worker's queue via a broadcast Sync barrier.
func (e *CentralEngine) Sync() { e.sync() }

// ValidateSum sums every worker's contribution to the batch's queries.
func (e *CentralEngine) ValidateSum() int64 { return e.validateSum() }

// Shutdown broadcasts Finish and lets every worker goroutine return.
func (e *CentralEngine) Shutdown() { e.shutdown() }

var _ Engine = (*CentralEngine)(nil)
