// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package parfenwick

import (
	"github.com/EricTsengTy/parfenwick/internal/metrics"
	"github.com/EricTsengTy/parfenwick/internal/queue"
)

// LockFreeEngine is the task-parallel scheduler backed by a bounded SPSC
// ring per worker instead of a mutex/condvar queue. Enqueue is wait-free;
// dequeue blocks on a lightweight semaphore wake-up when empty. Each
// worker's ring receives its round-robin share of a batch's adds plus every
// query in the batch (queries are broadcast), so queueCap should be sized
// comfortably above that count for the ring never to fill under normal load.
type LockFreeEngine struct {
	taskDispatcher
	replicas []*SequentialTree
}

// NewLockFreeEngine constructs a lock-free-scheduler task-parallel engine
// with w workers, each owning a private tree of size n and a ring queue of
// capacity queueCap.
func NewLockFreeEngine(n, w, queueCap int, logger Logger) *LockFreeEngine {
	if logger == nil {
		logger = DefaultLogger()
	}
	e := &LockFreeEngine{}
	e.n = w
	e.logger = logger
	e.metrics = metrics.NewSet("lockfree_scheduler")
	e.queues = make([]queue.Queue, w)
	e.replicas = make([]*SequentialTree, w)
	for i := 0; i < w; i++ {
		q := queue.NewSPSCQueue(queueCap)
		e.queues[i] = q
		e.replicas[i] = NewSequentialTree(n)
		go runReplicaWorker(i, e.replicas[i], q, &e.taskDispatcher)
	}
	return e
}

// Init resets per-batch dispatcher state.
func (e *LockFreeEngine) Init() { e.init() }

// Submit shards batch across the replica workers.
func (e *LockFreeEngine) Submit(batch Batch) { e.submit(batch) }

// Sync drains every worker's queue via a broadcast Sync barrier.
func (e *LockFreeEngine) Sync() { e.sync() }

// ValidateSum sums every worker's contribution to the batch's queries.
func (e *LockFreeEngine) ValidateSum() int64 { return e.validateSum() }

// Shutdown broadcasts Finish and lets every worker goroutine return.
func (e *LockFreeEngine) Shutdown() { e.shutdown() }

var _ Engine = (*LockFreeEngine)(nil)
