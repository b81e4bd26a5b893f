// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package parfenwick

import (
	"runtime"
	"sync/atomic"

	"github.com/EricTsengTy/parfenwick/internal/aligned"
	"github.com/EricTsengTy/parfenwick/internal/fwerrors"
	"github.com/EricTsengTy/parfenwick/internal/metrics"
	"github.com/EricTsengTy/parfenwick/internal/queue"
)

// taskDispatcher holds the state shared by every task-parallel scheduler:
// per-worker inbound queues, the round-robin update counter, the padded
// result vector, and the poisoned-worker bookkeeping that keeps sync from
// hanging forever if a worker panics.
type taskDispatcher struct {
	n       int
	queues  []queue.Queue
	logger  Logger
	metrics *metrics.Set

	rr     int // round-robin counter; the dispatcher is single-threaded.
	result []aligned.PaddedCounter

	syncCounter atomic.Int64
	poisoned    atomic.Bool
	poisonedBy  atomic.Int32
}

func (d *taskDispatcher) init() {
	d.rr = 0
	d.result = nil
}

// submit walks batch in order, round-robin-sharding updates across workers
// (exactly one consumer per update) and broadcasting queries to all of
// them, matching each query to its slot in a freshly-sized result vector.
func (d *taskDispatcher) submit(batch Batch) {
	d.result = make([]aligned.PaddedCounter, len(batch))
	for slot, op := range batch {
		switch op.Kind {
		case OpAdd:
			w := d.rr % d.n
			d.rr++
			d.queues[w].Push(queue.Task{Kind: queue.Update, Index: op.Index, Value: op.Value})
			d.metrics.UpdatesProcessed.Inc()
		case OpQuery:
			for _, q := range d.queues {
				q.Push(queue.Task{Kind: queue.Query, Index: op.Index, Slot: slot})
			}
			d.metrics.QueriesProcessed.Inc()
		}
	}
	d.metrics.QueueDepth.Set(float64(d.queueDepth()))
}

// queueDepth sums the items currently outstanding across every worker's
// queue, a snapshot taken right after a dispatch.
func (d *taskDispatcher) queueDepth() int {
	total := 0
	for _, q := range d.queues {
		total += q.Len()
	}
	return total
}

// sync broadcasts a Sync task and spins on the shared counter until every
// worker has acknowledged.
func (d *taskDispatcher) sync() {
	d.checkPoisoned()
	target := d.syncCounter.Load() + int64(d.n)
	for _, q := range d.queues {
		q.Push(queue.Task{Kind: queue.Sync})
	}
	for d.syncCounter.Load() < target {
		d.checkPoisoned()
		runtime.Gosched()
	}
	d.metrics.BatchesProcessed.Inc()
}

func (d *taskDispatcher) checkPoisoned() {
	if d.poisoned.Load() {
		panic(fwerrors.Poisoned(int(d.poisonedBy.Load()), "worker panicked; sync cannot drain"))
	}
}

func (d *taskDispatcher) validateSum() int64 {
	var total int64
	for i := range d.result {
		total += d.result[i].Load()
	}
	return total
}

func (d *taskDispatcher) shutdown() {
	for _, q := range d.queues {
		q.Push(queue.Task{Kind: queue.Finish})
	}
}

// runReplicaWorker is the worker loop shared by the central and lock-free
// schedulers: pull a task off q, apply it to replica, repeat until Finish.
// A panic mid-task poisons the dispatcher rather than propagating, so sync
// observes the failure instead of hanging.
func runReplicaWorker(id int, replica *SequentialTree, q queue.Queue, d *taskDispatcher) {
	if err := pinWorker(id); err != nil {
		d.logger.Errorf("task worker %d: %v", id, err)
	}
	defer func() {
		if r := recover(); r != nil {
			d.poisonedBy.Store(int32(id))
			d.poisoned.Store(true)
			d.logger.Errorf("task worker %d panicked: %v", id, r)
			// Unblock any sync() spin waiting on this worker.
			d.syncCounter.Add(1)
		}
	}()
	for {
		t := q.Pop()
		switch t.Kind {
		case queue.Update:
			replica.Add(t.Index, t.Value)
		case queue.Query:
			d.result[t.Slot].Add(replica.Sum(t.Index))
		case queue.Sync:
			d.syncCounter.Add(1)
		case queue.Finish:
			return
		}
	}
}
