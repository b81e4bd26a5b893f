// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package queue

import (
	"sync/atomic"

	"github.com/EricTsengTy/parfenwick/internal/fwerrors"
)

// SPSCQueue is a bounded single-producer/single-consumer ring buffer. The
// producer's Push is wait-free and never blocks; it fails loudly if the
// ring fills, since under normal load a capacity sized for the batch size
// never fills. The consumer's Pop blocks on a capacity-1 wake channel when
// the ring is empty, a lightweight-semaphore wakeup rather than a spin.
type SPSCQueue struct {
	buf  []Task
	mask uint64

	head atomic.Uint64 // owned by the consumer
	tail atomic.Uint64 // owned by the producer

	wake chan struct{}
}

// NewSPSCQueue returns a ring sized to the next power of two >= capacity.
func NewSPSCQueue(capacity int) *SPSCQueue {
	if capacity < 1 {
		panic(fwerrors.Invariant("spsc queue: capacity %d must be >= 1", capacity))
	}
	size := 1
	for size < capacity {
		size <<= 1
	}
	return &SPSCQueue{
		buf:  make([]Task, size),
		mask: uint64(size - 1),
		wake: make(chan struct{}, 1),
	}
}

// Push enqueues t. It panics if the ring is full: a full ring means the
// caller sized the queue too small for its workload, a programmer error.
func (q *SPSCQueue) Push(t Task) {
	tail := q.tail.Load()
	head := q.head.Load()
	if tail-head >= uint64(len(q.buf)) {
		panic(fwerrors.Invariant("spsc queue: ring buffer of capacity %d is full", len(q.buf)))
	}
	q.buf[tail&q.mask] = t
	q.tail.Store(tail + 1)

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Pop blocks until an item is available and returns it.
func (q *SPSCQueue) Pop() Task {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if head != tail {
			t := q.buf[head&q.mask]
			q.head.Store(head + 1)
			return t
		}
		<-q.wake
	}
}

// Len reports the number of items currently queued.
func (q *SPSCQueue) Len() int {
	return int(q.tail.Load() - q.head.Load())
}
