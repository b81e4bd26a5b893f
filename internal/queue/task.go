// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package queue provides the two inbound task-queue implementations shared
// by the task-parallel schedulers: a mutex/condvar FIFO (central scheduler)
// and a bounded lock-free SPSC ring (lock-free scheduler). Both satisfy the
// same Queue interface so the scheduler that drives them is written once
// and is agnostic to which queue variant backs a worker.
package queue

// Kind distinguishes the four task shapes a worker's queue carries.
type Kind int

const (
	// Update tells the worker to apply a point update to its replica.
	Update Kind = iota
	// Query tells the worker to add its replica's contribution for Index
	// into the shared result vector at Slot.
	Query
	// Sync tells the worker to acknowledge a drain barrier.
	Sync
	// Finish tells the worker loop to return.
	Finish
)

// Task is the wire shape enqueued onto a worker's inbound queue.
type Task struct {
	Kind  Kind
	Index int
	Value int64
	Slot  int
}

// Queue is a FIFO with blocking dequeue and single-producer enqueue. Both
// implementations in this package guarantee strict per-(producer,consumer)
// FIFO ordering; the dispatcher is always the sole producer for a given
// worker's queue.
type Queue interface {
	Push(Task)
	Pop() Task
	// Len reports the number of items currently queued. It is a snapshot
	// for metrics purposes only; a concurrent Push or Pop can race it.
	Len() int
}
