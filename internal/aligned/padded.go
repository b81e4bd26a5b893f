// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package aligned

import "sync/atomic"

// PaddedCounter is an atomic int64 padded out to a full cache line. It is
// used wherever multiple goroutines write to adjacent cells of a shared
// slice — the task-parallel result vector and the lazy-sync reader/writer
// arbitration counters — so that one goroutine's writes don't invalidate a
// neighbor's cache line.
type PaddedCounter struct {
	v   atomic.Int64
	_   [CacheLine - 8]byte
}

// Add atomically adds delta and returns the new value.
func (c *PaddedCounter) Add(delta int64) int64 {
	return c.v.Add(delta)
}

// Load atomically reads the counter.
func (c *PaddedCounter) Load() int64 {
	return c.v.Load()
}

// Store atomically sets the counter.
func (c *PaddedCounter) Store(v int64) {
	c.v.Store(v)
}
