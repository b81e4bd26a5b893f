// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package parfenwick

import "github.com/EricTsengTy/parfenwick/internal/fwerrors"

// lowbit returns x & -x, the lowest set bit of x.
func lowbit(x int) int {
	return x & (-x)
}

// SequentialTree is the single-threaded Fenwick tree primitive. It is not
// safe for concurrent use; every concurrent engine in this package is built
// on top of it (as a private replica) or reimplements its update/query
// chains directly against a shared array.
type SequentialTree struct {
	// bits is 1-indexed; bits[0] is unused. After any prefix of applied Add
	// operations, bits[i] holds the sum of original input values in the
	// index range (i - lowbit(i), i].
	bits []int64
}

// NewSequentialTree returns a tree over positions [0, n) initialized to all
// zero.
func NewSequentialTree(n int) *SequentialTree {
	if n < 0 {
		panic(fwerrors.Invariant("fenwick: tree size %d must be >= 0", n))
	}
	return &SequentialTree{bits: make([]int64, n+1)}
}

// Len returns N, the number of addressable positions.
func (t *SequentialTree) Len() int {
	return len(t.bits) - 1
}

// Add adds v to position i. i must be in [0, Len()).
func (t *SequentialTree) Add(i int, v int64) {
	if i < 0 || i >= t.Len() {
		panic(fwerrors.Invariant("fenwick: add index %d out of [0,%d)", i, t.Len()))
	}
	for x := i + 1; x < len(t.bits); x += lowbit(x) {
		t.bits[x] += v
	}
}

// Sum returns the prefix sum of positions [0, i]. i must be in [0, Len()).
func (t *SequentialTree) Sum(i int) int64 {
	if i < 0 || i >= t.Len() {
		panic(fwerrors.Invariant("fenwick: sum index %d out of [0,%d)", i, t.Len()))
	}
	var total int64
	for x := i + 1; x > 0; x -= lowbit(x) {
		total += t.bits[x]
	}
	return total
}

// BatchAdd applies every OpAdd in ops, in order. Queries in ops are ignored;
// callers wanting query results use Sum directly.
func (t *SequentialTree) BatchAdd(ops Batch) {
	for _, op := range ops {
		if op.Kind == OpAdd {
			t.Add(op.Index, op.Value)
		}
	}
}

// ReferenceSum applies ops to t in order, so t carries their adds into the
// next call, and returns the total of every query's result. It is the
// sequential baseline every engine's ValidateSum is checked against.
func (t *SequentialTree) ReferenceSum(ops Batch) int64 {
	var total int64
	for _, op := range ops {
		switch op.Kind {
		case OpAdd:
			t.Add(op.Index, op.Value)
		case OpQuery:
			total += t.Sum(op.Index)
		}
	}
	return total
}
