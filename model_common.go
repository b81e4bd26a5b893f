// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package parfenwick

import (
	"math/bits"

	"github.com/EricTsengTy/parfenwick/internal/workerpool"
)

// highestSetBit returns the highest set bit of x as a power of two, or 0
// when x is 0.
func highestSetBit(x int) int {
	if x == 0 {
		return 0
	}
	return 1 << (bits.Len(uint(x)) - 1)
}

// jumpIntoRange finds the smallest index on the update chain originating
// from x that is >= lower, without stepping through every out-of-range
// index on the way. It finds the highest bit position in which x and lower
// differ; if that bit lies below x's lowest set bit, the answer is the next
// chain step x + lowbit(x). Otherwise it sets that bit in x and clears all
// lower bits; if the result is still below lower, one lowbit step closes the
// gap.
func jumpIntoRange(x, lower int) int {
	if x >= lower {
		return x
	}
	diff := x ^ lower
	h := highestSetBit(diff)
	if h < lowbit(x) {
		return x + lowbit(x)
	}
	x = (x | h) &^ (h - 1)
	if x < lower {
		x += lowbit(x)
	}
	return x
}

// standardSlabAdd walks op's update chain but writes only inside r,
// jumping straight to the worker's slab instead of stepping through
// out-of-range indices.
func standardSlabAdd(bits []int64, r Range, index int, value int64) {
	x := index + 1
	if x < r.Lower {
		x = jumpIntoRange(x, r.Lower)
	}
	for x < r.Upper {
		bits[x] += value
		x += lowbit(x)
	}
}

// treeSum computes the query-chain prefix sum directly against a shared
// backing array. It is safe to call between batches, once every worker's
// batchAdd has returned and the barrier has closed.
func treeSum(bits []int64, i int) int64 {
	var total int64
	for x := i + 1; x > 0; x -= lowbit(x) {
		total += bits[x]
	}
	return total
}

// runModelBatch drives the shared model-parallel execution pattern: adds
// accumulate into a pending run; a query first flushes the pending run
// through applyAdds (a parallel barrier), then reads the now-consistent
// tree directly. This keeps query results correct relative to preceding
// adds in the same batch while still letting consecutive adds run across
// all workers concurrently.
func runModelBatch(run func(job workerpool.Job), applyAdds func(id int, adds []Op), sum func(int) int64, ops Batch) int64 {
	var total int64
	var pending []Op
	flush := func() {
		if len(pending) == 0 {
			return
		}
		adds := pending
		run(func(id int) { applyAdds(id, adds) })
		pending = nil
	}
	for _, op := range ops {
		switch op.Kind {
		case OpAdd:
			pending = append(pending, op)
		case OpQuery:
			flush()
			total += sum(op.Index)
		}
	}
	flush()
	return total
}
