// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package parfenwick

import (
	"github.com/EricTsengTy/parfenwick/internal/aligned"
	"github.com/EricTsengTy/parfenwick/internal/fwerrors"
)

// Range is a worker's half-open interval of 1-indexed cells in the shared
// Fenwick array, [Lower, Upper).
type Range struct {
	Lower, Upper int
}

// Len reports the number of cells in the interval.
func (r Range) Len() int { return r.Upper - r.Lower }

// Contains reports whether x falls in [Lower, Upper).
func (r Range) Contains(x int) bool { return x >= r.Lower && x < r.Upper }

// Partition is an ordered sequence of disjoint half-open intervals tiling
// [1, N+1). Partition[w] is worker w's slab.
type Partition []Range

// AccessWeights computes dp[1..n], the number of update chains that touch
// each index when Add(k, ...) is issued for any k in [0, n). It uses the
// forward recurrence dp[i] += 1; dp[i+lowbit(i)] += dp[i].
func AccessWeights(n int) []int64 {
	return accessWeights(n)
}

func accessWeights(n int) []int64 {
	dp := make([]int64, n+1)
	for x := 1; x <= n; x++ {
		dp[x]++
		next := x + lowbit(x)
		if next <= n {
			dp[next] += dp[x]
		}
	}
	return dp
}

func absInt64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// PlanPartition computes a load-balanced partition of [1, N+1) across w
// workers, weighting by Fenwick update-path access frequency rather than
// raw index count so that each worker performs roughly the same number of
// array writes per batch. When align is true (the fixed model-parallel
// variant), every boundary but the last is rounded up to the next multiple
// of 64 so a worker's slab starts on a cache-line boundary.
func PlanPartition(n, w int, align bool) Partition {
	if w < 1 {
		panic(fwerrors.Invariant("partition: worker count %d must be >= 1", w))
	}
	if n < 0 {
		panic(fwerrors.Invariant("partition: tree size %d must be >= 0", n))
	}

	dp := accessWeights(n)
	var total int64
	for _, d := range dp {
		total += d
	}

	end := n + 1 // [1, n+1) is the valid cell space.
	parts := make(Partition, w)
	cur := 1
	remaining := total
	for i := 0; i < w; i++ {
		parts[i].Lower = cur
		if i == w-1 {
			parts[i].Upper = end
			continue
		}

		workersLeft := int64(w - i)
		target := remaining / workersLeft
		var acc int64
		for cur < end && acc < target {
			acc += dp[cur]
			cur++
		}

		// Tie-break: stepping one index back may land closer to target.
		if cur > parts[i].Lower {
			back := acc - dp[cur-1]
			if absInt64(back-target) < absInt64(acc-target) {
				cur--
				acc = back
			}
		}

		if align {
			for cur < end && cur%aligned.CacheLine != 0 {
				cur++
			}
		}

		parts[i].Upper = cur
		remaining -= acc
	}
	return parts
}

// CoversFully reports whether p's intervals exactly tile [1, n+1) in order,
// with no gaps or overlaps. It is the partition-coverage invariant from the
// engine conformance tests.
func (p Partition) CoversFully(n int) bool {
	if len(p) == 0 {
		return n == 0
	}
	if p[0].Lower != 1 {
		return false
	}
	for i, r := range p {
		if r.Lower > r.Upper {
			return false
		}
		if i > 0 && r.Lower != p[i-1].Upper {
			return false
		}
	}
	return p[len(p)-1].Upper == n+1
}

// AccessTotal sums dp over an interval; used by tests checking that a
// partition's per-worker access-weight totals are within max(dp) of one
// another.
func (p Partition) AccessTotal(dp []int64, w int) int64 {
	var total int64
	for x := p[w].Lower; x < p[w].Upper; x++ {
		total += dp[x]
	}
	return total
}
