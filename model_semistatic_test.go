// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package parfenwick

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSemiStaticEngineConvergesFromSkewedPartition seeds a SemiStaticEngine
// with a partition skewed heavily toward worker 0, then feeds it several
// batches of uniformly distributed adds. Worker 0's slab should shrink back
// toward PlanPartition's balanced split, not grow further: this is the only
// existing property test that would catch a rebalance direction inverted
// from its intended "shrink the slower worker" behavior.
func TestSemiStaticEngineConvergesFromSkewedPartition(t *testing.T) {
	const n = 1 << 14
	const w = 4
	e := NewSemiStaticEngine(n, w, nil)
	defer e.Shutdown()

	e.partition = Partition{
		{Lower: 1, Upper: n - 30},
		{Lower: n - 30, Upper: n - 20},
		{Lower: n - 20, Upper: n - 10},
		{Lower: n - 10, Upper: n + 1},
	}
	initialUpper := e.partition[0].Upper
	balanced := PlanPartition(n, w, false)

	diff := func(a, b int) int {
		if a < b {
			return b - a
		}
		return a - b
	}

	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 30; round++ {
		batch := make(Batch, 2000)
		for i := range batch {
			batch[i] = Add(rng.Intn(n), 1)
		}
		e.Init()
		e.Submit(batch)
		e.Sync()
	}

	require.Less(t, e.partition[0].Upper, initialUpper,
		"worker 0's oversized slab should shrink under repeated rebalancing")
	require.Less(t, diff(e.partition[0].Upper, balanced[0].Upper), diff(initialUpper, balanced[0].Upper),
		"worker 0's boundary should move closer to the balanced planner output, not away from it")
}
