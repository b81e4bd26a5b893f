// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package parfenwick

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequentialTreeScenarios(t *testing.T) {
	// Scenario 1: a(0,5), a(3,7), q(7) -> sum(7) = 12.
	tr := NewSequentialTree(8)
	tr.Add(0, 5)
	tr.Add(3, 7)
	require.EqualValues(t, 12, tr.Sum(7))

	// Scenario 2: a(2,3), a(5,4), a(5,2), q(4), q(7) -> 3, 9; total 12.
	tr = NewSequentialTree(8)
	tr.Add(2, 3)
	tr.Add(5, 4)
	tr.Add(5, 2)
	require.EqualValues(t, 3, tr.Sum(4))
	require.EqualValues(t, 9, tr.Sum(7))

	// Scenario 3: a(0,1) x1000, q(0) -> sum(0) = 1000.
	tr = NewSequentialTree(8)
	for i := 0; i < 1000; i++ {
		tr.Add(0, 1)
	}
	require.EqualValues(t, 1000, tr.Sum(0))

	// Scenario 4: q(0), a(0,1), q(0) applied in order -> 0, then 1.
	tr = NewSequentialTree(8)
	require.EqualValues(t, 0, tr.Sum(0))
	tr.Add(0, 1)
	require.EqualValues(t, 1, tr.Sum(0))
}

func TestSequentialTreeBatchAdd(t *testing.T) {
	tr := NewSequentialTree(8)
	tr.BatchAdd(Batch{Add(0, 5), Query(7), Add(3, 7)})
	require.EqualValues(t, 12, tr.Sum(7))
}

func TestSequentialTreeReferenceSum(t *testing.T) {
	tr := NewSequentialTree(8)
	total := tr.ReferenceSum(Batch{Query(0), Add(0, 1), Query(0)})
	require.EqualValues(t, 1, total)
}

func TestSequentialTreeOutOfRangePanics(t *testing.T) {
	tr := NewSequentialTree(4)
	require.Panics(t, func() { tr.Add(-1, 1) })
	require.Panics(t, func() { tr.Add(4, 1) })
	require.Panics(t, func() { tr.Sum(4) })
}

func TestLowbit(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 6: 2, 8: 8, 12: 4}
	for x, want := range cases {
		require.Equal(t, want, lowbit(x), "lowbit(%d)", x)
	}
}
