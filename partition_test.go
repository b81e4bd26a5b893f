// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package parfenwick

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

// TestPartitionCoverage checks that for every (N, W) with 1 <= W <= N, the
// planner's intervals disjointly tile [1, N+1).
func TestPartitionCoverage(t *testing.T) {
	for n := 1; n <= 40; n++ {
		for w := 1; w <= n; w++ {
			for _, align := range []bool{false, true} {
				p := PlanPartition(n, w, align)
				require.Truef(t, p.CoversFully(n), "n=%d w=%d align=%v partition=%+v", n, w, align, p)
			}
		}
	}
}

// TestPartitionSingleCell covers the N=1 boundary: one interval [1,2), and
// every other worker gets an empty interval that must not error.
func TestPartitionSingleCell(t *testing.T) {
	p := PlanPartition(1, 4, false)
	require.Equal(t, Range{1, 2}, p[len(p)-1])
	for _, r := range p[:len(p)-1] {
		require.Equal(t, 0, r.Len())
	}
	require.True(t, p.CoversFully(1))
}

// TestPartitionBalance checks that for N=15, W=4, the four intervals'
// access-weight totals differ by at most max(dp).
func TestPartitionBalance(t *testing.T) {
	n, w := 15, 4
	dp := AccessWeights(n)
	var maxDp int64
	for _, d := range dp {
		if d > maxDp {
			maxDp = d
		}
	}
	p := PlanPartition(n, w, false)
	require.True(t, p.CoversFully(n))

	var totals []int64
	for i := range p {
		totals = append(totals, p.AccessTotal(dp, i))
	}
	for i := range totals {
		for j := range totals {
			diff := totals[i] - totals[j]
			if diff < 0 {
				diff = -diff
			}
			require.LessOrEqualf(t, diff, maxDp, "totals=%v maxDp=%d", totals, maxDp)
		}
	}
}

// TestPartitionAlignment checks the fixed variant's cache-line alignment
// pass: every boundary but the last lands on a multiple of 64 (or at the
// array end, for small trees where alignment would overshoot).
func TestPartitionAlignment(t *testing.T) {
	p := PlanPartition(1000, 4, true)
	for i := 0; i < len(p)-1; i++ {
		require.Zerof(t, p[i].Upper%64, "worker %d upper=%d not 64-aligned", i, p[i].Upper)
	}
}

// TestPartitionDataDriven exercises PlanPartition against fixture files
// under testdata/partition: each command specifies n, w and align, and the
// expected output is the printed partition.
func TestPartitionDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata/partition", func(t *testing.T, path string) {
		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			switch d.Cmd {
			case "plan":
				var n, w int
				align := false
				d.ScanArgs(t, "n", &n)
				d.ScanArgs(t, "w", &w)
				if d.HasArg("align") {
					d.ScanArgs(t, "align", &align)
				}
				p := PlanPartition(n, w, align)
				out := ""
				for i, r := range p {
					out += fmt.Sprintf("%d: [%d, %d)\n", i, r.Lower, r.Upper)
				}
				return out
			default:
				t.Fatalf("unknown command %s", d.Cmd)
				return ""
			}
		})
	})
}
