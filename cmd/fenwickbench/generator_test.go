// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"testing"

	"github.com/EricTsengTy/parfenwick"
	"github.com/stretchr/testify/require"
)

func TestGeneratorProducesInRangeOps(t *testing.T) {
	g := newGenerator(16, 0.3, 7)
	batch := g.batch(200)
	require.Len(t, batch, 200)
	for _, op := range batch {
		require.GreaterOrEqual(t, op.Index, 0)
		require.Less(t, op.Index, 16)
		if op.Kind == parfenwick.OpAdd {
			require.Greater(t, op.Value, int64(0))
			require.LessOrEqual(t, op.Value, int64(100))
		}
	}
}

func TestGeneratorIsDeterministicPerSeed(t *testing.T) {
	a := newGenerator(16, 0.3, 42).batch(50)
	b := newGenerator(16, 0.3, 42).batch(50)
	require.Equal(t, a, b)
}

func TestGeneratorQueryRatioExtremes(t *testing.T) {
	allQueries := newGenerator(16, 1.0, 1).batch(50)
	for _, op := range allQueries {
		require.Equal(t, parfenwick.OpQuery, op.Kind)
	}
	allAdds := newGenerator(16, 0.0, 1).batch(50)
	for _, op := range allAdds {
		require.Equal(t, parfenwick.OpAdd, op.Kind)
	}
}
