// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package aligned

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestByteSliceAligned(t *testing.T) {
	b := ByteSlice(100)
	require.Len(t, b, 100)
	require.Zero(t, uintptr(unsafe.Pointer(&b[0]))%unsafe.Sizeof(int(0)))
}

func TestInt64SliceAligned(t *testing.T) {
	s := Int64Slice(17)
	require.Len(t, s, 17)
	for i := range s {
		require.Zero(t, s[i])
	}
	s[5] = 42
	require.EqualValues(t, 42, s[5])
}

func TestPaddedCounter(t *testing.T) {
	var c PaddedCounter
	require.EqualValues(t, 0, c.Load())
	require.EqualValues(t, 5, c.Add(5))
	require.EqualValues(t, 3, c.Add(-2))
	c.Store(100)
	require.EqualValues(t, 100, c.Load())
}

// TestPaddedCounterSize checks the struct is padded out to a full cache
// line, so adjacent counters in a slice never share a line.
func TestPaddedCounterSize(t *testing.T) {
	require.EqualValues(t, CacheLine, unsafe.Sizeof(PaddedCounter{}))
}
