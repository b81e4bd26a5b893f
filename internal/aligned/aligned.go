// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package aligned provides cache-line-aware allocation helpers used by the
// concurrent Fenwick engines to keep independently-written cells apart from
// each other in memory.
package aligned

import (
	"fmt"
	"unsafe"
)

// CacheLine is the assumed processor cache line size in bytes. Cells shared
// across worker goroutines are padded to this size to avoid coherence
// traffic between unrelated writers (false sharing).
const CacheLine = 64

// ByteSlice allocates a new byte slice of length n, ensuring the address of the
// beginning of the slice is word aligned. Go does not guarantee that a simple
// make([]byte, n) is aligned. In practice it often is, especially for larger n,
// but small n can often be misaligned.
func ByteSlice(n int) []byte {
	a := make([]uint64, (n+7)/8)
	b := unsafe.Slice((*byte)(unsafe.Pointer(&a[0])), n)

	// Verify alignment.
	ptr := uintptr(unsafe.Pointer(&b[0]))
	if ptr%unsafe.Sizeof(int(0)) != 0 {
		panic(fmt.Sprintf("allocated []uint64 slice not %d-aligned: pointer %p", unsafe.Sizeof(int(0)), &b[0]))
	}
	return b
}

// Int64Slice allocates a new int64 slice of length n whose backing array
// starts on a word boundary, the same guarantee ByteSlice provides for
// bytes. It backs the shared Fenwick array so a worker's slab always begins
// at a predictable offset when reasoning about which cache lines a
// neighboring worker's slab might overlap.
func Int64Slice(n int) []int64 {
	b := ByteSlice(n * 8)
	return unsafe.Slice((*int64)(unsafe.Pointer(&b[0])), n)
}
