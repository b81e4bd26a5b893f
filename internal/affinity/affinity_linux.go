// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

//go:build linux

package affinity

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// pinToCore locks the calling goroutine to its current OS thread and pins
// that thread to coreID via sched_setaffinity. The goroutine must not have
// already migrated threads for this to take effect reliably, so callers
// invoke it as the first statement of a long-lived worker goroutine.
func pinToCore(coreID int) error {
	runtime.LockOSThread()

	var set unix.CPUSet
	set.Zero()
	set.Set(coreID)
	return unix.SchedSetaffinity(0, &set)
}
