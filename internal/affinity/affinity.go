// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package affinity provides a best-effort thread-pinning primitive. Pinning
// is platform-specific; the Linux implementation uses
// sched_setaffinity, and every other platform gets a no-op that reports
// failure so callers apply the same "logged, non-fatal" handling uniformly.
package affinity

// PinToCore attempts to pin the calling OS thread to the given core id.
// Failure is expected to be non-fatal: callers log it and continue running
// unpinned.
func PinToCore(coreID int) error {
	return pinToCore(coreID)
}
