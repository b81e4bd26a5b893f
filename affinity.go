// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package parfenwick

import "github.com/EricTsengTy/parfenwick/internal/affinity"

// pinWorker pins the calling goroutine's OS thread to core id+1, leaving
// core 0 for the driver/dispatcher. Pinning failure is the caller's to log;
// it is never fatal.
func pinWorker(id int) error {
	return affinity.PinToCore(id + 1)
}
