// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package parfenwick

// Engine is the surface every execution strategy implements. A driver
// selects one, feeds it fixed-size batches, and after each Sync compares
// ValidateSum against a sequential reference over the same operations.
type Engine interface {
	// Init clears per-batch state (the accumulated query total or the result
	// vector). It must be called before submitting a new batch.
	Init()
	// Submit hands the engine a batch to process. Depending on the
	// strategy this may complete synchronously (model-parallel) or merely
	// enqueue work that Sync later drains (task-parallel).
	Submit(batch Batch)
	// Sync blocks until every operation submitted since the last Init has
	// been applied.
	Sync()
	// ValidateSum returns the sum of every query's result in the batch,
	// for comparison against a sequential reference.
	ValidateSum() int64
	// Shutdown releases the engine's worker goroutines. The engine must
	// not be used afterward.
	Shutdown()
}

// Logger is the minimal logging surface engines use for non-fatal
// diagnostics, such as a failed best-effort core pin: a couple of
// Printf-shaped methods rather than a full structured-logging dependency.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}
