// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package fwerrors provides the invariant-violation error type shared by
// every engine. Per the error taxonomy, an invariant violation (bad tree
// size, incomplete partition coverage, a full bounded queue) is a
// programmer error: it is never retried and is not recoverable, so callers
// are expected to panic with it rather than propagate it up a return value.
package fwerrors

import "github.com/cockroachdb/errors"

// InvariantError wraps an internal constraint violation detected by an
// engine at construction or during a batch.
type InvariantError struct {
	Err error
}

// Unwrap returns the descriptive error that describes the constraint that
// got violated.
func (i InvariantError) Unwrap() error {
	return i.Err
}

func (i InvariantError) Error() string {
	return i.Err.Error()
}

// Invariant builds an InvariantError from a format string, matching the
// AssertionFailedf convention used elsewhere for internal-only failures.
func Invariant(format string, args ...interface{}) InvariantError {
	return InvariantError{Err: errors.AssertionFailedf(format, args...)}
}

// Poisoned builds the value a task-parallel Sync or a workerpool Run panics
// with when a worker goroutine panicked mid-batch and the engine can no
// longer guarantee it will drain.
func Poisoned(workerID int, cause interface{}) InvariantError {
	return InvariantError{Err: errors.AssertionFailedf("worker %d poisoned: %v", workerID, cause)}
}
