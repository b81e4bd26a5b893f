// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package parfenwick implements a set of concurrent execution engines for a
// Fenwick tree (binary indexed tree) processing a mixed stream of point
// updates and prefix-sum queries. Every engine implements the same Engine
// interface; a driver feeds fixed-size batches of operations to whichever
// engine it selects and, after each batch, compares the engine's
// ValidateSum against a sequential reference.
//
// Two families of engine are provided. Model-parallel engines (FixedEngine,
// SemiStaticEngine, AggregateEngine, LockedEngine) partition one shared
// tree across workers by index range: every worker participates in every
// Add but writes only inside its own slab. Task-parallel engines
// (CentralEngine, LockFreeEngine, PureParallelEngine) instead replicate the
// tree, sharding updates round-robin across private per-worker trees and
// fanning queries out to all of them. LazyEngine takes a third approach: one
// shared atomically-updated tree with reader/writer arbitration, exploiting
// the query-free windows within a batch to parallelize updates without
// per-cell locking.
package parfenwick
