// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"

	"github.com/EricTsengTy/parfenwick"
)

// strategies lists every engine name accepted by --strategy, in the order
// --compare reports them.
var strategies = []string{
	"fixed", "semi-static", "aggregate", "lock",
	"central", "lockfree", "pure", "lazy",
}

// buildEngine constructs the named strategy over a tree of size n with w
// workers. queueCap only matters for "lockfree".
func buildEngine(name string, n, w, queueCap int, logger parfenwick.Logger) (parfenwick.Engine, error) {
	switch name {
	case "fixed":
		return parfenwick.NewFixedEngine(n, w, logger), nil
	case "semi-static":
		return parfenwick.NewSemiStaticEngine(n, w, logger), nil
	case "aggregate":
		return parfenwick.NewAggregateEngine(n, w, logger), nil
	case "lock":
		return parfenwick.NewLockedEngine(n, w, logger), nil
	case "central":
		return parfenwick.NewCentralEngine(n, w, logger), nil
	case "lockfree":
		return parfenwick.NewLockFreeEngine(n, w, queueCap, logger), nil
	case "pure":
		return parfenwick.NewPureParallelEngine(n, w, logger), nil
	case "lazy":
		return parfenwick.NewLazyEngine(n, w, logger), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want one of %v)", name, strategies)
	}
}
