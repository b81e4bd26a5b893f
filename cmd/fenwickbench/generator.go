// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"math/rand"

	"github.com/EricTsengTy/parfenwick"
)

// generator produces a uniform-random mix of add/query operations over a
// tree of a fixed size: a uniform op-type draw against queryRatio, a
// uniform index in [0, size), and a value in [1, 100] for adds.
type generator struct {
	size       int
	queryRatio float64
	rng        *rand.Rand
}

func newGenerator(size int, queryRatio float64, seed int64) *generator {
	return &generator{size: size, queryRatio: queryRatio, rng: rand.New(rand.NewSource(seed))}
}

func (g *generator) next() parfenwick.Op {
	index := g.rng.Intn(g.size)
	if g.rng.Float64() < g.queryRatio {
		return parfenwick.Query(index)
	}
	return parfenwick.Add(index, int64(g.rng.Intn(100)+1))
}

func (g *generator) batch(n int) parfenwick.Batch {
	b := make(parfenwick.Batch, n)
	for i := range b {
		b[i] = g.next()
	}
	return b
}
