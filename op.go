// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package parfenwick

// OpKind distinguishes a point update from a prefix-sum query.
type OpKind int

const (
	// OpAdd adds Value to position Index.
	OpAdd OpKind = iota
	// OpQuery reads the prefix sum of positions [0, Index].
	OpQuery
)

func (k OpKind) String() string {
	switch k {
	case OpAdd:
		return "add"
	case OpQuery:
		return "query"
	default:
		return "unknown"
	}
}

// Op is a single point-update or prefix-sum-query request against a tree of
// size N. Index is always in [0, N). Value is meaningful only for OpAdd.
type Op struct {
	Kind  OpKind
	Index int
	Value int64
}

// Add builds an Add operation.
func Add(index int, value int64) Op { return Op{Kind: OpAdd, Index: index, Value: value} }

// Query builds a Query operation.
func Query(index int) Op { return Op{Kind: OpQuery, Index: index} }

// Batch is an ordered, fixed-length run of operations. Batch boundaries are
// the only ordering barrier the engines expose to a driver.
type Batch []Op
