// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package workerpool

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

type testLogger struct{ errs atomic.Int32 }

func (l *testLogger) Errorf(format string, args ...interface{}) { l.errs.Add(1) }

func TestPoolRunIsBarrier(t *testing.T) {
	p := New(4, &testLogger{})
	defer p.Shutdown()

	var counters [4]atomic.Int64
	for i := 0; i < 10; i++ {
		p.Run(func(id int) { counters[id].Add(1) })
	}
	for id := range counters {
		require.EqualValues(t, 10, counters[id].Load(), "worker %d", id)
	}
}

func TestPoolN(t *testing.T) {
	p := New(3, &testLogger{})
	defer p.Shutdown()
	require.Equal(t, 3, p.N())
}

func TestPoolInvalidSizePanics(t *testing.T) {
	require.Panics(t, func() { New(0, &testLogger{}) })
	require.Panics(t, func() { New(-1, &testLogger{}) })
}

// TestPoolPoisonPropagates checks that a panicking job poisons the pool so
// that both the triggering Run call and every subsequent one panic instead
// of hanging, matching the "never block sync() forever" requirement.
func TestPoolPoisonPropagates(t *testing.T) {
	p := New(2, &testLogger{})
	defer p.Shutdown()

	require.Panics(t, func() {
		p.Run(func(id int) {
			if id == 1 {
				panic("boom")
			}
		})
	})
	require.Panics(t, func() {
		p.Run(func(id int) {})
	})
}
