// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestSetMustRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewSet("fixed")
	require.NotPanics(t, func() { s.MustRegister(reg) })

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 5)
}

// TestSetLabelsDistinguishStrategies checks that two engines' metric sets
// carry distinct strategy labels so they can coexist in one registry without
// colliding on collector identity.
func TestSetLabelsDistinguishStrategies(t *testing.T) {
	reg := prometheus.NewRegistry()
	fixed := NewSet("fixed")
	locked := NewSet("lock")
	fixed.MustRegister(reg)
	require.NotPanics(t, func() { locked.MustRegister(reg) })
}
