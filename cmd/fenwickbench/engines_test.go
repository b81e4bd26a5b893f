// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildEngineKnownStrategies(t *testing.T) {
	for _, name := range strategies {
		e, err := buildEngine(name, 64, 4, 256, nil)
		require.NoError(t, err, name)
		require.NotNil(t, e, name)
		e.Shutdown()
	}
}

func TestBuildEngineUnknownStrategy(t *testing.T) {
	_, err := buildEngine("bogus", 64, 4, 256, nil)
	require.Error(t, err)
}
