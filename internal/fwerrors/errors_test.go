// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package fwerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvariantFormats(t *testing.T) {
	err := Invariant("bad size %d", 42)
	require.Contains(t, err.Error(), "42")
}

func TestPoisonedFormats(t *testing.T) {
	err := Poisoned(3, "boom")
	require.Contains(t, err.Error(), "3")
	require.Contains(t, err.Error(), "boom")
}

func TestInvariantErrorUnwraps(t *testing.T) {
	err := Invariant("broken")
	require.NotNil(t, errors.Unwrap(err))
}
