// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

//go:build !linux

package affinity

import "github.com/cockroachdb/errors"

// pinToCore is a no-op on platforms without a Go-accessible affinity
// syscall. It always reports failure so the caller's best-effort handling
// path runs uniformly across platforms.
func pinToCore(coreID int) error {
	return errors.Newf("affinity: pinning to core %d unsupported on this platform", coreID)
}
