// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package parfenwick

import "log"

// defaultLogger backs every engine when its constructor is passed a nil
// Logger. It writes through the standard library logger, falling back to
// log.Default() when unset.
type defaultLogger struct{}

func (defaultLogger) Infof(format string, args ...interface{}) {
	log.Printf("INFO: "+format, args...)
}

func (defaultLogger) Errorf(format string, args ...interface{}) {
	log.Printf("ERROR: "+format, args...)
}

// DefaultLogger returns the package's default Logger implementation.
func DefaultLogger() Logger { return defaultLogger{} }
