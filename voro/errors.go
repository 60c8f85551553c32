// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voro

import (
	"log"

	"github.com/cpmech/gosl/chk"
)

// logErrCond logs a formatted error using condition (==true) to decide
// whether to report, and returns the error (or nil) — adapted from the
// teacher's inp.LogErrCond, but returning an error instead of a bare bool
// so voro.Import can accumulate per-line failures and still report them to
// its caller rather than aborting the whole import.
func logErrCond(condition bool, msg string, prm ...interface{}) error {
	if !condition {
		return nil
	}
	err := chk.Err(msg, prm...)
	log.Printf("ERROR: %v", err)
	return err
}
