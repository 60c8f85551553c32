// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestGridPut01(tst *testing.T) {

	chk.PrintTitle("grid put01: non-periodic unit cube, 2x2x2 boxes")

	var g Grid
	g.Init(0, 1, 0, 1, 0, 1, 2, 2, 2, false, false, false)

	if err := g.Put(0, 0.1, 0.1, 0.1, 0); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if err := g.Put(1, 0.9, 0.9, 0.9, 0); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	// the container's own upper face must be inclusive.
	if err := g.Put(2, 1.0, 1.0, 1.0, 0); err != nil {
		tst.Fatalf("upper-face point should be accepted, got: %v", err)
	}

	if n := g.NumParticles(0, 0, 0); n != 1 {
		tst.Errorf("expected 1 particle in box (0,0,0), got %d", n)
	}
	if n := g.NumParticles(1, 1, 1); n != 2 {
		tst.Errorf("expected 2 particles in box (1,1,1) (0.9 and the closed upper face), got %d", n)
	}

	err := g.Put(3, 1.5, 0.5, 0.5, 0)
	if err != ErrOutOfDomain {
		tst.Errorf("expected ErrOutOfDomain for an out-of-range x, got %v", err)
	}

	if total := g.Total(); total != 3 {
		tst.Errorf("expected 3 stored particles, got %d", total)
	}
}

func TestGridPutPeriodic(tst *testing.T) {

	chk.PrintTitle("grid put02: periodic in x wraps instead of rejecting")

	var g Grid
	g.Init(0, 1, 0, 1, 0, 1, 4, 4, 4, true, false, false)

	if err := g.Put(0, 1.25, 0.1, 0.1, 0); err != nil {
		tst.Fatalf("periodic x should wrap, got error: %v", err)
	}
	ix, _, _, ok := g.BoxOf(1.25, 0.1, 0.1)
	if !ok {
		tst.Fatal("periodic point should always resolve to a box")
	}
	ixWrapped, _, _, _ := g.BoxOf(0.25, 0.1, 0.1)
	if ix != ixWrapped {
		tst.Errorf("periodic wrap mismatch: box(1.25)=%d, box(0.25)=%d", ix, ixWrapped)
	}
}

func TestWorkListOrdering(tst *testing.T) {

	chk.PrintTitle("worklist01: offsets are ordered by increasing MinDist2")

	var w WorkList
	w.Build(1, 1, 1, 3)

	offs := w.Offsets()
	if len(offs) == 0 {
		tst.Fatal("expected a non-empty offset table")
	}
	if offs[0].Dx != 0 || offs[0].Dy != 0 || offs[0].Dz != 0 {
		tst.Errorf("expected the center box itself first, got %+v", offs[0])
	}
	for i := 1; i < len(offs); i++ {
		if offs[i].MinDist2 < offs[i-1].MinDist2 {
			tst.Fatalf("offsets not sorted at index %d: %+v then %+v", i, offs[i-1], offs[i])
		}
	}
}
