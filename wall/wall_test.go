// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wall

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestPlaneCut01(tst *testing.T) {

	chk.PrintTitle("wall plane01: axis-aligned bounding plane")

	w := &Plane{Nx: 1, Ny: 0, Nz: 0, R: 5, ID: 0}

	if !w.PointInside(4, 0, 0) {
		tst.Error("point at x=4 should be inside x<=5")
	}
	if w.PointInside(6, 0, 0) {
		tst.Error("point at x=6 should be outside x<=5")
	}

	nx, ny, nz, r, ok := w.Cut(2, 0, 0, 100)
	if !ok {
		tst.Fatal("plane should always report ok=true")
	}
	chk.Float64(tst, "nx", 1e-15, nx, 1)
	chk.Float64(tst, "ny", 1e-15, ny, 0)
	chk.Float64(tst, "nz", 1e-15, nz, 0)
	chk.Float64(tst, "r (local frame)", 1e-15, r, 3)

	if tag := w.Tag(); tag >= 0 {
		tst.Errorf("wall tags must be negative, got %d", tag)
	}
}

func TestListApply(tst *testing.T) {

	chk.PrintTitle("wall list01: List.Apply stops early once annihilated")

	var l List
	l.Add(&Plane{Nx: 1, Ny: 0, Nz: 0, R: 0, ID: 0})
	l.Add(&Plane{Nx: 0, Ny: 1, Nz: 0, R: 0, ID: 1})

	rec := &recordingCutter{survive: false}
	ok := l.Apply(rec, 1, 0, 0, 100)
	if ok {
		tst.Error("List.Apply should report false once a wall annihilates the cell")
	}
	if rec.calls != 1 {
		tst.Errorf("expected exactly 1 cut call, got %d", rec.calls)
	}
}

type recordingCutter struct {
	calls   int
	survive bool
}

func (r *recordingCutter) Cut(nx, ny, nz, rr float64, tag int) bool {
	r.calls++
	return r.survive
}
