// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cellmesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestMeshInit01(tst *testing.T) {

	chk.PrintTitle("mesh init01: unit cube")

	m := New(false)
	m.Init(-0.5, 0.5, -0.5, 0.5, -0.5, 0.5)

	if err := m.Audit(); err != nil {
		tst.Errorf("audit failed right after Init: %v", err)
	}

	chk.Float64(tst, "volume", 1e-15, m.Volume(), 1)

	cx, cy, cz := m.Centroid()
	chk.Float64(tst, "centroid.x", 1e-15, cx, 0)
	chk.Float64(tst, "centroid.y", 1e-15, cy, 0)
	chk.Float64(tst, "centroid.z", 1e-15, cz, 0)

	areas := m.FaceAreas()
	if len(areas) != 6 {
		tst.Fatalf("expected 6 faces, got %d", len(areas))
	}
	for _, a := range areas {
		chk.Float64(tst, "face area", 1e-15, a, 1)
	}

	orders := m.FaceOrders()
	for _, o := range orders {
		if o != 4 {
			tst.Errorf("expected quadrilateral face, got order %d", o)
		}
	}
}

func TestMeshCut01(tst *testing.T) {

	chk.PrintTitle("mesh cut01: single bisecting plane")

	m := New(true)
	m.Init(-1, 1, -1, 1, -1, 1)

	// cut off the half with x > 0, keeping x <= 0.
	survived := m.Cut(1, 0, 0, 0, 42)
	if !survived {
		tst.Fatal("cell should have survived a bisecting cut")
	}
	if err := m.Audit(); err != nil {
		tst.Errorf("audit failed after Cut: %v", err)
	}

	chk.Float64(tst, "volume after bisecting cut", 1e-13, m.Volume(), 4)

	orders := m.FaceOrders()
	if len(orders) != 6 {
		tst.Fatalf("expected 6 faces after bisecting a box, got %d", len(orders))
	}

	neighbors := m.Neighbors()
	var sawNewFace bool
	for _, tg := range neighbors {
		if tg == 42 {
			sawNewFace = true
		}
	}
	if !sawNewFace {
		tst.Error("expected one face tagged with the cutting neighbor's id")
	}
}

func TestMeshCutNoOp(tst *testing.T) {

	chk.PrintTitle("mesh cut02: plane entirely outside the cell is a no-op")

	m := New(false)
	m.Init(-1, 1, -1, 1, -1, 1)

	survived := m.Cut(1, 0, 0, 10, 7)
	if !survived {
		tst.Fatal("cell should survive a cut whose plane does not intersect it")
	}
	chk.Float64(tst, "volume unchanged", 1e-15, m.Volume(), 8)
}

func TestMeshCutAnnihilate(tst *testing.T) {

	chk.PrintTitle("mesh cut03: plane on the origin's side annihilates the cell")

	m := New(false)
	m.Init(-1, 1, -1, 1, -1, 1)

	survived := m.Cut(1, 0, 0, -10, 7)
	if survived {
		tst.Fatal("cell should not survive a cut that excludes the origin")
	}
	if m.NV() != 0 {
		tst.Errorf("expected an annihilated cell to have zero vertices, got %d", m.NV())
	}
}
