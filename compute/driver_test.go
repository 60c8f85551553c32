// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compute

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/PeterZs/voro/grid"
)

func TestComputeTwoParticles(tst *testing.T) {

	chk.PrintTitle("compute01: two particles split the domain at the midplane")

	var g grid.Grid
	g.Init(-10, 10, -10, 10, -10, 10, 4, 4, 4, false, false, false)

	if err := g.Put(0, -1, 0, 0, 0); err != nil {
		tst.Fatal(err)
	}
	if err := g.Put(1, 1, 0, 0, 0); err != nil {
		tst.Fatal(err)
	}

	d := New(false, false)

	ix, iy, iz, ok := g.BoxOf(-1, 0, 0)
	if !ok {
		tst.Fatal("source particle must resolve to a box")
	}
	src := Source{ID: 0, X: -1, Y: 0, Z: 0, IX: ix, IY: iy, IZ: iz}

	if !d.Compute(src, &g, nil) {
		tst.Fatal("cell should survive with only one cutting neighbor")
	}

	// pre-initialization gives local x in [Xmin-source.X, Xmax-source.X] =
	// [-9,11], y and z in [-10,10]. The cut plane sits at absolute x=0,
	// i.e. local x=1 (one unit from the source particle at x=-1): the
	// retained slab runs from local x=-9 to x=1, thickness 10.
	chk.Float64(tst, "volume of half-space slab clipped to the initial box", 1e-9, d.Mesh.Volume(), 20*20*10)
}

func TestComputePeriodic(tst *testing.T) {

	chk.PrintTitle("compute02: periodic axis wraps the nearest neighbor across the boundary")

	var g grid.Grid
	g.Init(0, 10, 0, 10, 0, 10, 4, 4, 4, true, false, false)

	if err := g.Put(0, 0.5, 5, 5, 0); err != nil {
		tst.Fatal(err)
	}
	if err := g.Put(1, 9.5, 5, 5, 0); err != nil {
		tst.Fatal(err)
	}

	d := New(false, false)

	ix, iy, iz, ok := g.BoxOf(0.5, 5, 5)
	if !ok {
		tst.Fatal("source particle must resolve to a box")
	}
	src := Source{ID: 0, X: 0.5, Y: 5, Z: 5, IX: ix, IY: iy, IZ: iz}

	if !d.Compute(src, &g, nil) {
		tst.Fatal("cell should survive with one periodic neighbor")
	}

	// particle 1 at x=9.5 is 1 unit from the source across the periodic
	// boundary (nearer than the 9-unit direct distance), and also 9 units
	// away through its own direct, unwrapped image; both bisectors bound
	// the source's cell: local x in [-0.5, 4.5], width 5. y and z are
	// non-periodic and uncut (both particles share y=z=5), width 10 each.
	chk.Float64(tst, "periodic cell volume", 1e-9, d.Mesh.Volume(), 5*10*10)
}

func TestComputeRadical(tst *testing.T) {

	chk.PrintTitle("compute03: radical (power) diagram scales the bisector by particle radii")

	var g grid.Grid
	g.Init(-10, 10, -10, 10, -10, 10, 4, 4, 4, false, false, false)

	if err := g.Put(0, -1, 0, 0, 1); err != nil {
		tst.Fatal(err)
	}
	if err := g.Put(1, 1, 0, 0, 2); err != nil {
		tst.Fatal(err)
	}

	d := New(false, true)

	ix, iy, iz, ok := g.BoxOf(-1, 0, 0)
	if !ok {
		tst.Fatal("source particle must resolve to a box")
	}
	src := Source{ID: 0, X: -1, Y: 0, Z: 0, R: 1, IX: ix, IY: iy, IZ: iz}

	if !d.Compute(src, &g, nil) {
		tst.Fatal("cell should survive with only one cutting neighbor")
	}

	// dx=2, d2=4; rs_eff = d2 + r_s^2 - r_t^2 = 4+1-4 = 1; half = 0.5.
	// the radical plane is 2*vx <= 0.5, i.e. vx <= 0.25, pulled toward the
	// source relative to the unweighted midpoint (vx<=1) because the
	// neighbor's radius exceeds the source's. Retained local x in
	// [-9, 0.25], width 9.25, inside the 20x20 cross-section.
	chk.Float64(tst, "radical cell volume", 1e-9, d.Mesh.Volume(), 20*20*9.25)

	if got, want := g.MaxRadius, 2.0; got != want {
		tst.Errorf("expected grid MaxRadius to track the largest radius put (%g), got %g", want, got)
	}
}

func TestSearchBoundMultiplier(tst *testing.T) {

	chk.PrintTitle("compute04: searchBoundMultiplier matches the documented formula")

	rs, m := 1.0, 2.0
	want := 1 + (rs*rs-m*m)/((m+rs)*(m+rs))
	chk.Float64(tst, "r_mul", 1e-15, searchBoundMultiplier(rs, m), want)

	chk.Float64(tst, "r_mul with equal radii", 1e-15, searchBoundMultiplier(3, 3), 1)
	chk.Float64(tst, "r_mul with no particles", 1e-15, searchBoundMultiplier(0, 0), 1)
}
