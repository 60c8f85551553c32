// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package voro binds the particle grid, wall list and cell compute driver
// into a single container, and exposes particle import and the public
// traversal API over computed cells.
package voro

import "github.com/cpmech/gosl/chk"

// Options configures a Container. Fields mirror the container geometry and
// particle-store parameters of the cell construction kernel.
type Options struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
	Zmin, Zmax float64

	Nx, Ny, Nz int

	PeriodicX, PeriodicY, PeriodicZ bool

	// InitMem is the initial per-box particle capacity hint. Validate
	// rejects a negative value; otherwise it is not used: boxes start
	// empty and grow on demand whatever InitMem is.
	InitMem int

	// Stride is the number of numeric fields per import record after the
	// id: 3 for plain Voronoi (id x y z), 4 to also read a per-particle
	// radius for the power/radical diagram variant (id x y z r).
	Stride int

	// Radical selects the power (radical) diagram variant: cuts use the
	// weighted bisector r_s²-r_t² offset rather than the plain midpoint.
	Radical bool

	// TrackNeighbors enables the neighbor-id sidecar on every computed
	// cell's mesh, at the cost of extra bookkeeping during every cut.
	TrackNeighbors bool
}

// Validate panics (via chk.Panic) on a malformed configuration: this is a
// caller mistake, not a runtime condition, the same way the teacher treats
// a malformed simulation file as fatal at startup.
func (o *Options) Validate() {
	if o.Xmax <= o.Xmin || o.Ymax <= o.Ymin || o.Zmax <= o.Zmin {
		chk.Panic("voro: Options bounds must be strictly increasing; got [%g,%g]x[%g,%g]x[%g,%g]", o.Xmin, o.Xmax, o.Ymin, o.Ymax, o.Zmin, o.Zmax)
	}
	if o.Nx < 1 || o.Ny < 1 || o.Nz < 1 {
		chk.Panic("voro: Options grid dimensions must be >= 1; got %d,%d,%d", o.Nx, o.Ny, o.Nz)
	}
	if o.Stride != 3 && o.Stride != 4 {
		chk.Panic("voro: Options.Stride must be 3 or 4; got %d", o.Stride)
	}
	if o.Stride == 3 && o.Radical {
		chk.Panic("voro: Options.Radical requires Stride==4 so a per-particle radius can be read")
	}
	if o.InitMem < 0 {
		chk.Panic("voro: Options.InitMem must be >= 0; got %d", o.InitMem)
	}
}
