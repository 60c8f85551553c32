// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package compute implements the cell compute driver (CCD): the main loop
// that, given a source particle and a particle grid, drives a cell mesh
// through successive cuts against ever-more-distant candidate neighbors
// until the radius-ordered worklist proves no closer cut remains possible.
package compute

import (
	"github.com/cpmech/gosl/chk"

	"github.com/PeterZs/voro/cellmesh"
	"github.com/PeterZs/voro/grid"
	"github.com/PeterZs/voro/wall"
)

// Source describes the particle a cell is being built around, in absolute
// coordinates, and its box indices in the grid.
type Source struct {
	ID               int
	X, Y, Z, R       float64
	IX, IY, IZ       int
}

// Driver owns the scratch state of one in-progress cell construction: a
// reusable mesh and a reusable worklist, so repeated calls to Compute do
// not reallocate. A Driver is single-writer: concurrent cell construction
// uses one Driver per goroutine (see voro.Container.ComputeAllConcurrent).
type Driver struct {
	Mesh     *cellmesh.Mesh
	WorkList *grid.WorkList
	Radical  bool // power/radical (weighted) diagram variant
}

// New creates a Driver. trackNeighbors is forwarded to the underlying
// cellmesh.Mesh. The cell's initial bounding box is derived fresh for
// every source particle from the grid's own bounds (see Compute), so the
// driver itself carries no container-extent state.
func New(trackNeighbors, radical bool) *Driver {
	return &Driver{
		Mesh:    cellmesh.New(trackNeighbors),
		Radical: radical,
	}
}

// Compute builds the Voronoi (or, if Radical, power/radical) cell of src
// against every other particle stored in g and every wall in walls. It
// returns ok=false if the cell was annihilated entirely (e.g. by a wall),
// which is a valid outcome, not an error.
func (d *Driver) Compute(src Source, g *grid.Grid, walls *wall.List) (ok bool) {
	x1, x2 := axisBounds(g.Xmin, g.Xmax, src.X, g.PeriodicX)
	y1, y2 := axisBounds(g.Ymin, g.Ymax, src.Y, g.PeriodicY)
	z1, z2 := axisBounds(g.Zmin, g.Zmax, src.Z, g.PeriodicZ)
	d.Mesh.Init(x1, x2, y1, y2, z1, z2)

	if walls != nil && walls.Len() > 0 {
		if !walls.Apply(d.Mesh, src.X, src.Y, src.Z, d.Mesh.MaxRadiusSquared()) {
			return false
		}
	}

	rMul := 1.0
	if d.Radical {
		rMul = searchBoundMultiplier(src.R, g.MaxRadius)
	}

	if d.WorkList == nil {
		d.WorkList = &grid.WorkList{}
	}
	if d.WorkList.Sx != g.Sx || d.WorkList.Sy != g.Sy || d.WorkList.Sz != g.Sz {
		shells := maxInt(g.Nx, maxInt(g.Ny, g.Nz)) + 1
		d.WorkList.Build(g.Sx, g.Sy, g.Sz, shells)
	}

	for _, off := range d.WorkList.Offsets() {
		if d.Mesh.NV() == 0 {
			return false
		}
		// a neighbor at distance D cuts at D/2 (unweighted), so it can only
		// reach a vertex within sqrt(maxR2) of the source if D^2 < 4*maxR2.
		maxR2 := d.Mesh.MaxRadiusSquared()
		if rMul*off.MinDist2 > 4*maxR2 {
			break
		}
		jx, jy, jz, wrapped, inRange := wrapBox(src.IX+off.Dx, src.IY+off.Dy, src.IZ+off.Dz, g)
		if !inRange {
			continue
		}
		n := g.NumParticles(jx, jy, jz)
		for k := 0; k < n; k++ {
			id, px, py, pz, pr := g.Particle(jx, jy, jz, k)
			if id == src.ID {
				continue
			}
			if wrapped {
				px, py, pz = rewrap(px, py, pz, src, g)
			}
			d.step(src, id, px, py, pz, pr)
			if d.Mesh.NV() == 0 {
				return false
			}
		}
	}
	return true
}

// step cuts the cell against one candidate neighbor, deriving the plane
// from the unweighted Voronoi bisector or, when Radical is set, the power
// diagram's radical-plane offset.
func (d *Driver) step(src Source, neighborID int, px, py, pz, pr float64) {
	dx, dy, dz := px-src.X, py-src.Y, pz-src.Z
	d2 := dx*dx + dy*dy + dz*dz
	if d2 <= 0 {
		chk.Panic("compute: neighbor %d coincides with source particle %d", neighborID, src.ID)
	}
	half := d2 / 2
	if d.Radical {
		half += (src.R*src.R - pr*pr) / 2
	}
	d.Mesh.Cut(dx, dy, dz, half, neighborID)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// axisBounds derives the local-frame half-extent CM is pre-initialized to
// along one axis: for a non-periodic axis, (lo-source) to (hi-source); for
// a periodic axis, -L/2 to +L/2 where L is the axis length, independent of
// where the source sits in the domain.
func axisBounds(lo, hi, source float64, periodic bool) (float64, float64) {
	if periodic {
		half := (hi - lo) / 2
		return -half, half
	}
	return lo - source, hi - source
}

// searchBoundMultiplier returns the worklist cutoff scaling r_mul for the
// radical/weighted variant, given the source particle's own radius and M,
// the largest radius of any particle in the container: r_mul =
// 1 + (r_s²-M²)/(M+r_s)², which is at most 1. A box offset survives the
// cutoff test when r_mul*MinDist2 <= 4*R, so a distant but large-radius
// candidate is not skipped just because the current mesh has already
// shrunk close in.
func searchBoundMultiplier(rs, m float64) float64 {
	denom := (m + rs) * (m + rs)
	if denom == 0 {
		return 1
	}
	return 1 + (rs*rs-m*m)/denom
}

// wrapBox resolves a candidate box index that may have walked outside
// [0,N) on a periodic axis, wrapping it, or reports inRange=false for a
// non-periodic axis walked out of bounds.
func wrapBox(ix, iy, iz int, g *grid.Grid) (wx, wy, wz int, wrapped, inRange bool) {
	var ok bool
	wx, wrapped, ok = wrapAxis(ix, g.Nx, g.PeriodicX)
	if !ok {
		return 0, 0, 0, false, false
	}
	var w2 bool
	wy, w2, ok = wrapAxis(iy, g.Ny, g.PeriodicY)
	wrapped = wrapped || w2
	if !ok {
		return 0, 0, 0, false, false
	}
	var w3 bool
	wz, w3, ok = wrapAxis(iz, g.Nz, g.PeriodicZ)
	wrapped = wrapped || w3
	if !ok {
		return 0, 0, 0, false, false
	}
	return wx, wy, wz, wrapped, true
}

func wrapAxis(i, n int, periodic bool) (wrapped int, didWrap bool, inRange bool) {
	if i >= 0 && i < n {
		return i, false, true
	}
	if !periodic {
		return 0, false, false
	}
	m := i % n
	if m < 0 {
		m += n
	}
	return m, true, true
}

// rewrap shifts a periodic-image neighbor's position by whole domain
// spans so that dx,dy,dz in step() measures the true minimum-image offset
// from the source particle, not the raw stored coordinate.
func rewrap(px, py, pz float64, src Source, g *grid.Grid) (x, y, z float64) {
	x = rewrapAxis(px, src.X, g.Xmin, g.Xmax, g.PeriodicX)
	y = rewrapAxis(py, src.Y, g.Ymin, g.Ymax, g.PeriodicY)
	z = rewrapAxis(pz, src.Z, g.Zmin, g.Zmax, g.PeriodicZ)
	return
}

func rewrapAxis(v, ref, lo, hi float64, periodic bool) float64 {
	if !periodic {
		return v
	}
	span := hi - lo
	for v-ref > span/2 {
		v -= span
	}
	for v-ref < -span/2 {
		v += span
	}
	return v
}
