// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements the particle grid (PG): a uniform spatial index
// of computational boxes over the container's bounding domain, plus the
// radius-ordered worklist used to walk boxes outward from a source
// particle during cell construction.
package grid

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// ErrOutOfDomain is returned by Put when a point falls outside the grid's
// bounding domain on a non-periodic axis. It is an ordinary error, not a
// panic: the importer that drives Put must keep going across records.
var ErrOutOfDomain = chk.Err("grid: point lies outside the non-periodic domain")

// MaxBoxCapacity is the hard ceiling on the number of particles a single
// box may hold. Reaching it on realistic, well-distributed input indicates
// a degenerate configuration (e.g. thousands of coincident points), not a
// normal dense packing.
const MaxBoxCapacity = 1 << 20

const initialBoxCapacity = 8

// box holds every particle whose box-index maps here: parallel arrays of
// id, position and radius, grown by doubling like the teacher's gosl
// array-allocation helpers, but with an explicit ceiling check rather than
// relying on runtime append growth alone.
type box struct {
	id          []int
	x, y, z, r  []float64
}

func (b *box) append(id int, x, y, z, r float64) {
	if len(b.id) >= MaxBoxCapacity {
		chk.Panic("grid: box exceeded capacity ceiling %d; input is likely degenerate", MaxBoxCapacity)
	}
	b.id = append(b.id, id)
	b.x = append(b.x, x)
	b.y = append(b.y, y)
	b.z = append(b.z, z)
	b.r = append(b.r, r)
}

func (b *box) n() int { return len(b.id) }

// Grid is the uniform spatial index over the container's bounding box.
// Box (ix,iy,iz) covers [Xmin+ix*Sx, Xmin+(ix+1)*Sx) on a non-periodic X
// axis, inclusive-lower/exclusive-upper, except that the container's own
// upper face (ix==Nx-1) is closed at Xmax so no boundary point is dropped;
// periodic axes wrap the index modulo Nx/Ny/Nz instead of rejecting it.
type Grid struct {
	Xmin, Ymin, Zmin float64
	Xmax, Ymax, Zmax float64
	Nx, Ny, Nz       int
	PeriodicX        bool
	PeriodicY        bool
	PeriodicZ        bool

	Sx, Sy, Sz float64 // box size along each axis
	boxes      []box   // flat, index = ix + Nx*(iy + Ny*iz)

	// MaxRadius is the largest particle radius put into this grid so far
	// (M in the radical/weighted diagram's search-bound scaling).
	MaxRadius float64
}

// Init builds an Nx*Ny*Nz grid over [xmin,xmax]x[ymin,ymax]x[zmin,zmax].
// Dimensions and bounds are validated eagerly via chk.Panic: a malformed
// grid is a caller/configuration mistake, the same way the teacher treats
// a malformed simulation file.
func (g *Grid) Init(xmin, xmax, ymin, ymax, zmin, zmax float64, nx, ny, nz int, periodicX, periodicY, periodicZ bool) {
	if xmax <= xmin || ymax <= ymin || zmax <= zmin {
		chk.Panic("grid: Init requires xmax>xmin, ymax>ymin, zmax>zmin; got [%g,%g]x[%g,%g]x[%g,%g]", xmin, xmax, ymin, ymax, zmin, zmax)
	}
	if nx < 1 || ny < 1 || nz < 1 {
		chk.Panic("grid: Init requires nx,ny,nz >= 1; got %d,%d,%d", nx, ny, nz)
	}
	g.Xmin, g.Xmax, g.Ymin, g.Ymax, g.Zmin, g.Zmax = xmin, xmax, ymin, ymax, zmin, zmax
	g.Nx, g.Ny, g.Nz = nx, ny, nz
	g.PeriodicX, g.PeriodicY, g.PeriodicZ = periodicX, periodicY, periodicZ
	g.Sx = (xmax - xmin) / float64(nx)
	g.Sy = (ymax - ymin) / float64(ny)
	g.Sz = (zmax - zmin) / float64(nz)
	g.boxes = make([]box, nx*ny*nz)
}

func (g *Grid) index(x, y, z float64) (ix, iy, iz int, ok bool) {
	ix, ok = axisIndex(x, g.Xmin, g.Xmax, g.Sx, g.Nx, g.PeriodicX)
	if !ok {
		return
	}
	iy, ok = axisIndex(y, g.Ymin, g.Ymax, g.Sy, g.Ny, g.PeriodicY)
	if !ok {
		return
	}
	iz, ok = axisIndex(z, g.Zmin, g.Zmax, g.Sz, g.Nz, g.PeriodicZ)
	return
}

func axisIndex(v, lo, hi, size float64, n int, periodic bool) (int, bool) {
	if periodic {
		span := hi - lo
		v = lo + math.Mod(math.Mod(v-lo, span)+span, span)
		i := int(math.Floor((v - lo) / size))
		if i >= n {
			i = n - 1
		}
		if i < 0 {
			i = 0
		}
		return i, true
	}
	if v < lo || v > hi {
		return 0, false
	}
	i := int(math.Floor((v - lo) / size))
	if i >= n {
		i = n - 1 // the container's own closed upper face
	}
	if i < 0 {
		i = 0
	}
	return i, true
}

func (g *Grid) flat(ix, iy, iz int) int { return ix + g.Nx*(iy+g.Ny*iz) }

// Put inserts a particle (id, position, radius) into its box. r is the
// particle's radius — 0 for the unweighted Voronoi variant. It returns
// ErrOutOfDomain if the position falls outside the domain on a
// non-periodic axis.
func (g *Grid) Put(id int, x, y, z, r float64) error {
	ix, iy, iz, ok := g.index(x, y, z)
	if !ok {
		return ErrOutOfDomain
	}
	g.boxes[g.flat(ix, iy, iz)].append(id, x, y, z, r)
	if r > g.MaxRadius {
		g.MaxRadius = r
	}
	return nil
}

// BoxOf returns the box indices containing point (x,y,z), remapped through
// periodicity the same way Put would. ok is false if the point lies
// outside a non-periodic domain.
func (g *Grid) BoxOf(x, y, z float64) (ix, iy, iz int, ok bool) {
	return g.index(x, y, z)
}

// NumParticles returns the number of particles currently stored in box
// (ix,iy,iz).
func (g *Grid) NumParticles(ix, iy, iz int) int {
	return g.boxes[g.flat(ix, iy, iz)].n()
}

// Particle returns the k-th particle stored in box (ix,iy,iz).
func (g *Grid) Particle(ix, iy, iz, k int) (id int, x, y, z, r float64) {
	b := &g.boxes[g.flat(ix, iy, iz)]
	return b.id[k], b.x[k], b.y[k], b.z[k], b.r[k]
}

// Total returns the total number of particles stored across every box.
func (g *Grid) Total() int {
	var n int
	for i := range g.boxes {
		n += g.boxes[i].n()
	}
	return n
}

// Each calls fn once per stored particle, in box-then-insertion order —
// the deterministic order the public traversal iterators rely on.
func (g *Grid) Each(fn func(id int, x, y, z, r float64)) {
	for iz := 0; iz < g.Nz; iz++ {
		for iy := 0; iy < g.Ny; iy++ {
			for ix := 0; ix < g.Nx; ix++ {
				b := &g.boxes[g.flat(ix, iy, iz)]
				for k := range b.id {
					fn(b.id[k], b.x[k], b.y[k], b.z[k], b.r[k])
				}
			}
		}
	}
}
