// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voro

import (
	"github.com/PeterZs/voro/cellmesh"
	"github.com/PeterZs/voro/compute"
	"github.com/PeterZs/voro/grid"
	"github.com/PeterZs/voro/wall"
)

// Container binds the particle grid (PG), the wall list (WL) and the cell
// compute driver (CCD) parameters into a single entry point: import
// particles, then iterate computed cells.
type Container struct {
	Opts  Options
	Grid  grid.Grid
	Walls wall.List
}

// NewContainer validates opts and builds an empty Container ready to
// receive particles via Import or Put.
func NewContainer(opts Options) *Container {
	opts.Validate()
	c := &Container{Opts: opts}
	c.Grid.Init(opts.Xmin, opts.Xmax, opts.Ymin, opts.Ymax, opts.Zmin, opts.Zmax,
		opts.Nx, opts.Ny, opts.Nz, opts.PeriodicX, opts.PeriodicY, opts.PeriodicZ)
	return c
}

// Put inserts one particle directly, bypassing the text import format.
func (c *Container) Put(id int, x, y, z, r float64) error {
	return c.Grid.Put(id, x, y, z, r)
}

// NewDriver returns a Driver for this container, suitable for one
// goroutine's exclusive use. Each call to Driver.Compute derives its own
// cell's pre-initialization bounds from c.Grid and the source particle, so
// the driver itself carries no container-extent state.
func (c *Container) NewDriver() *compute.Driver {
	return compute.New(c.Opts.TrackNeighbors, c.Opts.Radical)
}

// Compute builds the cell of the particle with the given id, reusing the
// scratch state in d. It reports ok=false if no particle with that id has
// been imported, or if the cell was annihilated (e.g. cut away entirely by
// a wall).
func (c *Container) Compute(d *compute.Driver, id int) (mesh *cellmesh.Mesh, ok bool) {
	src, found := c.findSource(id)
	if !found {
		return nil, false
	}
	if !d.Compute(src, &c.Grid, &c.Walls) {
		return nil, false
	}
	return d.Mesh, true
}

func (c *Container) findSource(id int) (src compute.Source, found bool) {
	c.Grid.Each(func(pid int, x, y, z, r float64) {
		if found || pid != id {
			return
		}
		ix, iy, iz, ok := c.Grid.BoxOf(x, y, z)
		if !ok {
			return
		}
		src = compute.Source{ID: pid, X: x, Y: y, Z: z, R: r, IX: ix, IY: iy, IZ: iz}
		found = true
	})
	return
}

// CellResult pairs a particle id with its computed cell, or a failure flag
// for a cell that did not survive.
type CellResult struct {
	ID   int
	Mesh *cellmesh.Mesh
	OK   bool
}

// ComputeAll computes the cell of every imported particle, in grid scan
// order (box by box, insertion order within a box; see grid.Grid.Each),
// using a single Driver (and hence a single goroutine).
// fn is called once per particle with the result; it must not retain mesh
// beyond the call, since the same Driver's Mesh backs every result.
func (c *Container) ComputeAll(fn func(CellResult)) {
	d := c.NewDriver()
	c.Grid.Each(func(id int, x, y, z, r float64) {
		ix, iy, iz, ok := c.Grid.BoxOf(x, y, z)
		if !ok {
			fn(CellResult{ID: id, OK: false})
			return
		}
		src := compute.Source{ID: id, X: x, Y: y, Z: z, R: r, IX: ix, IY: iy, IZ: iz}
		ok = d.Compute(src, &c.Grid, &c.Walls)
		fn(CellResult{ID: id, Mesh: d.Mesh, OK: ok})
	})
}
