// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package wall implements the wall list (WL): boundary surfaces that clip
// a cell the same way a neighboring particle does, without the cell
// construction code needing to know any wall's concrete shape.
package wall

// Wall is the capability a boundary surface must provide to participate in
// cell construction. Implementations never see a cell's internal mesh
// representation — only the plane each exposes through Cut.
type Wall interface {
	// PointInside reports whether the point (sx,sy,sz), in absolute
	// coordinates, lies on the side of the wall that is kept.
	PointInside(sx, sy, sz float64) bool

	// Cut returns the half-space plane, in the source particle's local
	// frame, that this wall would clip the cell against: the cell keeps
	// { v : nx*vx+ny*vy+nz*vz <= r }. ok is false if the wall does not
	// intersect the region that could affect a cell centered at
	// (sx,sy,sz) with current max_radius_squared rad2 (an implementation
	// may use this to skip itself cheaply).
	Cut(sx, sy, sz, rad2 float64) (nx, ny, nz, r float64, ok bool)

	// Tag identifies this wall for neighbor-tracking meshes. Wall tags are
	// always negative so they can never collide with a real particle id.
	Tag() int
}

// Cutter is implemented by a cell mesh (cellmesh.Mesh satisfies it) so
// that List.Apply can drive wall clipping without importing cellmesh,
// avoiding an import cycle between wall and cellmesh.
type Cutter interface {
	Cut(nx, ny, nz, r float64, tag int) bool
}

// List aggregates every wall a container was configured with and applies
// them to a cell mesh in registration order.
type List struct {
	walls []Wall
}

// Add registers a wall. Order matters only for efficiency (cheap, often-
// cutting walls first shrinks the cell sooner), never for correctness.
func (l *List) Add(w Wall) { l.walls = append(l.walls, w) }

// Len returns the number of registered walls.
func (l *List) Len() int { return len(l.walls) }

// PointInside reports whether (sx,sy,sz) is inside every registered wall.
func (l *List) PointInside(sx, sy, sz float64) bool {
	for _, w := range l.walls {
		if !w.PointInside(sx, sy, sz) {
			return false
		}
	}
	return true
}

// Apply clips mesh against every registered wall, in order, stopping early
// if the cell is annihilated. It reports whether the cell survived.
func (l *List) Apply(mesh Cutter, sx, sy, sz, rad2 float64) bool {
	for _, w := range l.walls {
		nx, ny, nz, r, ok := w.Cut(sx, sy, sz, rad2)
		if !ok {
			continue
		}
		if !mesh.Cut(nx, ny, nz, r, w.Tag()) {
			return false
		}
	}
	return true
}
