// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wall

import "math"

// Plane is a half-space wall: points with nx*x+ny*y+nz*z <= r (in
// absolute coordinates) are kept. (nx,ny,nz) need not be a unit vector;
// Cut normalizes internally so r is interpreted consistently.
type Plane struct {
	Nx, Ny, Nz, R float64
	ID            int
}

func (w *Plane) unit() (nx, ny, nz, r float64) {
	norm := math.Sqrt(w.Nx*w.Nx + w.Ny*w.Ny + w.Nz*w.Nz)
	return w.Nx / norm, w.Ny / norm, w.Nz / norm, w.R / norm
}

func (w *Plane) PointInside(sx, sy, sz float64) bool {
	nx, ny, nz, r := w.unit()
	return nx*sx+ny*sy+nz*sz-r <= 0
}

func (w *Plane) Cut(sx, sy, sz, rad2 float64) (nx, ny, nz, r float64, ok bool) {
	nx, ny, nz, pr := w.unit()
	// shift the absolute plane into the particle's local frame.
	r = pr - (nx*sx + ny*sy + nz*sz)
	return nx, ny, nz, r, true
}

func (w *Plane) Tag() int { return wallTag(w.ID) }

// Sphere is a spherical wall; Inside keeps the interior (Inside=true) or
// the exterior (Inside=false) of the sphere centered at (Cx,Cy,Cz) with
// radius Radius.
type Sphere struct {
	Cx, Cy, Cz, Radius float64
	Inside             bool
	ID                 int
}

func (w *Sphere) PointInside(sx, sy, sz float64) bool {
	dx, dy, dz := sx-w.Cx, sy-w.Cy, sz-w.Cz
	d2 := dx*dx + dy*dy + dz*dz
	in := d2 <= w.Radius*w.Radius
	if w.Inside {
		return in
	}
	return !in
}

func (w *Sphere) Cut(sx, sy, sz, rad2 float64) (nx, ny, nz, r float64, ok bool) {
	dx, dy, dz := w.Cx-sx, w.Cy-sy, w.Cz-sz
	d2 := dx*dx + dy*dy + dz*dz
	d := math.Sqrt(d2)
	if d == 0 {
		return 0, 0, 0, 0, false // particle sits exactly on the sphere's center: no well-defined cutting plane
	}
	// tangent plane approximation: the true wall/cell intersection for a
	// sphere is curved, but the plane tangent to the sphere at the surface
	// point on the line through the particle and the center is the
	// half-space a single clip step can express; a caller needing an
	// exact spherical wall would iterate Cut as the cell shrinks, the way
	// voro++'s wall_sphere re-derives its plane from the current distance
	// each time it is consulted.
	nx, ny, nz = dx/d, dy/d, dz/d // unit vector from the particle toward the center
	if w.Inside {
		return -nx, -ny, -nz, w.Radius - d, true
	}
	return nx, ny, nz, d - w.Radius, true
}

func (w *Sphere) Tag() int { return wallTag(w.ID) }

// Cylinder is an infinite cylindrical wall aligned along an arbitrary axis
// direction (Ax,Ay,Az), centered on a point on its axis (Cx,Cy,Cz).
// Inside keeps the interior or exterior, analogous to Sphere.
type Cylinder struct {
	Cx, Cy, Cz    float64
	Ax, Ay, Az    float64 // axis direction, need not be unit
	Radius        float64
	Inside        bool
	ID            int
}

func (w *Cylinder) axisUnit() (ax, ay, az float64) {
	norm := math.Sqrt(w.Ax*w.Ax + w.Ay*w.Ay + w.Az*w.Az)
	return w.Ax / norm, w.Ay / norm, w.Az / norm
}

// radialVector returns the displacement from the axis to (sx,sy,sz),
// perpendicular to the axis direction, and its length.
func (w *Cylinder) radialVector(sx, sy, sz float64) (rx, ry, rz, rlen float64) {
	ax, ay, az := w.axisUnit()
	dx, dy, dz := sx-w.Cx, sy-w.Cy, sz-w.Cz
	along := dx*ax + dy*ay + dz*az
	rx, ry, rz = dx-along*ax, dy-along*ay, dz-along*az
	rlen = math.Sqrt(rx*rx + ry*ry + rz*rz)
	return
}

func (w *Cylinder) PointInside(sx, sy, sz float64) bool {
	_, _, _, rlen := w.radialVector(sx, sy, sz)
	in := rlen <= w.Radius
	if w.Inside {
		return in
	}
	return !in
}

func (w *Cylinder) Cut(sx, sy, sz, rad2 float64) (nx, ny, nz, r float64, ok bool) {
	rx, ry, rz, rlen := w.radialVector(sx, sy, sz)
	if rlen == 0 {
		return 0, 0, 0, 0, false
	}
	// plane tangent to the cylinder at the surface point radially in line
	// with the particle; (nx,ny,nz) points from the axis to the particle.
	nx, ny, nz = rx/rlen, ry/rlen, rz/rlen
	if w.Inside {
		return nx, ny, nz, w.Radius - rlen, true
	}
	return -nx, -ny, -nz, rlen - w.Radius, true
}

func (w *Cylinder) Tag() int { return wallTag(w.ID) }

// wallTag maps a caller-supplied wall id to the negative tag space, so a
// neighbor-tracking mesh can never confuse a wall for a real particle.
func wallTag(id int) int { return -id - 1 }
