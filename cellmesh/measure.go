// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cellmesh

import "github.com/cpmech/gosl/la"

// Volume returns the polyhedron's volume, computed as a sum of signed
// tetrahedron volumes fanning out from the local-frame origin (the source
// particle) to every triangle of every face's fan triangulation.
func (m *Mesh) Volume() float64 {
	var vol float64
	m.walkFaces(func(_ int, verts []int) {
		if len(verts) < 3 {
			return
		}
		x0, y0, z0 := m.x[verts[0]], m.y[verts[0]], m.z[verts[0]]
		for k := 1; k < len(verts)-1; k++ {
			x1, y1, z1 := m.x[verts[k]], m.y[verts[k]], m.z[verts[k]]
			x2, y2, z2 := m.x[verts[k+1]], m.y[verts[k+1]], m.z[verts[k+1]]
			// signed volume of tetrahedron (origin, v0, v1, v2)
			vol += x0*(y1*z2-z1*y2) - y0*(x1*z2-z1*x2) + z0*(x1*y2-y1*x2)
		}
	})
	return vol / 6
}

// Centroid returns the polyhedron's centroid in the local frame (i.e. as a
// displacement from the source particle).
func (m *Mesh) Centroid() (cx, cy, cz float64) {
	var vol, mx, my, mz float64
	m.walkFaces(func(_ int, verts []int) {
		if len(verts) < 3 {
			return
		}
		x0, y0, z0 := m.x[verts[0]], m.y[verts[0]], m.z[verts[0]]
		for k := 1; k < len(verts)-1; k++ {
			x1, y1, z1 := m.x[verts[k]], m.y[verts[k]], m.z[verts[k]]
			x2, y2, z2 := m.x[verts[k+1]], m.y[verts[k+1]], m.z[verts[k+1]]
			tv := (x0*(y1*z2-z1*y2) - y0*(x1*z2-z1*x2) + z0*(x1*y2-y1*x2)) / 6
			vol += tv
			mx += tv * (x0 + x1 + x2) / 4
			my += tv * (y0 + y1 + y2) / 4
			mz += tv * (z0 + z1 + z2) / 4
		}
	})
	if vol == 0 {
		return 0, 0, 0
	}
	return mx / vol, my / vol, mz / vol
}

// SurfaceArea returns the total area of all faces.
func (m *Mesh) SurfaceArea() float64 {
	var total float64
	for _, a := range m.FaceAreas() {
		total += a
	}
	return total
}

// FaceAreas returns the area of each face, one entry per face in
// visitation order (the same order as FaceVertices).
func (m *Mesh) FaceAreas() []float64 {
	var areas []float64
	m.walkFaces(func(_ int, verts []int) {
		areas = append(areas, polygonArea(m, verts))
	})
	return areas
}

func polygonArea(m *Mesh, verts []int) float64 {
	if len(verts) < 3 {
		return 0
	}
	var ax, ay, az float64
	x0, y0, z0 := m.x[verts[0]], m.y[verts[0]], m.z[verts[0]]
	for k := 1; k < len(verts)-1; k++ {
		x1, y1, z1 := m.x[verts[k]]-x0, m.y[verts[k]]-y0, m.z[verts[k]]-z0
		x2, y2, z2 := m.x[verts[k+1]]-x0, m.y[verts[k+1]]-y0, m.z[verts[k+1]]-z0
		ax += y1*z2 - z1*y2
		ay += z1*x2 - x1*z2
		az += x1*y2 - y1*x2
	}
	return 0.5 * la.VecNorm([]float64{ax, ay, az})
}

// FaceOrders returns the number of vertices (== number of edges) of each
// face, aligned with FaceAreas and FaceVertices.
func (m *Mesh) FaceOrders() []int {
	var orders []int
	m.walkFaces(func(_ int, verts []int) {
		orders = append(orders, len(verts))
	})
	return orders
}

// FaceVertices returns, for each face, the ordered ring of vertex indices
// tracing its boundary counter-clockwise as seen from outside the cell.
func (m *Mesh) FaceVertices() [][]int {
	var faces [][]int
	m.walkFaces(func(_ int, verts []int) {
		faces = append(faces, append([]int(nil), verts...))
	})
	return faces
}

// Neighbors returns, for each face (same order as FaceVertices), the tag of
// the particle or wall whose cut created it. Returns nil if the mesh was
// built without TrackNeighbors.
func (m *Mesh) Neighbors() []int {
	if !m.trackNeighbors {
		return nil
	}
	var tags []int
	m.walkFaces(func(faceTag int, _ []int) {
		tags = append(tags, faceTag)
	})
	return tags
}

// Vertices returns a copy of every vertex position, in local-frame
// coordinates.
func (m *Mesh) Vertices() (xs, ys, zs []float64) {
	xs = append([]float64(nil), m.x...)
	ys = append([]float64(nil), m.y...)
	zs = append([]float64(nil), m.z...)
	return
}

// TotalEdgeDistance returns the sum of every edge's length, each edge
// counted once. Like FaceAreas, it takes each length with la.VecNorm, here
// on a reused displacement vector.
func (m *Mesh) TotalEdgeDistance() float64 {
	var total float64
	d := make([]float64, 3)
	for i := 0; i < m.NV(); i++ {
		for _, j := range m.nbr[i] {
			if j < i {
				continue // count each undirected edge once
			}
			d[0] = m.x[j] - m.x[i]
			d[1] = m.y[j] - m.y[i]
			d[2] = m.z[j] - m.z[i]
			total += la.VecNorm(d)
		}
	}
	return total
}

// MaxRadiusSquared returns the squared distance, from the local-frame
// origin, of the farthest vertex. The cell compute driver uses this as the
// termination bound for its radius-ordered worklist walk.
func (m *Mesh) MaxRadiusSquared() float64 {
	var maxR2 float64
	for i := 0; i < m.NV(); i++ {
		r2 := m.x[i]*m.x[i] + m.y[i]*m.y[i] + m.z[i]*m.z[i]
		if r2 > maxR2 {
			maxR2 = r2
		}
	}
	return maxR2
}

// walkFaces visits every face exactly once, each as (tag, orderedVertices).
// Faces are found by scanning every directed edge and, the first time a
// directed edge is seen unvisited, tracing its face cycle forward using the
// next-operator: the next edge of the same face leaving vertex j, having
// arrived via slot k at i (i.e. back[i][k] is j's slot pointing at i), is
// the edge at slot (back[i][k]+1) mod deg(j) out of j.
func (m *Mesh) walkFaces(visit func(tag int, verts []int)) {
	n := m.NV()
	if n == 0 {
		return
	}
	visited := make([]map[int]bool, n)
	for i := range visited {
		visited[i] = make(map[int]bool)
	}
	for i := 0; i < n; i++ {
		for k0 := range m.nbr[i] {
			if visited[i][k0] {
				continue
			}
			var verts []int
			faceTag := -1
			if m.trackNeighbors {
				faceTag = m.tag[i][k0]
			}
			curV, curK := i, k0
			for {
				visited[curV][curK] = true
				verts = append(verts, curV)
				nextV := m.nbr[curV][curK]
				nextK := (m.back[curV][curK] + 1) % len(m.nbr[nextV])
				curV, curK = nextV, nextK
				if curV == i && curK == k0 {
					break
				}
			}
			visit(faceTag, verts)
		}
	}
}
