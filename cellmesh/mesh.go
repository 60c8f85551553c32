// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cellmesh implements the cell mesh (CM): the mutable convex
// polyhedron of one Voronoi cell under construction, represented as a
// planar, edge-oriented surface mesh with explicit vertex/edge pairing.
package cellmesh

import (
	"github.com/cpmech/gosl/chk"
)

// DefaultEps is the absolute classification tolerance every new Mesh
// starts with. It is a fixed constant: nothing in this module scales it to
// the container's size, and Mesh.Eps keeps this value unless a caller
// assigns another one.
const DefaultEps = 1e-11

// MaxVertices is the hard ceiling on the number of vertices a single cell
// may grow to. A cell that needs more indicates corrupt input (e.g. a
// degenerate, nearly-coincident particle set) rather than a normal cell.
const MaxVertices = 1 << 20

// Mesh is the convex polyhedron under construction for one source
// particle. Coordinates are stored in the particle's local frame: vertex
// (x,y,z) is the displacement from the source particle, not an absolute
// position.
//
// Every vertex has degree 3. A vertex within the classification band of a
// cut is kept as an ordinary retained vertex (see Cut); no vertex's degree
// ever grows past 3 in this implementation.
type Mesh struct {
	x, y, z []float64 // vertex coordinates, local frame
	nbr     [][]int   // nbr[i] = neighboring vertex indices of vertex i
	back    [][]int   // back[i][k] = slot of vertex i within nbr[nbr[i][k]]
	onPlane []bool    // scratch: vertex i was within the classification band of the last cut

	trackNeighbors bool
	tag            [][]int // tag[i][k] = id of the particle (or wall sentinel) whose plane created edge (i, nbr[i][k]); nil unless trackNeighbors

	// Eps is the absolute plane-classification tolerance.
	Eps float64
}

// New creates an empty Mesh. trackNeighbors enables the neighbor-id
// sidecar: every face edge remembers which particle (or wall) cut it.
func New(trackNeighbors bool) *Mesh {
	return &Mesh{trackNeighbors: trackNeighbors, Eps: DefaultEps}
}

// NV returns the current number of vertices. Zero means the cell has been
// annihilated (or never initialized).
func (m *Mesh) NV() int { return len(m.x) }

// TrackNeighbors reports whether this mesh carries the neighbor-id
// sidecar.
func (m *Mesh) TrackNeighbors() bool { return m.trackNeighbors }

// Clone returns a deep copy, safe to retain after the source Mesh is reused
// for another cell (e.g. by a pooled compute.Driver).
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{trackNeighbors: m.trackNeighbors, Eps: m.Eps}
	c.x = append([]float64(nil), m.x...)
	c.y = append([]float64(nil), m.y...)
	c.z = append([]float64(nil), m.z...)
	c.onPlane = append([]bool(nil), m.onPlane...)
	c.nbr = make([][]int, len(m.nbr))
	c.back = make([][]int, len(m.back))
	for i := range m.nbr {
		c.nbr[i] = append([]int(nil), m.nbr[i]...)
		c.back[i] = append([]int(nil), m.back[i]...)
	}
	if m.trackNeighbors {
		c.tag = make([][]int, len(m.tag))
		for i := range m.tag {
			c.tag[i] = append([]int(nil), m.tag[i]...)
		}
	}
	return c
}

// clear empties the mesh without releasing the underlying storage, the way
// a container's per-box arrays reset co[ijk] to zero but keep mem[ijk].
func (m *Mesh) clear() {
	m.x, m.y, m.z = m.x[:0], m.y[:0], m.z[:0]
	m.nbr, m.back = m.nbr[:0], m.back[:0]
	m.onPlane = m.onPlane[:0]
	if m.trackNeighbors {
		m.tag = m.tag[:0]
	}
}

// Init resets the mesh to the axis-aligned box [x1,x2]x[y1,y2]x[z1,z2],
// represented as 8 vertices of degree 3 with the canonical edge pairing of
// a hexahedron (grounded on shp.Hex8's corner/face topology). All
// subsequent cuts operate on this starting mesh.
func (m *Mesh) Init(x1, x2, y1, y2, z1, z2 float64) {
	if x2 <= x1 || y2 <= y1 || z2 <= z1 {
		chk.Panic("cellmesh: Init requires x2>x1, y2>y1, z2>z1; got [%g,%g]x[%g,%g]x[%g,%g]", x1, x2, y1, y2, z1, z2)
	}
	m.clear()

	coords := [8][3]float64{
		{x1, y1, z1}, {x2, y1, z1}, {x2, y2, z1}, {x1, y2, z1},
		{x1, y1, z2}, {x2, y1, z2}, {x2, y2, z2}, {x1, y2, z2},
	}
	// rotation[i] lists vertex i's three neighbors in CCW order as seen
	// from outside the box; derived from the box's six outward-CCW faces
	// (+x:1,2,6,5  -x:0,4,7,3  +y:3,7,6,2  -y:0,1,5,4  +z:4,5,6,7  -z:0,3,2,1).
	rotation := [8][3]int{
		{1, 3, 4}, {0, 5, 2}, {3, 1, 6}, {2, 7, 0},
		{5, 0, 7}, {4, 6, 1}, {7, 2, 5}, {6, 4, 3},
	}

	m.x = append(m.x, 0, 0, 0, 0, 0, 0, 0, 0)
	m.y = append(m.y, 0, 0, 0, 0, 0, 0, 0, 0)
	m.z = append(m.z, 0, 0, 0, 0, 0, 0, 0, 0)
	m.nbr = append(m.nbr, make([][]int, 8)...)
	m.back = append(m.back, make([][]int, 8)...)
	m.onPlane = append(m.onPlane, make([]bool, 8)...)
	if m.trackNeighbors {
		m.tag = append(m.tag, make([][]int, 8)...)
	}
	for i := 0; i < 8; i++ {
		m.x[i], m.y[i], m.z[i] = coords[i][0], coords[i][1], coords[i][2]
		m.nbr[i] = []int{rotation[i][0], rotation[i][1], rotation[i][2]}
		if m.trackNeighbors {
			m.tag[i] = []int{WallContainer, WallContainer, WallContainer}
		}
	}
	for i := 0; i < 8; i++ {
		m.back[i] = make([]int, 3)
		for k, j := range m.nbr[i] {
			m.back[i][k] = indexOf(m.nbr[j], i)
		}
	}
}

// WallContainer is the neighbor-tag sentinel used for the container's own
// bounding-box faces (never a real particle id).
const WallContainer = -1

func indexOf(s []int, v int) int {
	for k, x := range s {
		if x == v {
			return k
		}
	}
	return -1
}

func (m *Mesh) growCheck() {
	if m.NV() > MaxVertices {
		chk.Panic("cellmesh: vertex count exceeded ceiling %d; input is likely degenerate", MaxVertices)
	}
}

// Audit walks every half-edge and verifies the back-reference pairing
// invariant: ed[ed[i].nbr[k]].nbr[ed[i].back[k]] == i. Intended for debug
// builds / tests, not the hot path.
func (m *Mesh) Audit() error {
	for i := 0; i < m.NV(); i++ {
		if len(m.nbr[i]) != len(m.back[i]) {
			return chk.Err("cellmesh: vertex %d has mismatched nbr/back lengths (%d vs %d)", i, len(m.nbr[i]), len(m.back[i]))
		}
		for k, j := range m.nbr[i] {
			b := m.back[i][k]
			if b < 0 || b >= len(m.nbr[j]) {
				return chk.Err("cellmesh: vertex %d slot %d has out-of-range back-reference %d into vertex %d (degree %d)", i, k, b, j, len(m.nbr[j]))
			}
			if m.nbr[j][b] != i {
				return chk.Err("cellmesh: pairing broken: vertex %d slot %d -> %d, but %d's back-slot %d points to %d, not %d", i, k, j, j, b, m.nbr[j][b], i)
			}
		}
	}
	return nil
}
