// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cellmesh

import "github.com/cpmech/gosl/chk"

// Cut clips the mesh against the half-space { v : nx*vx+ny*vy+nz*vz <= r },
// keeping the side containing the local-frame origin (the source particle).
// tag identifies the neighbor (particle id, or a wall sentinel) that owns
// the cutting plane and is recorded against every edge of the new face when
// the mesh tracks neighbors.
//
// Cut reports whether the cell survived the cut (false means the whole
// polyhedron lay on the outside and the mesh is now empty).
func (m *Mesh) Cut(nx, ny, nz, r float64, tag int) bool {
	n := m.NV()
	if n == 0 {
		return false
	}

	q := make([]float64, n)
	outside := make([]bool, n)
	numOutside := 0
	for i := 0; i < n; i++ {
		q[i] = nx*m.x[i] + ny*m.y[i] + nz*m.z[i] - r
		m.onPlane[i] = abs(q[i]) <= m.Eps
		if q[i] > m.Eps {
			outside[i] = true
			numOutside++
		}
	}

	if numOutside == 0 {
		return true
	}
	if numOutside == n {
		m.clear()
		return false
	}

	// seed: a retained vertex with an outside neighbor.
	seed, seedSlot := -1, -1
	for i := 0; i < n && seed < 0; i++ {
		if outside[i] {
			continue
		}
		for k, j := range m.nbr[i] {
			if outside[j] {
				seed, seedSlot = i, k
				break
			}
		}
	}
	if seed < 0 {
		chk.Panic("cellmesh: Cut found %d outside vertices but no retained/outside adjacency; mesh is corrupt", numOutside)
	}

	// Trace the new face's boundary. Each step records one crossed edge
	// (a retained vertex and the slot, within its own neighbor list, that
	// points across the plane) and then finds the next crossed edge by
	// pivoting at the outside endpoint: advance its slot by one face at a
	// time (via the back-reference of the edge just arrived on) until a
	// retained neighbor turns up. The pivot never moves to the retained
	// side to search — only the outside vertex rotates.
	type crossing struct {
		retained, retSlot int
		outsideV          int
	}
	var ring []crossing

	retained, retSlot := seed, seedSlot
	outsideV := m.nbr[retained][retSlot]
	firstRetained, firstRetSlot := retained, retSlot

	for {
		ring = append(ring, crossing{retained, retSlot, outsideV})

		arriveSlot := m.back[retained][retSlot] // slot in outsideV's nbr list pointing back to retained
		cur, slot := outsideV, arriveSlot
		var nextRetained, nextRetSlot, nextOutsideV int
		for {
			slot = (slot + 1) % len(m.nbr[cur])
			nb := m.nbr[cur][slot]
			if !outside[nb] {
				nextRetained, nextRetSlot, nextOutsideV = nb, m.back[cur][slot], cur
				break
			}
			slot = m.back[cur][slot]
			cur = nb
		}
		retained, retSlot, outsideV = nextRetained, nextRetSlot, nextOutsideV

		if retained == firstRetained && retSlot == firstRetSlot {
			break
		}
	}

	t := len(ring)
	if t < 3 {
		chk.Panic("cellmesh: Cut produced a degenerate ring of %d vertices", t)
	}

	base := n
	m.x = append(m.x, make([]float64, t)...)
	m.y = append(m.y, make([]float64, t)...)
	m.z = append(m.z, make([]float64, t)...)
	m.nbr = append(m.nbr, make([][]int, t)...)
	m.back = append(m.back, make([][]int, t)...)
	m.onPlane = append(m.onPlane, make([]bool, t)...)
	if m.trackNeighbors {
		m.tag = append(m.tag, make([][]int, t)...)
	}

	for k, c := range ring {
		rv := base + k
		qr, qo := q[c.retained], q[c.outsideV]
		frac := qr / (qr - qo) // qr<=eps<qo, so frac is in [0,1), or barely negative when 0<qr<=eps
		m.x[rv] = m.x[c.retained] + frac*(m.x[c.outsideV]-m.x[c.retained])
		m.y[rv] = m.y[c.retained] + frac*(m.y[c.outsideV]-m.y[c.retained])
		m.z[rv] = m.z[c.retained] + frac*(m.z[c.outsideV]-m.z[c.retained])

		prev := base + (k-1+t)%t
		next := base + (k+1)%t
		m.nbr[rv] = []int{prev, c.retained, next}
		m.back[rv] = []int{2, c.retSlot, 0}

		if m.trackNeighbors {
			// slot 0 starts the new face; slot 1 starts the old face shared
			// with the previous crossing, slot 2 the old face of this one.
			pc := ring[(k-1+t)%t]
			m.tag[rv] = []int{tag, m.tag[pc.retained][pc.retSlot], m.tag[c.retained][c.retSlot]}
		}

		// splice the new vertex into the retained vertex's slot, replacing
		// the old outside-pointing neighbor but keeping the slot position
		// (so the retained vertex's own face-cycle order is unaffected).
		m.nbr[c.retained][c.retSlot] = rv
		m.back[c.retained][c.retSlot] = 1
	}

	keep := make([]bool, n)
	for i := 0; i < n; i++ {
		keep[i] = !outside[i]
	}
	m.compact(keep)
	m.growCheck()
	return true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// compact removes every original vertex i < len(keep) with !keep[i],
// renumbering survivors (and vertices appended after the classified range,
// which are always kept) and all nbr references in place.
func (m *Mesh) compact(keep []bool) {
	total := m.NV()
	full := make([]bool, total)
	copy(full, keep)
	for i := len(keep); i < total; i++ {
		full[i] = true
	}

	mapping := make([]int, total)
	out := 0
	for i := 0; i < total; i++ {
		if full[i] {
			mapping[i] = out
			out++
		} else {
			mapping[i] = -1
		}
	}

	px, py, pz := m.x, m.y, m.z
	pnbr, pback := m.nbr, m.back
	ptag := m.tag
	ponPlane := m.onPlane

	m.x = make([]float64, out)
	m.y = make([]float64, out)
	m.z = make([]float64, out)
	m.nbr = make([][]int, out)
	m.back = make([][]int, out)
	m.onPlane = make([]bool, out)
	if m.trackNeighbors {
		m.tag = make([][]int, out)
	}

	for i := 0; i < total; i++ {
		ni := mapping[i]
		if ni < 0 {
			continue
		}
		m.x[ni], m.y[ni], m.z[ni] = px[i], py[i], pz[i]
		m.onPlane[ni] = ponPlane[i]
		m.nbr[ni] = make([]int, len(pnbr[i]))
		for k, j := range pnbr[i] {
			m.nbr[ni][k] = mapping[j]
		}
		m.back[ni] = append([]int(nil), pback[i]...)
		if m.trackNeighbors {
			m.tag[ni] = append([]int(nil), ptag[i]...)
		}
	}
}
