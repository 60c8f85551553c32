// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "sort"

// Offset is one entry of a WorkList: a relative box displacement and a
// conservative lower bound on the squared distance from any point in the
// center box to any point in the displaced box.
type Offset struct {
	Dx, Dy, Dz int
	MinDist2   float64
}

// WorkList is a radius-ordered table of box offsets, built once per grid
// geometry and reused by every cell the compute driver constructs. Walking
// it in order and stopping once an offset's MinDist2 exceeds four times a
// cell's current max_radius_squared (a neighbor's bisector lies at half its
// distance) is what makes the unweighted cell construction loop provably
// complete: no box that could still contain a closer-cutting particle is
// skipped.
type WorkList struct {
	Sx, Sy, Sz float64
	Shells     int
	offsets    []Offset
}

// Build precomputes every offset within shells boxes of the center box
// along each axis, sorted by ascending MinDist2. shells should be large
// enough that MinDist2 at the outer shell exceeds any max_radius_squared
// the driver will encounter for this geometry. compute.Driver builds the
// table with one more shell than the largest of Nx, Ny, Nz and never walks
// past its end.
func (w *WorkList) Build(sx, sy, sz float64, shells int) {
	w.Sx, w.Sy, w.Sz, w.Shells = sx, sy, sz, shells
	w.offsets = w.offsets[:0]
	for dz := -shells; dz <= shells; dz++ {
		for dy := -shells; dy <= shells; dy++ {
			for dx := -shells; dx <= shells; dx++ {
				w.offsets = append(w.offsets, Offset{
					Dx: dx, Dy: dy, Dz: dz,
					MinDist2: minAxisDist(dx, sx)*minAxisDist(dx, sx) +
						minAxisDist(dy, sy)*minAxisDist(dy, sy) +
						minAxisDist(dz, sz)*minAxisDist(dz, sz),
				})
			}
		}
	}
	sort.Slice(w.offsets, func(i, j int) bool { return w.offsets[i].MinDist2 < w.offsets[j].MinDist2 })
}

// minAxisDist returns the minimum possible distance along one axis between
// any point of the center box and any point of the box d boxes away: zero
// for d in {-1,0,1} (adjacent or the same box), otherwise (|d|-1)*size.
func minAxisDist(d int, size float64) float64 {
	ad := d
	if ad < 0 {
		ad = -ad
	}
	if ad <= 1 {
		return 0
	}
	return float64(ad-1) * size
}

// Offsets returns the precomputed, radius-ordered offset table.
func (w *WorkList) Offsets() []Offset { return w.offsets }

// UpperBound returns the MinDist2 of the outermost precomputed shell,
// i.e. the radius out to which this WorkList's ordering is known complete.
func (w *WorkList) UpperBound() float64 {
	if len(w.offsets) == 0 {
		return 0
	}
	return w.offsets[len(w.offsets)-1].MinDist2
}
