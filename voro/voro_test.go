// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voro

import (
	"strings"
	"sync"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/PeterZs/voro/wall"
)

func TestImportAndComputeSingleParticle(tst *testing.T) {

	chk.PrintTitle("voro01: single particle fills the whole container")

	c := NewContainer(Options{
		Xmin: -0.5, Xmax: 0.5,
		Ymin: -0.5, Ymax: 0.5,
		Zmin: -0.5, Zmax: 0.5,
		Nx: 1, Ny: 1, Nz: 1,
		Stride: 3,
	})

	n, err := Import(strings.NewReader("0 0 0 0\n"), c)
	if err != nil {
		tst.Fatalf("unexpected import error: %v", err)
	}
	if n != 1 {
		tst.Fatalf("expected 1 imported particle, got %d", n)
	}

	c.Walls.Add(&wall.Plane{Nx: 1, Ny: 0, Nz: 0, R: 0.5, ID: 0})
	c.Walls.Add(&wall.Plane{Nx: -1, Ny: 0, Nz: 0, R: 0.5, ID: 1})
	c.Walls.Add(&wall.Plane{Nx: 0, Ny: 1, Nz: 0, R: 0.5, ID: 2})
	c.Walls.Add(&wall.Plane{Nx: 0, Ny: -1, Nz: 0, R: 0.5, ID: 3})
	c.Walls.Add(&wall.Plane{Nx: 0, Ny: 0, Nz: 1, R: 0.5, ID: 4})
	c.Walls.Add(&wall.Plane{Nx: 0, Ny: 0, Nz: -1, R: 0.5, ID: 5})

	d := c.NewDriver()
	mesh, ok := c.Compute(d, 0)
	if !ok {
		tst.Fatal("the only particle's cell should survive")
	}
	chk.Float64(tst, "volume", 1e-12, mesh.Volume(), 1)
}

func TestImportSkipsBadLines(tst *testing.T) {

	chk.PrintTitle("voro02: Import reports but does not abort on a bad line")

	c := NewContainer(Options{
		Xmin: 0, Xmax: 10,
		Ymin: 0, Ymax: 10,
		Zmin: 0, Zmax: 10,
		Nx: 2, Ny: 2, Nz: 2,
		Stride: 3,
	})

	input := "0 1 1 1\nnotanumber garbage\n1 2 2 2\n"
	n, err := Import(strings.NewReader(input), c)
	if err == nil {
		tst.Fatal("expected an accumulated error for the malformed line")
	}
	if n != 2 {
		tst.Fatalf("expected 2 successful imports despite the bad line, got %d", n)
	}
	if c.Grid.Total() != 2 {
		tst.Fatalf("expected 2 stored particles, got %d", c.Grid.Total())
	}
}

func TestComputeAllConcurrentMatchesSerial(tst *testing.T) {

	chk.PrintTitle("voro03: ComputeAllConcurrent agrees with serial ComputeAll")

	build := func() *Container {
		c := NewContainer(Options{
			Xmin: -10, Xmax: 10,
			Ymin: -10, Ymax: 10,
			Zmin: -10, Zmax: 10,
			Nx: 3, Ny: 3, Nz: 3,
			Stride: 3,
		})
		pts := [][3]float64{{-3, 0, 0}, {3, 0, 0}, {0, 3, 0}, {0, -3, 0}, {0, 0, 3}}
		for i, p := range pts {
			if err := c.Put(i, p[0], p[1], p[2], 0); err != nil {
				tst.Fatal(err)
			}
		}
		return c
	}

	serial := build()
	serialVol := map[int]float64{}
	serial.ComputeAll(func(r CellResult) {
		if r.OK {
			serialVol[r.ID] = r.Mesh.Volume()
		}
	})

	concurrent := build()
	concurrentVol := map[int]float64{}
	var mu sync.Mutex
	concurrent.ComputeAllConcurrent(4, func(r CellResult) {
		mu.Lock()
		defer mu.Unlock()
		if r.OK {
			concurrentVol[r.ID] = r.Mesh.Volume()
		}
	})

	if len(serialVol) != len(concurrentVol) {
		tst.Fatalf("expected matching result counts: serial=%d concurrent=%d", len(serialVol), len(concurrentVol))
	}
	for id, v := range serialVol {
		cv, ok := concurrentVol[id]
		if !ok {
			tst.Fatalf("particle %d missing from concurrent results", id)
		}
		chk.Float64(tst, "volume", 1e-9, cv, v)
	}
}
