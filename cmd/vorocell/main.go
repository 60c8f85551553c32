// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/PeterZs/voro/voro"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			utl.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	utl.PfWhite("\nvorocell -- 3D Voronoi cell construction\n\n")
	utl.Pf("Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.\n")
	utl.Pf("Use of this source code is governed by a BSD-style\n")
	utl.Pf("license that can be found in the LICENSE file.\n\n")

	var xmin, xmax, ymin, ymax, zmin, zmax float64
	var nx, ny, nz int
	var periodic bool
	var radical bool
	var workers int
	flag.Float64Var(&xmin, "xmin", 0, "lower x bound of the container")
	flag.Float64Var(&xmax, "xmax", 1, "upper x bound of the container")
	flag.Float64Var(&ymin, "ymin", 0, "lower y bound of the container")
	flag.Float64Var(&ymax, "ymax", 1, "upper y bound of the container")
	flag.Float64Var(&zmin, "zmin", 0, "lower z bound of the container")
	flag.Float64Var(&zmax, "zmax", 1, "upper z bound of the container")
	flag.IntVar(&nx, "nx", 6, "grid boxes along x")
	flag.IntVar(&ny, "ny", 6, "grid boxes along y")
	flag.IntVar(&nz, "nz", 6, "grid boxes along z")
	flag.BoolVar(&periodic, "periodic", false, "periodic along all three axes")
	flag.BoolVar(&radical, "radical", false, "compute the power (radical) diagram; input records need a radius column")
	flag.IntVar(&workers, "workers", 1, "number of goroutines to compute cells with")
	flag.Parse()

	var fnamepath string
	if len(flag.Args()) > 0 {
		fnamepath = flag.Arg(0)
	} else {
		utl.Panic("Please, provide a particle file. Ex.: particles.txt")
	}

	stride := 3
	if radical {
		stride = 4
	}
	c := voro.NewContainer(voro.Options{
		Xmin: xmin, Xmax: xmax, Ymin: ymin, Ymax: ymax, Zmin: zmin, Zmax: zmax,
		Nx: nx, Ny: ny, Nz: nz,
		PeriodicX: periodic, PeriodicY: periodic, PeriodicZ: periodic,
		Stride:  stride,
		Radical: radical,
	})

	b, err := io.ReadFile(fnamepath)
	if err != nil {
		utl.Panic(io.Sf("cannot read particle file %s: %v", fnamepath, err))
	}

	n, err := voro.Import(strings.NewReader(string(b)), c)
	if err != nil {
		utl.PfYel("import reported errors: %v\n", err)
	}
	utl.Pf("imported %d particles\n\n", n)

	printResult := func(r voro.CellResult) {
		if !r.OK {
			utl.PfRed("particle %6d : cell annihilated\n", r.ID)
			return
		}
		cx, cy, cz := r.Mesh.Centroid()
		utl.Pf("particle %6d : volume=%12.6f  centroid=(%.4f,%.4f,%.4f)  faces=%d\n",
			r.ID, r.Mesh.Volume(), cx, cy, cz, len(r.Mesh.FaceOrders()))
	}

	if workers > 1 {
		c.ComputeAllConcurrent(workers, printResult)
	} else {
		c.ComputeAll(printResult)
	}
}
