// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voro

import (
	"context"
	"sync"

	"github.com/PeterZs/voro/compute"
)

// cellJob is one unit of work for ComputeAllConcurrent: compute the cell
// of a single source particle.
type cellJob struct {
	src compute.Source
}

// ComputeAllConcurrent computes the cell of every imported particle using a
// fixed pool of workers, each owning its own Driver (and hence its own
// Mesh) so no per-container scratch state is shared across goroutines —
// grounded on the job-channel-plus-waitgroup worker pool pattern (each
// worker pulls jobs from a shared channel, owns private working state, and
// is shut down by canceling a context and draining the queue).
//
// Each CellResult's Mesh is a Clone, independent of the worker's reused
// scratch Mesh, so fn may retain it beyond the call.
//
// fn is invoked once per particle, from whichever worker finished it;
// callers needing a deterministic order should sort by CellResult.ID
// themselves, since fn is NOT called in insertion order.
func (c *Container) ComputeAllConcurrent(workers int, fn func(CellResult)) {
	if workers < 1 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	jobs := make(chan cellJob, workers*4)
	results := make(chan CellResult, workers*4)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d := c.NewDriver()
			for {
				select {
				case job, open := <-jobs:
					if !open {
						return
					}
					ok := d.Compute(job.src, &c.Grid, &c.Walls)
					res := CellResult{ID: job.src.ID, OK: ok}
					if ok {
						res.Mesh = d.Mesh.Clone()
					}
					select {
					case results <- res:
					case <-ctx.Done():
						return
					}
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	var feeder sync.WaitGroup
	feeder.Add(1)
	go func() {
		defer feeder.Done()
		defer close(jobs)
		c.Grid.Each(func(id int, x, y, z, r float64) {
			ix, iy, iz, ok := c.Grid.BoxOf(x, y, z)
			if !ok {
				return
			}
			select {
			case jobs <- cellJob{src: compute.Source{ID: id, X: x, Y: y, Z: z, R: r, IX: ix, IY: iy, IZ: iz}}:
			case <-ctx.Done():
			}
		})
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(results)
		close(done)
	}()

	for r := range results {
		fn(r)
	}
	feeder.Wait()
	<-done
}
