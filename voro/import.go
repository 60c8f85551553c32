// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voro

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/utl"
)

// Import reads whitespace-separated particle records, one per line — "id x
// y z" for Options.Stride==3, "id x y z r" for Stride==4 — inserting each
// into c. Blank lines and lines starting with '#' are skipped.
//
// A malformed line or an out-of-domain point is reported but does not
// abort the import: Import keeps reading and accumulates every failure
// into the returned error, consistent with the container's domain-error
// convention (grid.ErrOutOfDomain is an ordinary returned error, not a
// panic). n is the number of successfully inserted particles.
func Import(r io.Reader, c *Container) (n int, err error) {
	scanner := bufio.NewScanner(r)
	var errs []error
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		want := c.Opts.Stride + 1 // id + stride coordinate/radius fields
		if e := logErrCond(len(fields) != want, "voro: line %d: expected %d fields, got %d", lineNo, want, len(fields)); e != nil {
			errs = append(errs, e)
			continue
		}

		id, e0 := strconv.Atoi(fields[0])
		x, e1 := strconv.ParseFloat(fields[1], 64)
		y, e2 := strconv.ParseFloat(fields[2], 64)
		z, e3 := strconv.ParseFloat(fields[3], 64)
		var rad float64
		var e4 error
		if c.Opts.Stride == 4 {
			rad, e4 = strconv.ParseFloat(fields[4], 64)
		}
		if e := logErrCond(e0 != nil || e1 != nil || e2 != nil || e3 != nil || e4 != nil, "voro: line %d: cannot parse %q", lineNo, line); e != nil {
			errs = append(errs, e)
			continue
		}

		if e := c.Put(id, x, y, z, rad); e != nil {
			errs = append(errs, logErrCond(true, "voro: line %d: %v", lineNo, e))
			continue
		}
		n++
	}
	if e := scanner.Err(); e != nil {
		errs = append(errs, e)
	}
	if len(errs) > 0 {
		return n, joinErrors(errs)
	}
	return n, nil
}

// joinErrors flattens every accumulated per-line failure into one error,
// since Import reports rather than aborts on each bad line.
func joinErrors(errs []error) error {
	if len(errs) == 1 {
		return errs[0]
	}
	var b strings.Builder
	b.WriteString(utl.Sf("voro: %d import errors:\n", len(errs)))
	for _, e := range errs {
		b.WriteString("  ")
		b.WriteString(e.Error())
		b.WriteString("\n")
	}
	return importErrors{msg: b.String(), errs: errs}
}

type importErrors struct {
	msg  string
	errs []error
}

func (e importErrors) Error() string { return e.msg }

// Unwrap exposes the individual per-line errors to errors.Is/As callers.
func (e importErrors) Unwrap() []error { return e.errs }
