// Copyright 2017 Jabir Ali Ouassou. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package usadel drives the self-consistency iteration between the state
// solver and the gap equation, and runs temperature sweeps on top of it
package usadel

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Status labels the stage the self-consistency iteration is in
type Status int

const (
	Initial      Status = iota // not started yet
	Solving                    // iteration in progress
	Converged                  // gap change fell below tolerance
	Critical                   // gap collapsed; system is in the normal state
	NonConverged               // iteration budget exhausted
	Failed                     // an update aborted with a solver error
)

// String returns a human readable status label
func (s Status) String() string {
	switch s {
	case Initial:
		return "initial"
	case Solving:
		return "solving"
	case Converged:
		return "converged"
	case Critical:
		return "critical"
	case NonConverged:
		return "non-converged"
	case Failed:
		return "failed"
	}
	return io.Sf("unknown(%d)", int(s))
}

// System is what the driver iterates on: a material, or a composite of
// coupled materials updated together
type System interface {
	Update() error    // one pass: re-solve states, then re-evaluate gaps
	MeanGap() float64 // spatially averaged gap magnitude
	Quench()          // zero the gap field after a transition to the normal state
	Critical() bool   // whether the gap has collapsed below the critical threshold
}

// NonConvergenceError is returned when the iteration budget runs out before
// the gap settles
type NonConvergenceError struct {
	It     int     // iterations performed
	Change float64 // relative gap change at the last iteration
}

func (e *NonConvergenceError) Error() string {
	return io.Sf("self-consistency did not converge after %d iterations (last change = %g)", e.It, e.Change)
}

// IsNonConvergence tells whether an error is a self-consistency failure
func IsNonConvergence(err error) bool {
	_, ok := err.(*NonConvergenceError)
	return ok
}

// Driver fixed-point iterates Update until the mean gap stops moving
type Driver struct {
	Sys     System  // the system to converge
	Tol     float64 // relative tolerance on the mean gap change
	Floor   float64 // mean gap below which the system is declared critical
	MaxIt   int     // iteration budget
	Verbose bool    // print per-iteration progress
	Status  Status  // current stage
	It      int     // iterations performed so far
}

// NewDriver returns a driver with default settings
func NewDriver(sys System) (o *Driver) {
	o = &Driver{Sys: sys}
	o.SetDefault()
	return
}

// SetDefault sets default driver parameters
func (o *Driver) SetDefault() {
	o.Tol = 1e-3
	o.Floor = 1e-3
	o.MaxIt = 256
	o.Status = Initial
	o.It = 0
}

// Run iterates the system to self-consistency. On success Status is either
// Converged or Critical; in the critical case the gap has been quenched to
// exactly zero. Returns a NonConvergenceError if MaxIt passes were not
// enough, and passes through any error from the underlying solver.
func (o *Driver) Run() (err error) {
	if o.Sys == nil {
		return chk.Err("driver has no system attached")
	}
	if o.MaxIt < 1 {
		return chk.Err("driver needs MaxIt >= 1")
	}
	o.Status = Solving
	prev := o.Sys.MeanGap()
	change := 0.0
	for o.It = 1; o.It <= o.MaxIt; o.It++ {
		// a solver error is not a self-consistency verdict; keep the two
		// failure modes apart in the status as well as the error type
		err = o.Sys.Update()
		if err != nil {
			o.Status = Failed
			return
		}
		mean := o.Sys.MeanGap()
		change = relchange(mean, prev)
		if o.Verbose {
			io.Pf("it %3d: gap = %23.15e  change = %10.3e\n", o.It, mean, change)
		}

		if o.Sys.Critical() {
			o.Sys.Quench()
			o.Status = Critical
			return
		}

		// the gap shrinks geometrically above Tc, so a small mean gap only
		// signals the normal state once the trend is established
		if o.It >= 2 && mean < o.Floor && mean < prev {
			o.Sys.Quench()
			o.Status = Critical
			return
		}

		if change < o.Tol {
			o.Status = Converged
			return
		}
		prev = mean
	}
	o.It = o.MaxIt
	o.Status = NonConverged
	return &NonConvergenceError{It: o.MaxIt, Change: change}
}

// relchange computes |a-b| relative to the larger magnitude; zero gaps
// compare equal
func relchange(a, b float64) float64 {
	d := a - b
	if d < 0 {
		d = -d
	}
	m := a
	if b > m {
		m = b
	}
	if m == 0 {
		return 0
	}
	return d / m
}
