// Copyright 2017 Jabir Ali Ouassou. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usadel

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/jabirali/MasterCode/ana"
	"github.com/jabirali/MasterCode/mdl"
)

// relaxer is a toy system whose gap relaxes geometrically towards a target;
// it converges the way a superconductor near equilibrium does
type relaxer struct {
	gap    float64
	target float64
	rate   float64
	crit   bool
}

func (o *relaxer) Update() error {
	o.gap += o.rate * (o.target - o.gap)
	return nil
}
func (o *relaxer) MeanGap() float64 { return math.Abs(o.gap) }
func (o *relaxer) Quench()          { o.gap = 0 }
func (o *relaxer) Critical() bool   { return o.crit }

func Test_driver01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("driver01. convergence and iteration counting")

	sys := &relaxer{gap: 0.5, target: 1.0, rate: 0.5}
	drv := NewDriver(sys)
	drv.Tol = 1e-6
	err := drv.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	if drv.Status != Converged {
		tst.Errorf("status should be converged; got %v", drv.Status)
		return
	}
	io.Pforan("it = %d, gap = %v\n", drv.It, sys.gap)
	chk.Scalar(tst, "gap", 1e-5, sys.gap, 1.0)
	if drv.It < 2 {
		tst.Errorf("a tight tolerance should need more than one iteration")
	}
}

func Test_driver02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("driver02. iteration budget exhaustion")

	sys := &relaxer{gap: 0.5, target: 1.0, rate: 0.5}
	drv := NewDriver(sys)
	drv.Tol = 0 // unreachable
	drv.MaxIt = 3
	err := drv.Run()
	if err == nil {
		tst.Errorf("Run should have failed")
		return
	}
	if !IsNonConvergence(err) {
		tst.Errorf("error should be a non-convergence error; got %v", err)
		return
	}
	if drv.Status != NonConverged {
		tst.Errorf("status should be non-converged; got %v", drv.Status)
	}
}

func Test_driver03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("driver03. gap collapse is detected and quenched")

	// shrinks towards zero; never below the critical threshold by itself,
	// so the floor heuristic has to catch it
	sys := &relaxer{gap: 0.01, target: 0, rate: 0.5}
	drv := NewDriver(sys)
	drv.Floor = 1e-2
	err := drv.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	if drv.Status != Critical {
		tst.Errorf("status should be critical; got %v", drv.Status)
		return
	}
	chk.Scalar(tst, "quenched gap", 1e-15, sys.gap, 0)
	if drv.It < 2 {
		tst.Errorf("the floor exit must wait for a decreasing trend")
	}

	// the hard critical flag triggers immediately
	sys = &relaxer{gap: 0.5, target: 0.5, rate: 1, crit: true}
	drv = NewDriver(sys)
	err = drv.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	if drv.Status != Critical {
		tst.Errorf("status should be critical; got %v", drv.Status)
	}
}

// breaker relaxes normally until its budget of good updates runs out, then
// fails the way a material does when a state solve blows up
type breaker struct {
	relaxer
	good  int
	calls int
}

func (o *breaker) Update() error {
	o.calls++
	if o.calls > o.good {
		return chk.Err("state solve failed")
	}
	return o.relaxer.Update()
}

func Test_driver04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("driver04. update errors are passed through, not relabeled")

	sys := &breaker{relaxer: relaxer{gap: 0.5, target: 1.0, rate: 0.1}, good: 2}
	drv := NewDriver(sys)
	drv.Tol = 1e-12 // out of reach within two good updates
	err := drv.Run()
	if err == nil {
		tst.Errorf("Run should have surfaced the update error")
		return
	}
	if IsNonConvergence(err) {
		tst.Errorf("an update error must not look like an iteration budget failure")
		return
	}
	if drv.Status != Failed {
		tst.Errorf("status should be failed; got %v", drv.Status)
		return
	}
	chk.IntAssert(sys.calls, 3)
}

func Test_driver05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("driver05. bulk superconductor reaches the BCS gap")

	strength := 0.2
	energies := mdl.EnergyGrid(ana.Cutoff(strength), 240)
	s, err := mdl.NewSuperconductor([]float64{0}, energies, 0.01, strength)
	if err != nil {
		tst.Errorf("NewSuperconductor failed:\n%v", err)
		return
	}
	s.SetGap([]float64{0.5}) // start well away from the fixed point
	drv := NewDriver(s)
	err = drv.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	if drv.Status != Converged {
		tst.Errorf("status should be converged; got %v", drv.Status)
		return
	}
	io.Pforan("gap = %v after %d iterations\n", s.MeanGap(), drv.It)
	chk.Scalar(tst, "bulk gap", 0.05, s.MeanGap(), 1.0)
}
