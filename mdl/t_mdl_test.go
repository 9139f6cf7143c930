// Copyright 2017 Jabir Ali Ouassou. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/jabirali/MasterCode/ana"
)

// converge iterates the self-consistency fixed point until the averaged gap
// settles; the bounded driver lives one package up, so tests loop directly
func converge(tst *testing.T, s *Superconductor, maxit int) bool {
	prev := s.MeanGap()
	for it := 0; it < maxit; it++ {
		if err := s.Update(); err != nil {
			tst.Errorf("Update failed:\n%v", err)
			return false
		}
		cur := s.MeanGap()
		if math.Abs(cur-prev) <= 1e-4*math.Max(prev, 1e-3) {
			return true
		}
		prev = cur
	}
	tst.Errorf("gap did not settle within %d iterations (gap = %g)", maxit, prev)
	return false
}

func Test_mdl01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mdl01. bulk BCS limit: converged gap is unity")

	strength := 0.2
	cutoff := ana.Cutoff(strength)
	energies := EnergyGrid(cutoff, 240)
	s, err := NewSuperconductor([]float64{0}, energies, 0.01, strength)
	if err != nil {
		tst.Errorf("NewSuperconductor failed:\n%v", err)
		return
	}
	s.Temp = 0
	if !converge(tst, s, 100) {
		return
	}
	io.Pforan("bulk gap = %v\n", s.MeanGap())
	chk.Scalar(tst, "gap", 0.1, s.MeanGap(), 1.0)
	if s.Critical() {
		tst.Errorf("a gapped superconductor must not report critical")
	}
}

func Test_mdl02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mdl02. gap is monotone in the coupling strength")

	cutoff := ana.Cutoff(0.2)
	energies := EnergyGrid(cutoff, 240)
	var gaps []float64
	for _, strength := range []float64{0.18, 0.20, 0.22} {
		s, err := NewSuperconductor([]float64{0}, energies, 0.01, strength)
		if err != nil {
			tst.Errorf("NewSuperconductor failed:\n%v", err)
			return
		}
		s.Temp = 0
		if !converge(tst, s, 200) {
			return
		}
		gaps = append(gaps, s.MeanGap())
	}
	io.Pforan("gaps = %v\n", gaps)
	for i := 1; i < len(gaps); i++ {
		if gaps[i] < gaps[i-1] {
			tst.Errorf("gap decreased with increasing coupling: %v", gaps)
			return
		}
	}
}

func Test_mdl03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mdl03. gap field access, quench and validation")

	energies := EnergyGrid(3, 40)
	m, err := NewMetal([]float64{0, 0.25, 0.5, 0.75, 1}, energies, 1.0)
	if err != nil {
		tst.Errorf("NewMetal failed:\n%v", err)
		return
	}

	// externally supplied gap field and its interpolation
	err = m.SetGap([]float64{1, 2, 4, 2, 1})
	if err != nil {
		tst.Errorf("SetGap failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "gap at node", 1e-15, m.GapAt(0.5), 4)
	mid := m.GapAt(0.375)
	if mid < 2 || mid > 4 {
		tst.Errorf("shape-preserving interpolation left the data range: %v", mid)
	}
	chk.Scalar(tst, "mean gap", 1e-15, m.MeanGap(), 2)

	// only gap-carrying variants can go critical, and quenching gets them
	// there
	if m.Critical() {
		tst.Errorf("a normal metal must never report critical")
	}
	s, err := NewSuperconductor([]float64{0}, energies, 1.0, 0.2)
	if err != nil {
		tst.Errorf("NewSuperconductor failed:\n%v", err)
		return
	}
	if s.Critical() {
		tst.Errorf("material with finite gap must not be critical")
	}
	s.Quench()
	if !s.Critical() {
		tst.Errorf("quenched material must be critical")
	}

	// invalid grids are rejected
	if _, err = NewMetal([]float64{0, 0}, energies, 1.0); err == nil {
		tst.Errorf("non-increasing positions should be rejected")
	}
	if _, err = NewMetal([]float64{0}, []float64{-1, 1}, 1.0); err == nil {
		tst.Errorf("negative energies should be rejected")
	}
	if _, err = NewMetal([]float64{0}, energies, 0); err == nil {
		tst.Errorf("zero diffusion constant should be rejected")
	}
}
