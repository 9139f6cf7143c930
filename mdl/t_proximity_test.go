// Copyright 2017 Jabir Ali Ouassou. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/jabirali/MasterCode/spin"
	"github.com/jabirali/MasterCode/state"
)

// bcsBoundary returns a fixed bulk BCS reservoir, one state per energy
func bcsBoundary(energies []float64, gap, delta float64) (states []*state.State) {
	states = make([]*state.State, len(energies))
	for ie, e := range energies {
		states[ie] = state.Bulk(e, gap, delta)
	}
	return
}

func Test_prox01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prox01. proximity effect in a normal metal")

	energies := []float64{0.25, 0.75, 1.5, 3.0}
	positions := utl.LinSpace(0, 1, 5)
	m, err := NewMetal(positions, energies, 1.0)
	if err != nil {
		tst.Errorf("NewMetal failed:\n%v", err)
		return
	}
	m.Left = Fixed(bcsBoundary(energies, 1.0, m.Par.Delta))
	m.Right = Free()

	err = m.UpdateState()
	if err != nil {
		tst.Errorf("UpdateState failed:\n%v", err)
		return
	}

	for ie := range energies {

		// normalization stays regular on the whole grid
		for ip := range positions {
			s := m.States[ip][ie]
			if _, err = s.Norm(); err != nil {
				tst.Errorf("singular state at ip=%d ie=%d:\n%v", ip, ie, err)
				return
			}
			dos, err1 := s.Dos()
			if err1 != nil {
				tst.Errorf("Dos failed:\n%v", err1)
				return
			}
			if math.IsNaN(dos) || math.IsInf(dos, 0) {
				tst.Errorf("dos is not finite at ip=%d ie=%d", ip, ie)
				return
			}
		}

		// induced singlet correlations decay away from the reservoir
		fa, err1 := m.States[0][ie].Singlet()
		if err1 != nil {
			tst.Errorf("Singlet failed:\n%v", err1)
			return
		}
		fb, err1 := m.States[len(positions)-1][ie].Singlet()
		if err1 != nil {
			tst.Errorf("Singlet failed:\n%v", err1)
			return
		}
		amag, bmag := cmag(fa), cmag(fb)
		io.Pforan("e=%4.2f  |f(0)|=%v  |f(1)|=%v\n", energies[ie], amag, bmag)
		if amag < 1e-6 {
			tst.Errorf("no correlations induced at the reservoir side (e=%g)", energies[ie])
			return
		}
		if bmag > amag {
			tst.Errorf("correlations grew away from the reservoir (e=%g)", energies[ie])
			return
		}
	}
}

func Test_prox02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prox02. Kupriyanov-Lukichev interface to a superconductor")

	energies := []float64{0.25, 0.75, 1.5, 3.0}
	s, err := NewSuperconductor(utl.LinSpace(0, 1, 3), energies, 1.0, 0.2)
	if err != nil {
		tst.Errorf("NewSuperconductor failed:\n%v", err)
		return
	}

	m, err := NewMetal(utl.LinSpace(0, 1, 5), energies, 1.0)
	if err != nil {
		tst.Errorf("NewMetal failed:\n%v", err)
		return
	}
	m.Left = Interface(&s.Material, 0.3)

	// only the metal is updated; the superconductor acts as a frozen,
	// read-only neighbor during this solve
	err = m.UpdateState()
	if err != nil {
		tst.Errorf("UpdateState failed:\n%v", err)
		return
	}

	f0, err := m.States[0][0].Singlet()
	if err != nil {
		tst.Errorf("Singlet failed:\n%v", err)
		return
	}
	if cmag(f0) < 1e-8 {
		tst.Errorf("interface induced no correlations: |f| = %v", cmag(f0))
	}

	// a transparency of zero decouples the layers completely
	m2, err := NewMetal(utl.LinSpace(0, 1, 5), energies, 1.0)
	if err != nil {
		tst.Errorf("NewMetal failed:\n%v", err)
		return
	}
	m2.Left = Interface(&s.Material, 0)
	err = m2.UpdateState()
	if err != nil {
		tst.Errorf("UpdateState failed:\n%v", err)
		return
	}
	g0, err := m2.States[2][0].Singlet()
	if err != nil {
		tst.Errorf("Singlet failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "decoupled singlet", 1e-6, cmag(g0), 0)
}

func Test_prox03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prox03. exchange field generates triplet correlations")

	energies := []float64{0.25, 0.75, 1.5}
	f, err := NewFerromagnet(utl.LinSpace(0, 1, 5), energies, 1.0, [3]float64{0, 0, 0.5}, spin.Vector{})
	if err != nil {
		tst.Errorf("NewFerromagnet failed:\n%v", err)
		return
	}
	f.Left = Fixed(bcsBoundary(energies, 1.0, f.Par.Delta))

	err = f.UpdateState()
	if err != nil {
		tst.Errorf("UpdateState failed:\n%v", err)
		return
	}

	// an exchange field along z converts singlets into the z-triplet
	ft, err := f.States[1][0].Triplet()
	if err != nil {
		tst.Errorf("Triplet failed:\n%v", err)
		return
	}
	io.Pforan("f_t = %v\n", ft)
	if cmag(ft[2]) < 1e-8 {
		tst.Errorf("no triplet component generated: %v", ft)
	}
	fs, err := f.States[1][0].Singlet()
	if err != nil {
		tst.Errorf("Singlet failed:\n%v", err)
		return
	}
	if cmag(fs) < 1e-8 {
		tst.Errorf("singlet component vanished entirely: %v", fs)
	}
}

func cmag(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}
