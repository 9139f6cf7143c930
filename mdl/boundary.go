// Copyright 2017 Jabir Ali Ouassou. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/cpmech/gosl/chk"

	"github.com/jabirali/MasterCode/spin"
	"github.com/jabirali/MasterCode/state"
)

// boundary kinds
const (
	FreeKind      = iota // zero-derivative boundary
	FixedKind            // fixed state sequence, direct continuity
	InterfaceKind        // Kupriyanov-Lukichev coupling to an adjacent material
)

// Boundary describes one side of a material: a free surface, a reservoir
// with a fixed state per energy, or a finite-transparency interface to an
// adjacent material. The adjacent material is shared, not owned, and must
// not be mutated while a dependent solve is running.
type Boundary struct {
	Kind   int
	Fixed  []*state.State // [len(Energies)] for FixedKind
	Other  *Material      // shared handle for InterfaceKind
	Transp float64        // interface transparency for InterfaceKind
}

// Free returns a free (zero-derivative) boundary
func Free() Boundary {
	return Boundary{Kind: FreeKind}
}

// Fixed returns a boundary pinned to the given states, one per energy
func Fixed(states []*state.State) Boundary {
	return Boundary{Kind: FixedKind, Fixed: states}
}

// Interface returns a Kupriyanov-Lukichev boundary against another material
// with the given transparency
func Interface(other *Material, transparency float64) Boundary {
	return Boundary{Kind: InterfaceKind, Other: other, Transp: transparency}
}

// bcdata is the per-energy snapshot of one boundary, taken before a solve so
// that the adjacent material is only read between synchronization points
type bcdata struct {
	kind   int
	s      *state.State // boundary state (fixed or adjacent edge)
	n      spin.Matrix  // its normalization N
	nt     spin.Matrix  // its normalization N~
	transp float64
}

// snapshot captures the boundary data for every energy. side is 0 for the
// left end and 1 for the right end of this material.
func (o *Boundary) snapshot(side int, m *Material) (bds []*bcdata, err error) {
	nene := len(m.Energies)
	bds = make([]*bcdata, nene)
	switch o.Kind {

	case FreeKind:
		for ie := 0; ie < nene; ie++ {
			bds[ie] = &bcdata{kind: FreeKind}
		}

	case FixedKind:
		if len(o.Fixed) != nene {
			return nil, chk.Err("material %q: fixed boundary has %d states for %d energies", m.Name, len(o.Fixed), nene)
		}
		for ie := 0; ie < nene; ie++ {
			bds[ie] = &bcdata{kind: FixedKind, s: o.Fixed[ie]}
		}

	case InterfaceKind:
		if o.Other == nil {
			return nil, chk.Err("material %q: interface boundary has no adjacent material", m.Name)
		}
		if len(o.Other.Energies) != nene {
			return nil, chk.Err("material %q: adjacent material %q has a different energy grid", m.Name, o.Other.Name)
		}
		// the left end of this material faces the right edge of the
		// adjacent one, and vice versa
		edge := len(o.Other.Positions) - 1
		if side == 1 {
			edge = 0
		}
		for ie := 0; ie < nene; ie++ {
			s := o.Other.States[edge][ie]
			if s == nil {
				return nil, chk.Err("material %q: adjacent material %q has uninitialized states", m.Name, o.Other.Name)
			}
			n, err1 := s.Norm()
			if err1 != nil {
				return nil, err1
			}
			nt, err1 := s.NormTilde()
			if err1 != nil {
				return nil, err1
			}
			bds[ie] = &bcdata{kind: InterfaceKind, s: s, n: n, nt: nt, transp: o.Transp}
		}

	default:
		return nil, chk.Err("material %q: unknown boundary kind %d", m.Name, o.Kind)
	}
	return
}

// residual writes the 16 boundary residual components of one side into r.
// side is 0 (left) or 1 (right); s is the trial state at that end.
func (o *bcdata) residual(side int, s *state.State, r []float64) {
	switch o.kind {

	case FreeKind:
		put8(r[0:], s.Dg)
		put8(r[8:], s.Dgt)

	case FixedKind:
		put8(r[0:], s.G.Sub(o.s.G))
		put8(r[8:], s.Gt.Sub(o.s.Gt))

	case InterfaceKind:
		// Kupriyanov-Lukichev matching: the derivative of the Riccati
		// parameter follows the difference across the interface, scaled
		// by the transparency; the sign tracks the outward normal
		t := complex(o.transp, 0)
		mg := spin.Id.Sub(s.G.Mul(o.s.Gt)).Mul(o.n).Mul(s.G.Sub(o.s.G)).Scale(t)
		mgt := spin.Id.Sub(s.Gt.Mul(o.s.G)).Mul(o.nt).Mul(s.Gt.Sub(o.s.Gt)).Scale(t)
		if side == 0 {
			put8(r[0:], s.Dg.Sub(mg))
			put8(r[8:], s.Dgt.Sub(mgt))
		} else {
			put8(r[0:], s.Dg.Add(mg))
			put8(r[8:], s.Dgt.Add(mgt))
		}
	}
}

// put8 writes the 8 real components of a 2x2 complex matrix
func put8(r []float64, m spin.Matrix) {
	k := 0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			r[k] = real(m[i][j])
			r[k+1] = imag(m[i][j])
			k += 2
		}
	}
}
