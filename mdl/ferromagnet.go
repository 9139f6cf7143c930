// Copyright 2017 Jabir Ali Ouassou. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/jabirali/MasterCode/spin"
	"github.com/jabirali/MasterCode/state"
)

// Ferromagnet is a material with an exchange field and, optionally, a
// spin-orbit coupling field. It carries no gap equation; a pair potential
// only enters through an externally supplied gap field (zero by default).
type Ferromagnet struct {
	Material
	Exchange  [3]float64  // exchange field h
	SpinOrbit spin.Vector // spin-orbit coupling field A

	hs, hsc spin.Matrix // cached h·σ and (h·σ)*
	socc    spin.Vector // cached A*
	hasH    bool
	hasSoc  bool
}

// NewFerromagnet allocates a ferromagnet initialized to the normal state
func NewFerromagnet(positions, energies []float64, thouless float64, exchange [3]float64, spinOrbit spin.Vector) (o *Ferromagnet, err error) {
	mat, err := newMaterial("ferromagnet", positions, energies, thouless)
	if err != nil {
		return
	}
	o = &Ferromagnet{Material: *mat, Exchange: exchange, SpinOrbit: spinOrbit}
	o.model = o
	o.hs = spin.Pauli().Dot(exchange)
	o.hsc = o.hs.Conj()
	o.hasH = exchange != [3]float64{}
	o.socc = spinOrbit.Conj()
	o.hasSoc = spinOrbit != spin.Vector{}
	o.InitBulk(0)
	return
}

// Variant returns the variant name
func (o *Ferromagnet) Variant() string { return "ferromagnet" }

// HasGap tells that this variant has no gap equation
func (o *Ferromagnet) HasGap() bool { return false }

// UpdateGap is a no-op: the gap field is externally supplied
func (o *Ferromagnet) UpdateGap() error { return nil }

// Contribute adds the exchange-field term -(i/D) h·(σγ - γσ*) and the
// spin-orbit covariant-derivative correction, plus the conjugate-structure
// terms on the gt-branch. An externally supplied gap enters exactly as in a
// superconductor.
func (o *Ferromagnet) Contribute(ctx *Context, x float64, s *state.State, n, nt spin.Matrix, d2g, d2gt *spin.Matrix) {

	// external pair potential
	if gap := complex(ctx.Gap(x), 0); gap != 0 {
		tg := spin.ISy.Sub(s.G.Mul(spin.ISy).Mul(s.G)).Scale(gap)
		tgt := spin.ISy.Sub(s.Gt.Mul(spin.ISy).Mul(s.Gt)).Scale(gap)
		*d2g = d2g.Add(tg.Scale(ctx.Pre))
		*d2gt = d2gt.Sub(tgt.Scale(ctx.Pre))
	}

	// exchange field
	if o.hasH {
		eg := o.hs.Mul(s.G).Sub(s.G.Mul(o.hsc))
		egt := s.Gt.Mul(o.hs).Sub(o.hsc.Mul(s.Gt))
		*d2g = d2g.Add(eg.Scale(ctx.Pre))
		*d2gt = d2gt.Add(egt.Scale(ctx.Pre))
	}

	// spin-orbit coupling: algebraic gauge terms plus the first-derivative
	// term along the junction axis
	if o.hasSoc {
		var alg, algt spin.Matrix
		for k := 0; k < 3; k++ {
			a, ac := o.SpinOrbit[k], o.socc[k]

			// A²γ - γA*² and the N-mediated term (Aγ + γA*) N~ (A* + γ~Aγ)
			alg = alg.Add(a.Mul(a).Mul(s.G)).Sub(s.G.Mul(ac).Mul(ac))
			w := a.Mul(s.G).Add(s.G.Mul(ac))
			v := ac.Add(s.Gt.Mul(a).Mul(s.G))
			alg = alg.Add(w.Mul(nt).Mul(v).Scale(2))

			// conjugate structure
			algt = algt.Add(ac.Mul(ac).Mul(s.Gt)).Sub(s.Gt.Mul(a).Mul(a))
			wt := ac.Mul(s.Gt).Add(s.Gt.Mul(a))
			vt := a.Add(s.G.Mul(ac).Mul(s.Gt))
			algt = algt.Add(wt.Mul(n).Mul(vt).Scale(2))
		}
		az, azc := o.SpinOrbit[2], o.socc[2]
		dg := az.Mul(s.Dg).Add(s.Dg.Mul(azc)).Scale(2i)
		dgt := azc.Mul(s.Dgt).Add(s.Dgt.Mul(az)).Scale(-2i)
		*d2g = d2g.Sub(alg).Sub(dg)
		*d2gt = d2gt.Sub(algt).Sub(dgt)
	}
}

// SetExchange replaces the exchange field; it must not be called while an
// update is running
func (o *Ferromagnet) SetExchange(h [3]float64) {
	o.Exchange = h
	o.hs = spin.Pauli().Dot(h)
	o.hsc = o.hs.Conj()
	o.hasH = h != [3]float64{}
}

// check that the variant hooks stay wired
var _ Model = (*Superconductor)(nil)
var _ Model = (*Metal)(nil)
var _ Model = (*Ferromagnet)(nil)
