// Copyright 2017 Jabir Ali Ouassou. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/interp"

	"github.com/jabirali/MasterCode/spin"
	"github.com/jabirali/MasterCode/state"
)

// Superconductor is a material with a self-consistent order parameter. The
// gap field is updated from the singlet amplitude via the gap equation; the
// largest configured energy acts as the cutoff of the energy integral.
type Superconductor struct {
	Material
	Strength float64 // dimensionless BCS coupling constant
}

// NewSuperconductor allocates a superconductor initialized to the bulk BCS
// state with unit gap. The energy grid should extend to cosh(1/strength) so
// that the gap integral is not truncation-limited.
func NewSuperconductor(positions, energies []float64, thouless, strength float64) (o *Superconductor, err error) {
	if strength <= 0 {
		return nil, chk.Err("superconductor: coupling strength must be positive (got %g)", strength)
	}
	mat, err := newMaterial("superconductor", positions, energies, thouless)
	if err != nil {
		return
	}
	o = &Superconductor{Material: *mat, Strength: strength}
	o.model = o
	o.InitBulk(1.0)
	return
}

// Variant returns the variant name
func (o *Superconductor) Variant() string { return "superconductor" }

// HasGap tells that this variant carries a gap equation
func (o *Superconductor) HasGap() bool { return true }

// Contribute adds the pair-potential term of the Usadel equation:
//
//   g-branch:  -(i/D) Δ(x) (iσy - γ iσy γ)
//   gt-branch: +(i/D) Δ(x) (iσy - γ~ iσy γ~)
func (o *Superconductor) Contribute(ctx *Context, x float64, s *state.State, n, nt spin.Matrix, d2g, d2gt *spin.Matrix) {
	gap := complex(ctx.Gap(x), 0)
	if gap == 0 {
		return
	}
	tg := spin.ISy.Sub(s.G.Mul(spin.ISy).Mul(s.G)).Scale(gap)
	tgt := spin.ISy.Sub(s.Gt.Mul(spin.ISy).Mul(s.Gt)).Scale(gap)
	*d2g = d2g.Add(tg.Scale(ctx.Pre))
	*d2gt = d2gt.Sub(tgt.Scale(ctx.Pre))
}

// UpdateGap solves the gap equation at every position: a shape-preserving
// cubic is fitted through the singlet amplitude samples, weighted by the
// thermal kernel tanh(ε/2T), integrated from zero to the energy cutoff, and
// scaled by the coupling constant.
func (o *Superconductor) UpdateGap() (err error) {
	nene := len(o.Energies)
	emax := o.Energies[nene-1]
	xs := utl.LinSpace(0, emax, o.Par.Nquad)
	fs := make([]float64, nene)
	ys := make([]float64, o.Par.Nquad)

	for ip := range o.Positions {

		// singlet amplitude across energies at this position
		for ie := 0; ie < nene; ie++ {
			c, err1 := o.States[ip][ie].Singlet()
			if err1 != nil {
				return err1
			}
			fs[ie] = real(c)
		}

		// thermal kernel on a fine uniform grid
		pc := new(interp.FritschButland)
		err = pc.Fit(o.Energies, fs)
		if err != nil {
			return chk.Err("superconductor: singlet interpolation failed: %v", err)
		}
		for iq, e := range xs {
			ys[iq] = pc.Predict(e) * o.kernel(e)
		}
		o.GapField[ip] = o.Strength * integrate.Simpsons(xs, ys)
	}
	return
}

// kernel returns tanh(ε/2T), the thermal occupation factor of the gap
// equation; 1 in the zero-temperature limit
func (o *Superconductor) kernel(e float64) float64 {
	if o.Temp <= 0 {
		return 1
	}
	return math.Tanh(e / (2 * o.Temp))
}
