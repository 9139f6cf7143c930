// Copyright 2017 Jabir Ali Ouassou. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"math/cmplx"

	"github.com/jabirali/MasterCode/spin"
)

// Bulk returns the equilibrium BCS state of a uniform superconductor at the
// given quasiparticle energy and gap. delta is a small imaginary energy
// offset regularizing the branch point at |energy| == gap.
//
//   θ  = atanh(Δ/(ε+iδ))
//   γ  = -sinh(θ)/(1+cosh(θ)) iσy
//   γ~ = -γ
//
// It is used both as initial condition inside a superconductor and as a
// fixed boundary condition for an adjacent layer.
func Bulk(energy, gap, delta float64) *State {
	th := cmplx.Atanh(complex(gap, 0) / complex(energy, delta))
	t := cmplx.Sinh(th) / (1 + cmplx.Cosh(th))
	g := spin.ISy.Scale(-t)
	return New(g, g.Scale(-1))
}
