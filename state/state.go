// Copyright 2017 Jabir Ali Ouassou. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package state implements the Riccati-parametrized retarded Green's function
// at one (position, energy) point
package state

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/jabirali/MasterCode/spin"
)

// Nvec is the length of the flat interchange vector: the four 2x2 complex
// matrices g, gt, dg, dgt as real/imaginary pairs
const Nvec = 32

// State holds the two Riccati parameters and their spatial derivatives
type State struct {
	G   spin.Matrix // Riccati parameter γ
	Gt  spin.Matrix // tilde-conjugated Riccati parameter γ~
	Dg  spin.Matrix // dγ/dx
	Dgt spin.Matrix // dγ~/dx
}

// SingularityError reports a near-singular normalization matrix. The solver
// must abort the evaluation of the offending point instead of propagating
// NaN or Inf values.
type SingularityError struct {
	Det complex128 // determinant of I - γγ~ (or I - γ~γ)
}

func (e *SingularityError) Error() string {
	return io.Sf("state: normalization matrix is near-singular (det = %v)", e.Det)
}

// IsSingularity tells whether err is a SingularityError
func IsSingularity(err error) bool {
	_, ok := err.(*SingularityError)
	return ok
}

// New returns a State with the given Riccati parameters and zero derivatives
func New(g, gt spin.Matrix) *State {
	return &State{G: g, Gt: gt}
}

// NewFromVector returns a State decoded from a flat vector of length Nvec
func NewFromVector(v []float64) (o *State, err error) {
	if len(v) != Nvec {
		err = chk.Err("state: flat vector must have length %d (got %d)", Nvec, len(v))
		return
	}
	o = new(State)
	o.FromVector(v)
	return
}

// FromVector decodes the flat vector v into o. len(v) must be Nvec.
func (o *State) FromVector(v []float64) {
	k := 0
	for _, m := range []*spin.Matrix{&o.G, &o.Gt, &o.Dg, &o.Dgt} {
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				m[i][j] = complex(v[k], v[k+1])
				k += 2
			}
		}
	}
}

// ToVector encodes o into the flat vector v. len(v) must be Nvec.
func (o *State) ToVector(v []float64) {
	k := 0
	for _, m := range []*spin.Matrix{&o.G, &o.Gt, &o.Dg, &o.Dgt} {
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				v[k] = real(m[i][j])
				v[k+1] = imag(m[i][j])
				k += 2
			}
		}
	}
}

// Vectorize returns the flat form of o; the exact inverse of NewFromVector
func (o *State) Vectorize() (v []float64) {
	v = make([]float64, Nvec)
	o.ToVector(v)
	return
}

// Norm returns N = (I - γγ~)⁻¹
func (o *State) Norm() (n spin.Matrix, err error) {
	a := spin.Id.Sub(o.G.Mul(o.Gt))
	n, err = a.Inv()
	if err != nil {
		err = &SingularityError{Det: a.Det()}
	}
	return
}

// NormTilde returns N~ = (I - γ~γ)⁻¹
func (o *State) NormTilde() (n spin.Matrix, err error) {
	a := spin.Id.Sub(o.Gt.Mul(o.G))
	n, err = a.Inv()
	if err != nil {
		err = &SingularityError{Det: a.Det()}
	}
	return
}

// Dos returns the local density of states, normalized to unity in the
// normal state: Re tr[N(I + γγ~)]/2
func (o *State) Dos() (dos float64, err error) {
	n, err := o.Norm()
	if err != nil {
		return
	}
	g := n.Mul(spin.Id.Add(o.G.Mul(o.Gt)))
	dos = real(g.Tr()) / 2.0
	return
}

// anomalous returns the pairing matrix F(iσy) = f_s + f_t·σ
func (o *State) anomalous() (m spin.Matrix, err error) {
	n, err := o.Norm()
	if err != nil {
		return
	}
	m = n.Mul(o.G).Scale(2).Mul(spin.ISy)
	return
}

// Singlet returns the singlet pairing amplitude f_s
func (o *State) Singlet() (fs complex128, err error) {
	m, err := o.anomalous()
	if err != nil {
		return
	}
	fs = m.Tr() / 2.0
	return
}

// Triplet returns the triplet pairing vector f_t
func (o *State) Triplet() (ft [3]complex128, err error) {
	m, err := o.anomalous()
	if err != nil {
		return
	}
	for k, s := range spin.Pauli() {
		ft[k] = s.Mul(m).Tr() / 2.0
	}
	return
}
