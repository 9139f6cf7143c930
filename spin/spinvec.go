// Copyright 2017 Jabir Ali Ouassou. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spin

import "math"

// Vector is an ordered triple of 2x2 complex matrices representing a
// matrix-valued vector field such as a spin-orbit coupling
type Vector [3]Matrix

// Pauli returns the Pauli vector (Sx, Sy, Sz)
func Pauli() Vector {
	return Vector{Sx, Sy, Sz}
}

// Scale returns z*v componentwise
func (v Vector) Scale(z complex128) Vector {
	return Vector{v[0].Scale(z), v[1].Scale(z), v[2].Scale(z)}
}

// Add returns v + w componentwise
func (v Vector) Add(w Vector) Vector {
	return Vector{v[0].Add(w[0]), v[1].Add(w[1]), v[2].Add(w[2])}
}

// Conj returns the componentwise complex conjugate of v
func (v Vector) Conj() Vector {
	return Vector{v[0].Conj(), v[1].Conj(), v[2].Conj()}
}

// Dot contracts v with a real 3-vector; e.g. Pauli().Dot(h) builds the
// exchange-field matrix h·σ
func (v Vector) Dot(h [3]float64) (a Matrix) {
	a = v[0].Scale(complex(h[0], 0))
	a = a.Add(v[1].Scale(complex(h[1], 0)))
	a = a.Add(v[2].Scale(complex(h[2], 0)))
	return
}

// DotVec contracts v with another matrix triple: Σ_k v_k * w_k
func (v Vector) DotVec(w Vector) (a Matrix) {
	a = v[0].Mul(w[0])
	a = a.Add(v[1].Mul(w[1]))
	a = a.Add(v[2].Mul(w[2]))
	return
}

// RashbaDresselhaus returns the spin-orbit field of a two-dimensional
// Rashba-Dresselhaus coupling with total magnitude strength and mixing
// angle. angle=0 is pure Dresselhaus, angle=π/2 is pure Rashba; the
// component along the junction axis vanishes.
func RashbaDresselhaus(strength, angle float64) Vector {
	alpha := strength * math.Sin(angle)
	beta := strength * math.Cos(angle)
	return Vector{
		Sy.Scale(complex(alpha, 0)).Add(Sx.Scale(complex(beta, 0))),
		Sx.Scale(complex(-alpha, 0)).Add(Sy.Scale(complex(-beta, 0))),
		{},
	}
}
