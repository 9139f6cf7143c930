// Copyright 2017 Jabir Ali Ouassou. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package spin implements the 2x2 complex spin-space algebra used to assemble
// Hamiltonian terms for the Usadel equation
package spin

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// DetTol is the determinant magnitude below which a matrix is treated as
// numerically singular
var DetTol = 1e-12

// Matrix is a 2x2 complex matrix stored by value
type Matrix [2][2]complex128

// Pauli matrices and derived constants
var (
	Id  = Matrix{{1, 0}, {0, 1}}    // identity
	Sx  = Matrix{{0, 1}, {1, 0}}    // Pauli x
	Sy  = Matrix{{0, -1i}, {1i, 0}} // Pauli y
	Sz  = Matrix{{1, 0}, {0, -1}}   // Pauli z
	ISy = Sy.Scale(1i)              // i*Sy == antisymmetric real matrix
)

// Add returns a + b
func (a Matrix) Add(b Matrix) Matrix {
	return Matrix{
		{a[0][0] + b[0][0], a[0][1] + b[0][1]},
		{a[1][0] + b[1][0], a[1][1] + b[1][1]},
	}
}

// Sub returns a - b
func (a Matrix) Sub(b Matrix) Matrix {
	return Matrix{
		{a[0][0] - b[0][0], a[0][1] - b[0][1]},
		{a[1][0] - b[1][0], a[1][1] - b[1][1]},
	}
}

// Mul returns the matrix product a*b
func (a Matrix) Mul(b Matrix) Matrix {
	return Matrix{
		{
			a[0][0]*b[0][0] + a[0][1]*b[1][0],
			a[0][0]*b[0][1] + a[0][1]*b[1][1],
		},
		{
			a[1][0]*b[0][0] + a[1][1]*b[1][0],
			a[1][0]*b[0][1] + a[1][1]*b[1][1],
		},
	}
}

// Scale returns z*a
func (a Matrix) Scale(z complex128) Matrix {
	return Matrix{
		{z * a[0][0], z * a[0][1]},
		{z * a[1][0], z * a[1][1]},
	}
}

// Conj returns the elementwise complex conjugate of a
func (a Matrix) Conj() Matrix {
	return Matrix{
		{conj(a[0][0]), conj(a[0][1])},
		{conj(a[1][0]), conj(a[1][1])},
	}
}

// Tr returns the trace of a
func (a Matrix) Tr() complex128 {
	return a[0][0] + a[1][1]
}

// Det returns the determinant of a
func (a Matrix) Det() complex128 {
	return a[0][0]*a[1][1] - a[0][1]*a[1][0]
}

// Inv returns the inverse of a. An error is returned when the determinant
// magnitude falls below DetTol.
func (a Matrix) Inv() (b Matrix, err error) {
	d := a.Det()
	if cabs(d) < DetTol {
		err = chk.Err("spin: cannot invert near-singular matrix (det = %v)", d)
		return
	}
	b = Matrix{
		{a[1][1] / d, -a[0][1] / d},
		{-a[1][0] / d, a[0][0] / d},
	}
	return
}

func (a Matrix) String() string {
	return io.Sf("[%v %v; %v %v]", a[0][0], a[0][1], a[1][0], a[1][1])
}

func conj(z complex128) complex128 {
	return complex(real(z), -imag(z))
}

func cabs(z complex128) float64 {
	re, im := real(z), imag(z)
	if re < 0 {
		re = -re
	}
	if im < 0 {
		im = -im
	}
	return re + im // L1 magnitude; only compared against DetTol
}
