// Copyright 2017 Jabir Ali Ouassou. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spin

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func checkmat(tst *testing.T, msg string, tol float64, a, b Matrix) {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			chk.Scalar(tst, io.Sf("%s[%d][%d] re", msg, i, j), tol, real(a[i][j]), real(b[i][j]))
			chk.Scalar(tst, io.Sf("%s[%d][%d] im", msg, i, j), tol, imag(a[i][j]), imag(b[i][j]))
		}
	}
}

func Test_spin01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spin01. Pauli algebra")

	// products: σx σy = i σz and cyclic
	checkmat(tst, "σx*σy", 1e-17, Sx.Mul(Sy), Sz.Scale(1i))
	checkmat(tst, "σy*σz", 1e-17, Sy.Mul(Sz), Sx.Scale(1i))
	checkmat(tst, "σz*σx", 1e-17, Sz.Mul(Sx), Sy.Scale(1i))

	// squares are the identity
	checkmat(tst, "σx²", 1e-17, Sx.Mul(Sx), Id)
	checkmat(tst, "σy²", 1e-17, Sy.Mul(Sy), Id)
	checkmat(tst, "σz²", 1e-17, Sz.Mul(Sz), Id)

	// (iσy)² = -1
	checkmat(tst, "(iσy)²", 1e-17, ISy.Mul(ISy), Id.Scale(-1))

	// traces and determinants
	chk.Scalar(tst, "tr σz", 1e-17, real(Sz.Tr()), 0)
	chk.Scalar(tst, "det σy", 1e-17, real(Sy.Det()), -1)
}

func Test_spin02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spin02. inverse and singularity detection")

	a := Matrix{{2, 1i}, {-1i, 3}}
	b, err := a.Inv()
	if err != nil {
		tst.Errorf("Inv failed:\n%v", err)
		return
	}
	checkmat(tst, "a*a⁻¹", 1e-15, a.Mul(b), Id)
	checkmat(tst, "a⁻¹*a", 1e-15, b.Mul(a), Id)

	// projector (1+σz)/2 is singular
	p := Id.Add(Sz).Scale(0.5)
	_, err = p.Inv()
	if err == nil {
		tst.Errorf("Inv should have failed for a singular matrix")
	}
}

func Test_spin03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spin03. spin vectors and Rashba-Dresselhaus fields")

	// exchange matrix h·σ is traceless and hermitian for real h
	h := [3]float64{0.5, -1.5, 2.0}
	m := Pauli().Dot(h)
	chk.Scalar(tst, "tr h·σ re", 1e-15, real(m.Tr()), 0)
	chk.Scalar(tst, "tr h·σ im", 1e-15, imag(m.Tr()), 0)
	checkmat(tst, "hermiticity", 1e-15, m, Matrix{
		{conj(m[0][0]), conj(m[1][0])},
		{conj(m[0][1]), conj(m[1][1])},
	})

	// σ·σ = 3
	checkmat(tst, "σ·σ", 1e-15, Pauli().DotVec(Pauli()), Id.Scale(3))

	// pure Rashba and pure Dresselhaus limits
	r := RashbaDresselhaus(1.0, math.Pi/2)
	checkmat(tst, "rashba x", 1e-15, r[0], Sy)
	checkmat(tst, "rashba y", 1e-15, r[1], Sx.Scale(-1))
	d := RashbaDresselhaus(1.0, 0)
	checkmat(tst, "dressel x", 1e-15, d[0], Sx)
	checkmat(tst, "dressel y", 1e-15, d[1], Sy.Scale(-1))
	checkmat(tst, "inplane z", 1e-17, d[2], Matrix{})
}
