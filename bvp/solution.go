// Copyright 2017 Jabir Ali Ouassou. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bvp

// Solution is the continuous extension of a converged collocation solve: a
// cubic Hermite interpolant through the nodal values and derivatives
type Solution struct {
	X    []float64   // mesh nodes
	Y    [][]float64 // nodal solution values [len(X)][Ndim]
	F    [][]float64 // nodal derivatives [len(X)][Ndim]
	Ndim int         // dimension of the vector field
}

// interval locates the mesh interval containing x, clamping to the ends
func (o *Solution) interval(x float64) int {
	lo, hi := 0, len(o.X)-2
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if x >= o.X[mid] {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// At evaluates the solution at x into y (len Ndim)
func (o *Solution) At(x float64, y []float64) {
	i := o.interval(x)
	h := o.X[i+1] - o.X[i]
	t := (x - o.X[i]) / h

	// Hermite basis
	h00 := (1 + 2*t) * (1 - t) * (1 - t)
	h10 := t * (1 - t) * (1 - t)
	h01 := t * t * (3 - 2*t)
	h11 := t * t * (t - 1)
	for k := 0; k < o.Ndim; k++ {
		y[k] = h00*o.Y[i][k] + h*h10*o.F[i][k] + h01*o.Y[i+1][k] + h*h11*o.F[i+1][k]
	}
}

// Deriv evaluates the derivative of the continuous extension at x into dy
func (o *Solution) Deriv(x float64, dy []float64) {
	i := o.interval(x)
	h := o.X[i+1] - o.X[i]
	t := (x - o.X[i]) / h

	d00 := 6 * t * (t - 1) / h
	d10 := (1 - t) * (1 - 3*t)
	d01 := -d00
	d11 := t * (3*t - 2)
	for k := 0; k < o.Ndim; k++ {
		dy[k] = d00*o.Y[i][k] + d10*o.F[i][k] + d01*o.Y[i+1][k] + d11*o.F[i+1][k]
	}
}
