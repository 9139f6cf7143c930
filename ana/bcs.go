// Copyright 2017 Jabir Ali Ouassou. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana provides analytic BCS reference solutions
package ana

import "math"

// TcOverGap is the BCS ratio between the critical temperature and the
// zero-temperature gap: e^γ/π
const TcOverGap = 0.566932815232199

// Dos returns the BCS bulk density of states, normalized to the normal state
//
//   N(ε)/N0 = |ε|/√(ε²-Δ²)   for |ε| > Δ
//             0               for |ε| < Δ
func Dos(energy, gap float64) float64 {
	e := math.Abs(energy)
	if e <= gap {
		return 0
	}
	return e / math.Sqrt(e*e-gap*gap)
}

// Singlet returns the bulk singlet amplitude Re f_s = Δ/√(ε²-Δ²) above the
// gap and 0 below it
func Singlet(energy, gap float64) float64 {
	e := math.Abs(energy)
	if e <= gap {
		return 0
	}
	return gap / math.Sqrt(e*e-gap*gap)
}

// BulkGap0 returns the zero-temperature gap solving Δ = λ Δ acosh(εc/Δ),
// the weak-coupling gap equation with energy cutoff εc:
//
//   Δ0 = εc / cosh(1/λ)
//
// With the conventional cutoff εc = cosh(1/λ) the gap is exactly 1.
func BulkGap0(strength, cutoff float64) float64 {
	return cutoff / math.Cosh(1.0/strength)
}

// Cutoff returns the energy cutoff cosh(1/λ) tied to the coupling strength,
// which normalizes the zero-temperature bulk gap to unity
func Cutoff(strength float64) float64 {
	return math.Cosh(1.0 / strength)
}
