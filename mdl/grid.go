// Copyright 2017 Jabir Ali Ouassou. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// EnergyGrid returns a strictly increasing quasiparticle energy grid on
// [0, cutoff] with n nodes, refined around the gap edge at unit energy
// where the singlet amplitude has an integrable singularity
func EnergyGrid(cutoff float64, n int) (grid []float64) {
	if cutoff <= 2 || n < 8 {
		return utl.LinSpace(0, cutoff, n)
	}

	// quarter of the nodes below the edge region, half inside a dense band
	// around the edge, and the rest log-spaced up to the cutoff
	n1, n2 := n/4, n/2
	n3 := n - n1 - n2
	a := utl.LinSpace(0, 0.8, n1+1)
	b := utl.LinSpace(0.8, 1.2, n2+1)
	grid = append(grid, a[:n1]...)
	grid = append(grid, b[:n2]...)
	c := utl.LinSpace(math.Log(1.2), math.Log(cutoff), n3)
	for _, l := range c {
		grid = append(grid, math.Exp(l))
	}
	return
}
