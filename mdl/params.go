// Copyright 2017 Jabir Ali Ouassou. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl implements the materials whose Green's functions are governed
// by the Usadel equation: superconductors, normal metals and ferromagnets
package mdl

// Params holds the numerical parameters of a material. Every tolerance the
// solver relies on lives here instead of being hard-coded.
type Params struct {
	Delta    float64 // imaginary energy offset regularizing the gap edge
	Atol     float64 // BVP absolute tolerance
	Rtol     float64 // BVP relative tolerance
	MaxNodes int     // BVP mesh budget
	CritGap  float64 // gap magnitude below which the material counts as normal
	Nworkers int     // parallel energy solves; 0 means NumCPU
	Nquad    int     // quadrature samples for the gap integral
}

// SetDefault sets default values
func (o *Params) SetDefault() {
	o.Delta = 1e-3
	o.Atol = 1e-6
	o.Rtol = 1e-3
	o.MaxNodes = 500
	o.CritGap = 1e-4
	o.Nworkers = 0
	o.Nquad = 16001
}
