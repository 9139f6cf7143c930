// Copyright 2017 Jabir Ali Ouassou. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/jabirali/MasterCode/spin"
	"github.com/jabirali/MasterCode/state"
)

// Metal is a normal metal: plain diffusion with no pair potential, exchange
// field or gap equation. Superconducting correlations appear in it only
// through its boundaries (proximity effect).
type Metal struct {
	Material
}

// NewMetal allocates a normal metal initialized to the normal state
func NewMetal(positions, energies []float64, thouless float64) (o *Metal, err error) {
	mat, err := newMaterial("metal", positions, energies, thouless)
	if err != nil {
		return
	}
	o = &Metal{Material: *mat}
	o.model = o
	o.InitBulk(0)
	return
}

// Variant returns the variant name
func (o *Metal) Variant() string { return "metal" }

// HasGap tells that this variant has no gap equation
func (o *Metal) HasGap() bool { return false }

// UpdateGap is a no-op for a normal metal
func (o *Metal) UpdateGap() error { return nil }

// Contribute adds nothing: the diffusion and energy terms of the base
// equation are the whole physics of a normal metal
func (o *Metal) Contribute(ctx *Context, x float64, s *state.State, n, nt spin.Matrix, d2g, d2gt *spin.Matrix) {
}
