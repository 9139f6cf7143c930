// Copyright 2017 Jabir Ali Ouassou. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import "github.com/cpmech/gosl/chk"

// Stack couples several materials into one system updated together. Update
// sweeps the layers left to right, so each solve sees the neighbors' most
// recent states through the interface boundary conditions.
type Stack struct {
	Layers []*Material
}

// NewStack collects materials into a stack
func NewStack(layers ...*Material) (o *Stack, err error) {
	if len(layers) < 1 {
		return nil, chk.Err("stack needs at least one layer")
	}
	o = &Stack{Layers: layers}
	return
}

// Update updates each layer in turn
func (o *Stack) Update() (err error) {
	for _, m := range o.Layers {
		err = m.Update()
		if err != nil {
			return
		}
	}
	return
}

// MeanGap averages the gap magnitude over the layers that carry a gap
// equation; layers without one do not dilute the average
func (o *Stack) MeanGap() (mean float64) {
	n := 0
	for _, m := range o.Layers {
		if m.model != nil && m.model.HasGap() {
			mean += m.MeanGap()
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return mean / float64(n)
}

// Quench zeroes the gap field of every layer
func (o *Stack) Quench() {
	for _, m := range o.Layers {
		m.Quench()
	}
}

// Critical tells whether every gap-carrying layer has transitioned to the
// normal state
func (o *Stack) Critical() bool {
	any := false
	for _, m := range o.Layers {
		if m.model != nil && m.model.HasGap() {
			any = true
			if !m.Critical() {
				return false
			}
		}
	}
	return any
}
