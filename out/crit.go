// Copyright 2017 Jabir Ali Ouassou. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out handles simulation results: critical-temperature curves and
// full state snapshots, saved as JSON files
package out

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CritCurve holds the order parameter as a function of temperature
type CritCurve struct {
	Desc  string    // description of the physical system
	Temps []float64 // temperatures, in units of the bulk critical temperature
	Gaps  []float64 // spatially averaged gap at each temperature
}

// Tc estimates the critical temperature as the first temperature where the
// gap drops below the given threshold. Returns the last temperature if the
// gap never drops that far.
func (o CritCurve) Tc(threshold float64) float64 {
	for i, g := range o.Gaps {
		if g < threshold {
			return o.Temps[i]
		}
	}
	return o.Temps[len(o.Temps)-1]
}

// Save writes the curve to dirout/fnkey.json, creating dirout if necessary
func (o CritCurve) Save(dirout, fnkey string) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return chk.Err("cannot encode critical curve: %v", err)
	}
	io.WriteFileSD(dirout, fnkey+".json", string(b))
	return
}

// ReadCritCurve reads a curve previously written by Save
func ReadCritCurve(dirout, fnkey string) (o CritCurve, err error) {
	b, err := io.ReadFile(filepath.Join(dirout, fnkey+".json"))
	if err != nil {
		return
	}
	err = json.Unmarshal(b, &o)
	if err != nil {
		err = chk.Err("cannot decode critical curve: %v", err)
	}
	return
}
