// Copyright 2017 Jabir Ali Ouassou. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/jabirali/MasterCode/mdl"
	"github.com/jabirali/MasterCode/state"
)

// Snapshot holds the full propagator field of one material, so that a
// converged solution can be stored and later used as an initial guess
type Snapshot struct {
	Name      string        // material name
	Positions []float64     // position grid
	Energies  []float64     // energy grid
	Gap       []float64     // gap magnitude at each position
	States    [][][]float64 // [npos][nene][state.Nvec] flattened propagators
}

// NewSnapshot captures the current state of a material
func NewSnapshot(m *mdl.Material) (o *Snapshot) {
	o = &Snapshot{
		Name:      m.Name,
		Positions: append([]float64{}, m.Positions...),
		Energies:  append([]float64{}, m.Energies...),
		Gap:       append([]float64{}, m.GapField...),
	}
	o.States = make([][][]float64, len(m.Positions))
	for ip := range m.Positions {
		o.States[ip] = make([][]float64, len(m.Energies))
		for ie := range m.Energies {
			v := make([]float64, state.Nvec)
			m.States[ip][ie].ToVector(v)
			o.States[ip][ie] = v
		}
	}
	return
}

// Restore copies the snapshot back into a material. The material must have
// the same position and energy grids as the one the snapshot was taken from.
func (o *Snapshot) Restore(m *mdl.Material) (err error) {
	if len(o.Positions) != len(m.Positions) || len(o.Energies) != len(m.Energies) {
		return chk.Err("snapshot grid (%d x %d) does not match material grid (%d x %d)",
			len(o.Positions), len(o.Energies), len(m.Positions), len(m.Energies))
	}

	// a hand-edited file can carry a state grid inconsistent with its own
	// position/energy grids; check every dimension before touching m
	if len(o.States) != len(m.Positions) {
		return chk.Err("snapshot has %d state rows for %d positions", len(o.States), len(m.Positions))
	}
	for ip := range o.States {
		if len(o.States[ip]) != len(m.Energies) {
			return chk.Err("snapshot state row %d has %d entries for %d energies", ip, len(o.States[ip]), len(m.Energies))
		}
		for ie := range o.States[ip] {
			if len(o.States[ip][ie]) != state.Nvec {
				return chk.Err("snapshot state vector has wrong length: %d", len(o.States[ip][ie]))
			}
		}
	}
	if len(o.Gap) != len(m.Positions) {
		return chk.Err("snapshot has %d gap values for %d positions", len(o.Gap), len(m.Positions))
	}

	for ip := range m.Positions {
		for ie := range m.Energies {
			m.States[ip][ie].FromVector(o.States[ip][ie])
		}
	}
	return m.SetGap(o.Gap)
}

// Save writes the snapshot to dirout/fnkey.json, creating dirout if necessary
func (o *Snapshot) Save(dirout, fnkey string) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return chk.Err("cannot encode snapshot: %v", err)
	}
	io.WriteFileSD(dirout, fnkey+".json", string(b))
	return
}

// ReadSnapshot reads a snapshot previously written by Save
func ReadSnapshot(dirout, fnkey string) (o *Snapshot, err error) {
	b, err := io.ReadFile(filepath.Join(dirout, fnkey+".json"))
	if err != nil {
		return
	}
	o = new(Snapshot)
	err = json.Unmarshal(b, o)
	if err != nil {
		o = nil
		err = chk.Err("cannot decode snapshot: %v", err)
	}
	return
}
