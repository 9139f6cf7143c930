// Copyright 2017 Jabir Ali Ouassou. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/jabirali/MasterCode/ana"
	"github.com/jabirali/MasterCode/mdl"
	"github.com/jabirali/MasterCode/spin"
)

// Data holds global data for simulations
type Data struct {
	Desc   string `json:"desc"`   // description of simulation
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/usadel
}

// LayerData holds the physical description of one material layer
type LayerData struct {
	Kind        string     `json:"kind"`        // "superconductor", "metal" or "ferromagnet"
	Name        string     `json:"name"`        // layer name; defaults to the kind
	Strength    float64    `json:"strength"`    // BCS coupling constant (superconductor only)
	Thouless    float64    `json:"thouless"`    // diffusion constant in units of the bulk gap
	Npos        int        `json:"npos"`        // number of positions across the layer
	Exchange    [3]float64 `json:"exchange"`    // exchange field (ferromagnet only)
	SocStrength float64    `json:"socstrength"` // Rashba-Dresselhaus spin-orbit strength
	SocAngle    float64    `json:"socangle"`    // Rashba-Dresselhaus mixing angle
	Transp      float64    `json:"transp"`      // transparency of the interface to the previous layer
}

// SolverData holds state-solver and self-consistency parameters
type SolverData struct {

	// boundary value problem
	Atol     float64 `json:"atol"`     // absolute tolerance
	Rtol     float64 `json:"rtol"`     // relative tolerance
	MaxNodes int     `json:"maxnodes"` // mesh size budget per energy
	Delta    float64 `json:"delta"`    // inelastic scattering rate (Dynes parameter)

	// energy grid
	Nene   int     `json:"nene"`   // number of energies
	Cutoff float64 `json:"cutoff"` // energy cutoff; 0 means the weak-coupling value

	// self-consistency
	GapTol   float64 `json:"gaptol"`   // relative tolerance on the mean gap
	GapFloor float64 `json:"gapfloor"` // mean gap below which the state is normal
	MaxIt    int     `json:"maxit"`    // iteration budget
	CritGap  float64 `json:"critgap"`  // threshold for the transition to the normal state
	Nquad    int     `json:"nquad"`    // quadrature points for the gap equation

	// concurrency
	Nworkers int `json:"nworkers"` // goroutines per state update; 0 means GOMAXPROCS
}

// SetDefault sets default solver values
func (o *SolverData) SetDefault() {
	var par mdl.Params
	par.SetDefault()
	o.Atol = par.Atol
	o.Rtol = par.Rtol
	o.MaxNodes = par.MaxNodes
	o.Delta = par.Delta
	o.CritGap = par.CritGap
	o.Nquad = par.Nquad
	o.Nene = 240
	o.GapTol = 1e-3
	o.GapFloor = 1e-3
	o.MaxIt = 256
}

// SweepData holds the temperature range of a critical-temperature sweep
type SweepData struct {
	Tini  float64 `json:"tini"`  // first temperature
	Tfin  float64 `json:"tfin"`  // last temperature
	Ntemp int     `json:"ntemp"` // number of temperatures
}

// SetDefault sets default sweep values
func (o *SweepData) SetDefault() {
	o.Tini = 0.05
	o.Tfin = 0.75
	o.Ntemp = 15
}

// Temps returns the temperatures to visit
func (o SweepData) Temps() []float64 {
	return utl.LinSpace(o.Tini, o.Tfin, o.Ntemp)
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data   Data         `json:"data"`   // global data
	Layers []*LayerData `json:"layers"` // material layers, left to right
	Solver SolverData   `json:"solver"` // numerical parameters
	Sweep  SweepData    `json:"sweep"`  // temperature sweep

	// derived
	Key    string // simulation key; e.g. mysim
	DirOut string // output directory
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath string) *Simulation {

	// new sim
	var o Simulation

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.Solver.SetDefault()
	o.Sweep.SetDefault()

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// filename key
	o.Key = io.FnKey(filepath.Base(os.ExpandEnv(simfilepath)))

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/usadel/" + o.Key
	}

	// validate layers
	if len(o.Layers) < 1 {
		chk.Panic("ReadSim: simulation %q has no layers", o.Key)
	}
	for i, lay := range o.Layers {
		switch lay.Kind {
		case "superconductor", "metal", "ferromagnet":
		default:
			chk.Panic("ReadSim: layer %d has unknown kind %q", i, lay.Kind)
		}
		if lay.Name == "" {
			lay.Name = lay.Kind
		}
		if lay.Npos < 1 {
			lay.Npos = 1
		}
		if lay.Thouless <= 0 {
			lay.Thouless = 1
		}
	}
	return &o
}

// Params maps the solver data onto the numerical parameters of a material
func (o *Simulation) Params() (par mdl.Params) {
	par.SetDefault()
	par.Atol = o.Solver.Atol
	par.Rtol = o.Solver.Rtol
	par.MaxNodes = o.Solver.MaxNodes
	par.Delta = o.Solver.Delta
	par.CritGap = o.Solver.CritGap
	par.Nquad = o.Solver.Nquad
	par.Nworkers = o.Solver.Nworkers
	return
}

// Cutoff returns the energy cutoff: the input value if given, otherwise the
// weak-coupling cutoff of the first superconducting layer
func (o *Simulation) Cutoff() float64 {
	if o.Solver.Cutoff > 0 {
		return o.Solver.Cutoff
	}
	for _, lay := range o.Layers {
		if lay.Kind == "superconductor" && lay.Strength > 0 {
			return ana.Cutoff(lay.Strength)
		}
	}
	return 2
}

// Energies returns the energy grid shared by all layers
func (o *Simulation) Energies() []float64 {
	return mdl.EnergyGrid(o.Cutoff(), o.Solver.Nene)
}

// Build constructs the coupled material stack at the given temperature.
// Adjacent layers are joined by spin-active tunneling interfaces with the
// transparency given on the right layer; the outermost boundaries are free.
func (o *Simulation) Build(temp float64) (stack *mdl.Stack, err error) {
	energies := o.Energies()
	par := o.Params()
	mats := make([]*mdl.Material, len(o.Layers))
	for i, lay := range o.Layers {
		mats[i], err = lay.material(energies)
		if err != nil {
			return
		}
		mats[i].Temp = temp
		mats[i].Par = par
	}
	for i := 1; i < len(mats); i++ {
		mats[i-1].Right = mdl.Interface(mats[i], o.Layers[i].Transp)
		mats[i].Left = mdl.Interface(mats[i-1], o.Layers[i].Transp)
	}
	return mdl.NewStack(mats...)
}

// material constructs one layer on the given energy grid
func (o *LayerData) material(energies []float64) (m *mdl.Material, err error) {
	positions := utl.LinSpace(0, 1, o.Npos)
	if o.Npos == 1 {
		positions = []float64{0}
	}
	soc := spin.RashbaDresselhaus(o.SocStrength, o.SocAngle)
	switch o.Kind {
	case "superconductor":
		var s *mdl.Superconductor
		s, err = mdl.NewSuperconductor(positions, energies, o.Thouless, o.Strength)
		if err != nil {
			return
		}
		s.Name = o.Name
		return &s.Material, nil
	case "metal":
		var n *mdl.Metal
		n, err = mdl.NewMetal(positions, energies, o.Thouless)
		if err != nil {
			return
		}
		n.Name = o.Name
		return &n.Material, nil
	case "ferromagnet":
		var f *mdl.Ferromagnet
		f, err = mdl.NewFerromagnet(positions, energies, o.Thouless, o.Exchange, soc)
		if err != nil {
			return
		}
		f.Name = o.Name
		return &f.Material, nil
	}
	return nil, chk.Err("unknown layer kind %q", o.Kind)
}
