// Copyright 2017 Jabir Ali Ouassou. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"math"
	"runtime"
	"sync"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/interp"

	"github.com/jabirali/MasterCode/bvp"
	"github.com/jabirali/MasterCode/spin"
	"github.com/jabirali/MasterCode/state"
)

// Context is the read-only information a physics term may consume while the
// right-hand side of the Usadel equation is being evaluated
type Context struct {
	Energy float64                 // quasiparticle energy
	Diff   float64                 // diffusion constant (Thouless energy)
	Pre    complex128              // shared prefactor -i/Diff
	Gap    func(x float64) float64 // interpolated gap accessor
}

// Model is the variant-specific part of a material: the term it contributes
// to the Usadel equation and, when present, its self-consistency equation
type Model interface {
	Variant() string
	Contribute(ctx *Context, x float64, s *state.State, n, nt spin.Matrix, d2g, d2gt *spin.Matrix)
	HasGap() bool
	UpdateGap() error
}

// Material holds the position-energy grid of Riccati states of one layer and
// the data shared by all material variants
type Material struct {
	Name      string           // material name
	Positions []float64        // strictly increasing positions
	Energies  []float64        // strictly increasing, non-negative energies
	States    [][]*state.State // [len(Positions)][len(Energies)]
	GapField  []float64        // order parameter per position (zero unless superconductor)
	Temp      float64          // temperature
	Thouless  float64          // diffusion constant
	Par       Params           // numerical parameters
	Left      Boundary         // left boundary condition
	Right     Boundary         // right boundary condition

	model Model // variant hook, set by the variant constructor
}

// newMaterial validates the grids and allocates the shared part of a variant
func newMaterial(name string, positions, energies []float64, thouless float64) (o *Material, err error) {
	if len(positions) < 1 {
		return nil, chk.Err("material %q: needs at least one position", name)
	}
	if len(energies) < 2 {
		return nil, chk.Err("material %q: needs at least two energies", name)
	}
	if energies[0] < 0 {
		return nil, chk.Err("material %q: energies must be non-negative (got %g)", name, energies[0])
	}
	if thouless <= 0 {
		return nil, chk.Err("material %q: diffusion constant must be positive (got %g)", name, thouless)
	}
	for i := 1; i < len(positions); i++ {
		if positions[i] <= positions[i-1] {
			return nil, chk.Err("material %q: positions must be strictly increasing", name)
		}
	}
	for i := 1; i < len(energies); i++ {
		if energies[i] <= energies[i-1] {
			return nil, chk.Err("material %q: energies must be strictly increasing", name)
		}
	}
	o = &Material{
		Name:      name,
		Positions: positions,
		Energies:  energies,
		GapField:  make([]float64, len(positions)),
		Thouless:  thouless,
		Left:      Free(),
		Right:     Free(),
	}
	o.Par.SetDefault()
	o.States = make([][]*state.State, len(positions))
	for ip := range o.States {
		o.States[ip] = make([]*state.State, len(energies))
	}
	return
}

// InitBulk initializes every state to the equilibrium bulk solution with the
// given uniform gap
func (o *Material) InitBulk(gap float64) {
	for ip := range o.Positions {
		o.GapField[ip] = gap
		for ie, e := range o.Energies {
			o.States[ip][ie] = state.Bulk(e, gap, o.Par.Delta)
		}
	}
}

// SetGap sets the gap field directly; used to feed an externally supplied
// gap to materials without a gap equation
func (o *Material) SetGap(gap []float64) (err error) {
	if len(gap) != len(o.Positions) {
		return chk.Err("material %q: gap field has %d values for %d positions", o.Name, len(gap), len(o.Positions))
	}
	copy(o.GapField, gap)
	return
}

// Quench zeroes the gap field; called when the self-consistency driver
// detects the transition to the normal state
func (o *Material) Quench() {
	for ip := range o.GapField {
		o.GapField[ip] = 0
	}
}

// MeanGap returns the position-averaged gap magnitude
func (o *Material) MeanGap() (mean float64) {
	for _, g := range o.GapField {
		mean += math.Abs(g)
	}
	return mean / float64(len(o.GapField))
}

// Critical tells whether the material has transitioned to the normal state:
// the maximum gap magnitude over all positions is below Par.CritGap. Always
// false for variants without a gap equation.
func (o *Material) Critical() bool {
	if o.model == nil || !o.model.HasGap() {
		return false
	}
	max := 0.0
	for _, g := range o.GapField {
		if a := math.Abs(g); a > max {
			max = a
		}
	}
	return max < o.Par.CritGap
}

// GapAt interpolates the stored gap field at an arbitrary position using a
// shape-preserving piecewise cubic
func (o *Material) GapAt(x float64) float64 {
	fn, err := o.gapFunc()
	if err != nil {
		chk.Panic("material %q: cannot interpolate gap field:\n%v", o.Name, err)
	}
	return fn(x)
}

// gapFunc builds the interpolated gap accessor used during one solve
func (o *Material) gapFunc() (fn func(x float64) float64, err error) {
	if len(o.Positions) == 1 {
		g := o.GapField[0]
		return func(float64) float64 { return g }, nil
	}
	pc := new(interp.FritschButland)
	err = pc.Fit(o.Positions, o.GapField)
	if err != nil {
		return nil, chk.Err("material %q: gap interpolation failed: %v", o.Name, err)
	}
	return pc.Predict, nil
}

// Update updates the state grid and, for variants with a gap equation, the
// gap field
func (o *Material) Update() (err error) {
	err = o.UpdateState()
	if err != nil {
		return
	}
	if o.model.HasGap() {
		err = o.model.UpdateGap()
	}
	return
}

// UpdateState re-solves the boundary value problem for every energy, warm
// starting from the stored states, and stores the solutions back on the
// material's own positions. The per-energy solves run on a worker pool and
// are joined before the method returns; the first failure aborts the update.
func (o *Material) UpdateState() (err error) {
	if o.model == nil {
		return chk.Err("material %q: no variant model attached", o.Name)
	}
	gap, err := o.gapFunc()
	if err != nil {
		return
	}
	nene := len(o.Energies)

	// homogeneous limit: a single-position layer with free boundaries is an
	// infinite uniform material, whose solution is the local bulk state
	if len(o.Positions) == 1 {
		if o.Left.Kind != FreeKind || o.Right.Kind != FreeKind {
			return chk.Err("material %q: a single-position layer requires free boundaries", o.Name)
		}
		g := gap(o.Positions[0])
		for ie, e := range o.Energies {
			o.States[0][ie] = state.Bulk(e, g, o.Par.Delta)
		}
		return
	}

	// boundary snapshots, taken once so adjacent materials are only read
	// before the fan-out
	lb, err := o.Left.snapshot(0, o)
	if err != nil {
		return
	}
	rb, err := o.Right.snapshot(1, o)
	if err != nil {
		return
	}

	// fan out over energies, join, keep the first error
	nw := o.Par.Nworkers
	if nw <= 0 {
		nw = runtime.NumCPU()
	}
	if nw > nene {
		nw = nene
	}
	jobs := make(chan int, nene)
	for ie := 0; ie < nene; ie++ {
		jobs <- ie
	}
	close(jobs)
	var wg sync.WaitGroup
	var mu sync.Mutex
	for i := 0; i < nw; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ie := range jobs {
				if e := o.solveEnergy(ie, gap, lb[ie], rb[ie]); e != nil {
					mu.Lock()
					if err == nil {
						err = e
					}
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()
	return
}

// solveEnergy builds and solves the two-point BVP of one energy
func (o *Material) solveEnergy(ie int, gap func(float64) float64, lb, rb *bcdata) (err error) {
	e := o.Energies[ie]
	ctx := &Context{
		Energy: e,
		Diff:   o.Thouless,
		Pre:    complex(0, -1) / complex(o.Thouless, 0),
		Gap:    gap,
	}

	// right-hand side of the first-order system; a singular normalization
	// matrix is recorded and reported after the solve, since it invalidates
	// the whole evaluation
	var sing error
	f := func(x float64, y, dydx []float64) {
		var s state.State
		s.FromVector(y)
		n, err1 := s.Norm()
		if err1 != nil {
			if sing == nil {
				sing = err1
			}
			zero(dydx)
			return
		}
		nt, err1 := s.NormTilde()
		if err1 != nil {
			if sing == nil {
				sing = err1
			}
			zero(dydx)
			return
		}

		// diffusion and energy terms, common to all variants
		ec := 2 * complex(e, o.Par.Delta)
		d2g := s.Dg.Mul(nt).Mul(s.Gt).Mul(s.Dg).Scale(-2)
		d2g = d2g.Add(s.G.Scale(ec).Scale(ctx.Pre))
		d2gt := s.Dgt.Mul(n).Mul(s.G).Mul(s.Dgt).Scale(-2)
		d2gt = d2gt.Add(s.Gt.Scale(ec).Scale(ctx.Pre))

		// variant term
		o.model.Contribute(ctx, x, &s, n, nt, &d2g, &d2gt)

		out := state.State{G: s.Dg, Gt: s.Dgt, Dg: d2g, Dgt: d2gt}
		out.ToVector(dydx)
	}

	bc := func(ya, yb, r []float64) {
		var sa, sb state.State
		sa.FromVector(ya)
		sb.FromVector(yb)
		lb.residual(0, &sa, r[:16])
		rb.residual(1, &sb, r[16:])
	}

	// warm start from the stored states on the material's own mesh
	npos := len(o.Positions)
	guess := make([][]float64, npos)
	for ip := 0; ip < npos; ip++ {
		if o.States[ip][ie] == nil {
			return chk.Err("material %q: states are uninitialized; call InitBulk first", o.Name)
		}
		guess[ip] = o.States[ip][ie].Vectorize()
	}
	solver := bvp.NewSolver(state.Nvec)
	solver.Set.Atol = o.Par.Atol
	solver.Set.Rtol = o.Par.Rtol
	solver.Set.MaxNodes = o.Par.MaxNodes
	sol, err := solver.Solve(f, bc, o.Positions, guess)
	if sing != nil {
		return sing
	}
	if err != nil {
		return
	}

	// re-sample on the stored grid
	v := make([]float64, state.Nvec)
	for ip, x := range o.Positions {
		sol.At(x, v)
		o.States[ip][ie].FromVector(v)
	}
	return
}

func zero(v []float64) {
	for i := range v {
		v[i] = 0
	}
}
