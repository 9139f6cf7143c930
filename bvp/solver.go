// Copyright 2017 Jabir Ali Ouassou. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bvp implements an adaptive collocation solver for two-point
// boundary value problems over a fixed-size real vector field
package bvp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// RhsFunc evaluates the right-hand side f = dy/dx of the first-order system
type RhsFunc func(x float64, y, f []float64)

// BcFunc evaluates the two-point boundary residual r(ya, yb). len(r) equals
// the system dimension; the residual must vanish on the solution.
type BcFunc func(ya, yb, r []float64)

// ConvergenceError reports a solve that exceeded the mesh or iteration
// budget without meeting the configured tolerance
type ConvergenceError struct {
	Nodes int     // mesh size when the solve gave up
	Resid float64 // last residual norm
	Msg   string
}

func (e *ConvergenceError) Error() string {
	return io.Sf("bvp: %s (nodes=%d, residual=%g)", e.Msg, e.Nodes, e.Resid)
}

// IsConvergenceFailure tells whether err is a ConvergenceError
func IsConvergenceFailure(err error) bool {
	_, ok := err.(*ConvergenceError)
	return ok
}

// Settings holds the solver configuration
type Settings struct {
	Atol      float64 // absolute tolerance
	Rtol      float64 // relative tolerance
	MaxNodes  int     // maximum number of mesh nodes
	MaxNewton int     // maximum Newton iterations per mesh
	MaxDamp   int     // maximum step halvings per Newton iteration
}

// SetDefault sets default values
func (o *Settings) SetDefault() {
	o.Atol = 1e-6
	o.Rtol = 1e-3
	o.MaxNodes = 500
	o.MaxNewton = 50
	o.MaxDamp = 8
}

// Solver solves two-point boundary value problems by 3-point Lobatto IIIA
// (Simpson) collocation on an adaptively refined mesh
type Solver struct {
	Ndim int      // dimension of the vector field
	Set  Settings // configuration
}

// NewSolver returns a solver for an ndim-dimensional system with default
// settings
func NewSolver(ndim int) (o *Solver) {
	o = &Solver{Ndim: ndim}
	o.Set.SetDefault()
	return
}

// Solve computes the solution passing the boundary residual bc on the
// interval [x[0], x[len(x)-1]], starting from the initial mesh x and the
// nodal guess y ([len(x)][Ndim]). x must be strictly increasing. The
// returned Solution can be sampled anywhere in the interval.
func (o *Solver) Solve(f RhsFunc, bc BcFunc, x []float64, y [][]float64) (sol *Solution, err error) {

	// check input
	if len(x) < 2 {
		err = chk.Err("bvp: initial mesh needs at least 2 nodes (got %d)", len(x))
		return
	}
	if len(y) != len(x) {
		err = chk.Err("bvp: guess has %d rows for %d mesh nodes", len(y), len(x))
		return
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			err = chk.Err("bvp: mesh must be strictly increasing (x[%d]=%g, x[%d]=%g)", i-1, x[i-1], i, x[i])
			return
		}
	}

	// working copies
	m := len(x)
	xs := make([]float64, m)
	copy(xs, x)
	ys := la.MatAlloc(m, o.Ndim)
	for i := 0; i < m; i++ {
		if len(y[i]) != o.Ndim {
			err = chk.Err("bvp: guess row %d has length %d, want %d", i, len(y[i]), o.Ndim)
			return
		}
		copy(ys[i], y[i])
	}

	// solve / refine cycle
	for {

		// Newton iteration on the current mesh; a failure here must not
		// leak the previous pass's interpolant
		err = o.newton(f, bc, xs, ys)
		if err != nil {
			sol = nil
			return
		}

		// nodal derivatives and continuous extension
		fs := o.derivs(f, xs, ys)
		sol = &Solution{X: xs, Y: ys, F: fs, Ndim: o.Ndim}

		// defect-based refinement
		var bad []int
		for i := 0; i < len(xs)-1; i++ {
			if o.defect(f, sol, i) > 1 {
				bad = append(bad, i)
			}
		}
		if len(bad) == 0 {
			return
		}
		if len(xs)+len(bad) > o.Set.MaxNodes {
			err = &ConvergenceError{
				Nodes: len(xs),
				Resid: float64(len(bad)),
				Msg:   "mesh size limit exceeded during refinement",
			}
			sol = nil
			return
		}

		// bisect flagged intervals, warm starting from the interpolant
		xs, ys = o.refine(sol, bad)
	}
}

// newton drives the collocation residual to zero on the given mesh,
// updating ys in place
func (o *Solver) newton(f RhsFunc, bc BcFunc, xs []float64, ys [][]float64) (err error) {

	// flatten unknowns
	n, m := o.Ndim, len(xs)
	nu := n * m
	u := make([]float64, nu)
	for i := 0; i < m; i++ {
		copy(u[i*n:(i+1)*n], ys[i])
	}

	res := make([]float64, nu)
	res2 := make([]float64, nu)
	utry := make([]float64, nu)
	du := make([]float64, nu)

	// iterate
	var rnorm float64
	for it := 0; it < o.Set.MaxNewton; it++ {

		// residual and convergence check
		o.residual(f, bc, xs, u, res)
		rnorm = la.VecNorm(res) / math.Sqrt(float64(nu))
		if rnorm <= o.Set.Atol+o.Set.Rtol*o.unorm(u) {
			for i := 0; i < m; i++ {
				copy(ys[i], u[i*n:(i+1)*n])
			}
			return
		}

		// finite-difference Jacobian
		jac := la.MatAlloc(nu, nu)
		for j := 0; j < nu; j++ {
			h := 1e-8 * (1 + math.Abs(u[j]))
			uj := u[j]
			u[j] = uj + h
			o.residual(f, bc, xs, u, res2)
			u[j] = uj
			for i := 0; i < nu; i++ {
				jac[i][j] = (res2[i] - res[i]) / h
			}
		}

		// Newton step with damping
		err = densolve(du, jac, res)
		if err != nil {
			return &ConvergenceError{Nodes: m, Resid: rnorm, Msg: "singular collocation Jacobian"}
		}
		lambda := 1.0
		accepted := false
		for k := 0; k < o.Set.MaxDamp; k++ {
			for i := 0; i < nu; i++ {
				utry[i] = u[i] - lambda*du[i]
			}
			o.residual(f, bc, xs, utry, res2)
			if la.VecNorm(res2)/math.Sqrt(float64(nu)) < rnorm {
				copy(u, utry)
				accepted = true
				break
			}
			lambda /= 2
		}
		if !accepted {
			return &ConvergenceError{Nodes: m, Resid: rnorm, Msg: "damped Newton step stalled"}
		}
	}
	return &ConvergenceError{Nodes: m, Resid: rnorm, Msg: "Newton iteration limit exceeded"}
}

// residual assembles the collocation and boundary residuals for the
// flattened unknowns u
func (o *Solver) residual(f RhsFunc, bc BcFunc, xs []float64, u, res []float64) {
	n, m := o.Ndim, len(xs)
	fa := make([]float64, n)
	fb := make([]float64, n)
	fm := make([]float64, n)
	ym := make([]float64, n)

	for i := 0; i < m-1; i++ {
		h := xs[i+1] - xs[i]
		ya := u[i*n : (i+1)*n]
		yb := u[(i+1)*n : (i+2)*n]
		f(xs[i], ya, fa)
		f(xs[i+1], yb, fb)

		// Lobatto IIIA midpoint value and collocation condition
		for k := 0; k < n; k++ {
			ym[k] = 0.5*(ya[k]+yb[k]) - h/8.0*(fb[k]-fa[k])
		}
		f(xs[i]+h/2.0, ym, fm)
		for k := 0; k < n; k++ {
			res[i*n+k] = yb[k] - ya[k] - h/6.0*(fa[k]+4.0*fm[k]+fb[k])
		}
	}
	bc(u[:n], u[(m-1)*n:], res[(m-1)*n:])
}

// derivs evaluates the right-hand side at every node
func (o *Solver) derivs(f RhsFunc, xs []float64, ys [][]float64) (fs [][]float64) {
	fs = la.MatAlloc(len(xs), o.Ndim)
	for i, x := range xs {
		f(x, ys[i], fs[i])
	}
	return
}

// defect returns the scaled collocation defect of interval i; values above
// one flag the interval for bisection
func (o *Solver) defect(f RhsFunc, sol *Solution, i int) (d float64) {
	h := sol.X[i+1] - sol.X[i]
	y := make([]float64, o.Ndim)
	dy := make([]float64, o.Ndim)
	fy := make([]float64, o.Ndim)

	// sample the Hermite extension off the collocation points
	for _, c := range []float64{0.25, 0.75} {
		x := sol.X[i] + c*h
		sol.At(x, y)
		sol.Deriv(x, dy)
		f(x, y, fy)
		for k := 0; k < o.Ndim; k++ {
			scale := o.Set.Atol/h + o.Set.Rtol*math.Abs(fy[k])
			e := math.Abs(dy[k]-fy[k]) / scale
			if e > d {
				d = e
			}
		}
	}
	return
}

// refine bisects the flagged intervals, interpolating the warm start from
// the current solution
func (o *Solver) refine(sol *Solution, bad []int) (xs []float64, ys [][]float64) {
	mark := make(map[int]bool, len(bad))
	for _, i := range bad {
		mark[i] = true
	}
	for i := 0; i < len(sol.X); i++ {
		xs = append(xs, sol.X[i])
		ys = append(ys, sol.Y[i])
		if i < len(sol.X)-1 && mark[i] {
			xm := 0.5 * (sol.X[i] + sol.X[i+1])
			ym := make([]float64, o.Ndim)
			sol.At(xm, ym)
			xs = append(xs, xm)
			ys = append(ys, ym)
		}
	}
	return
}

// unorm returns the rms magnitude of the unknowns, used in the mixed
// absolute/relative convergence test
func (o *Solver) unorm(u []float64) float64 {
	return la.VecNorm(u) / math.Sqrt(float64(len(u)))
}

// densolve wraps the dense linear solver, converting its panic on a
// singular system into an error
func densolve(x []float64, a [][]float64, b []float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("bvp: dense solve failed: %v", r)
		}
	}()
	la.DenSolve(x, a, b, false)
	return
}
