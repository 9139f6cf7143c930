// Copyright 2017 Jabir Ali Ouassou. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usadel

import (
	"math"
	"runtime"
	"sort"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/jabirali/MasterCode/out"
)

// BuildFunc constructs a fresh system at the given temperature. Each sweep
// point gets its own system, so builds may run concurrently.
type BuildFunc func(temp float64) (System, error)

// Sweep solves the same physical system at a range of temperatures and
// records the converged gap at each, producing a critical-temperature curve
type Sweep struct {
	Desc     string    // description stored on the resulting curve
	Build    BuildFunc // constructs the system at one temperature
	Temps    []float64 // temperatures to visit
	Tol      float64   // driver tolerance
	Floor    float64   // driver gap floor
	MaxIt    int       // driver iteration budget
	Nworkers int       // concurrent sweep points; 0 means GOMAXPROCS
	Verbose  bool      // print per-point progress
}

// NewSweep returns a sweep over the given temperatures with default
// driver settings
func NewSweep(build BuildFunc, temps []float64) (o *Sweep) {
	o = &Sweep{Build: build, Temps: temps}
	d := new(Driver)
	d.SetDefault()
	o.Tol = d.Tol
	o.Floor = d.Floor
	o.MaxIt = d.MaxIt
	return
}

// Run computes the gap at every temperature. Points whose solve fails are
// reported and left out of the curve; Run only returns an error when no
// point at all could be computed.
func (o *Sweep) Run() (curve out.CritCurve, err error) {
	if o.Build == nil {
		err = chk.Err("sweep has no build function")
		return
	}
	if len(o.Temps) < 1 {
		err = chk.Err("sweep needs at least one temperature")
		return
	}

	nw := o.Nworkers
	if nw < 1 {
		nw = runtime.GOMAXPROCS(0)
	}
	if nw > len(o.Temps) {
		nw = len(o.Temps)
	}

	gaps := make([]float64, len(o.Temps))
	jobs := make(chan int, len(o.Temps))
	var wg sync.WaitGroup
	for w := 0; w < nw; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				gaps[i] = o.point(o.Temps[i])
			}
		}()
	}
	for i := range o.Temps {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	curve.Desc = o.Desc
	for i, t := range o.Temps {
		if math.IsNaN(gaps[i]) {
			continue
		}
		curve.Temps = append(curve.Temps, t)
		curve.Gaps = append(curve.Gaps, gaps[i])
	}
	if len(curve.Temps) == 0 {
		err = chk.Err("all %d sweep points failed", len(o.Temps))
		return
	}
	sort.Sort(byTemp{curve.Temps, curve.Gaps})
	return
}

// point solves one sweep temperature; returns NaN on failure
func (o *Sweep) point(temp float64) float64 {
	sys, err := o.Build(temp)
	if err != nil {
		io.Pfred("sweep: cannot build system at T = %g: %v\n", temp, err)
		return math.NaN()
	}
	drv := NewDriver(sys)
	drv.Tol = o.Tol
	drv.Floor = o.Floor
	drv.MaxIt = o.MaxIt
	err = drv.Run()
	if err != nil {
		io.Pfred("sweep: point T = %g failed: %v\n", temp, err)
		return math.NaN()
	}
	gap := sys.MeanGap()
	if o.Verbose {
		io.Pf("T = %10.6f: gap = %23.15e  (%v after %d iterations)\n", temp, gap, drv.Status, drv.It)
	}
	return gap
}

// byTemp sorts a (temperature, gap) pair of slices by temperature
type byTemp struct {
	t []float64
	g []float64
}

func (s byTemp) Len() int           { return len(s.t) }
func (s byTemp) Less(i, j int) bool { return s.t[i] < s.t[j] }
func (s byTemp) Swap(i, j int) {
	s.t[i], s.t[j] = s.t[j], s.t[i]
	s.g[i], s.g[j] = s.g[j], s.g[i]
}
