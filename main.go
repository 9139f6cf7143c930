// Copyright 2017 Jabir Ali Ouassou. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/jabirali/MasterCode/inp"
	"github.com/jabirali/MasterCode/out"
	"github.com/jabirali/MasterCode/usadel"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	doSweep := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nUsadel -- quasiclassical superconductivity in diffusive multilayers\n")
		io.Pf("Copyright 2017 Jabir Ali Ouassou. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"run temperature sweep", "doSweep", doSweep,
		))
	}

	// simulation data
	sim := inp.ReadSim(fnamepath)
	if verbose {
		io.Pf("%s\n", sim.Data.Desc)
	}

	// converge the stack at the initial temperature and store a snapshot
	// of every layer
	stack, err := sim.Build(sim.Sweep.Tini)
	if err != nil {
		chk.Panic("cannot build material stack:\n%v", err)
	}
	drv := usadel.NewDriver(stack)
	drv.Tol = sim.Solver.GapTol
	drv.Floor = sim.Solver.GapFloor
	drv.MaxIt = sim.Solver.MaxIt
	drv.Verbose = verbose
	err = drv.Run()
	if err != nil {
		chk.Panic("self-consistency failed:\n%v", err)
	}
	if verbose {
		io.Pf("T = %g: %v after %d iterations (gap = %g)\n", sim.Sweep.Tini, drv.Status, drv.It, stack.MeanGap())
	}
	for _, m := range stack.Layers {
		err = out.NewSnapshot(m).Save(sim.DirOut, sim.Key+"-"+m.Name)
		if err != nil {
			chk.Panic("cannot save snapshot:\n%v", err)
		}
	}

	// temperature sweep
	if !doSweep {
		return
	}
	swp := usadel.NewSweep(func(temp float64) (usadel.System, error) {
		s, err := sim.Build(temp)
		if err != nil {
			return nil, err
		}
		return s, nil
	}, sim.Sweep.Temps())
	swp.Desc = sim.Data.Desc
	swp.Tol = sim.Solver.GapTol
	swp.Floor = sim.Solver.GapFloor
	swp.MaxIt = sim.Solver.MaxIt
	swp.Nworkers = sim.Solver.Nworkers
	swp.Verbose = verbose
	curve, err := swp.Run()
	if err != nil {
		chk.Panic("temperature sweep failed:\n%v", err)
	}
	err = curve.Save(sim.DirOut, sim.Key+"-critical")
	if err != nil {
		chk.Panic("cannot save critical curve:\n%v", err)
	}
	if verbose {
		io.Pf("critical temperature estimate: %g\n", curve.Tc(sim.Solver.CritGap))
		io.Pf("results saved to %s\n", sim.DirOut)
	}
}
