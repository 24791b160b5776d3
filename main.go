// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/shockfem/domain"
	"github.com/cpmech/shockfem/exchange"
	"github.com/cpmech/shockfem/hydro"
	"github.com/cpmech/shockfem/report"
)

func main() {

	iterations := flag.Int("i", 0, "iteration count; 0 => run to stop_time")
	nx := flag.Int("s", 30, "per-subdomain edge elements")
	numReg := flag.Int("r", 11, "number of regions")
	balanceB := flag.Int("b", 1, "region-size balance exponent")
	costMult := flag.Int("c", 1, "imbalance cost multiplier")
	vizFiles := flag.Int("f", 0, "visualization files count")
	progress := flag.Bool("p", false, "show per-cycle progress")
	quiet := flag.Bool("q", false, "quiet mode")
	viz := flag.Bool("v", false, "visualization dump")
	_ = vizFiles
	_ = viz
	flag.Parse()

	failed := false
	defer func() {
		if err := recover(); err != nil {
			if !mpi.IsOn() || mpi.Rank() == 0 {
				chk.Verbose = true
				io.PfRed("ERROR: %v\n", err)
			}
			failed = true
		}
		mpi.Stop(false)
		if failed {
			os.Exit(1)
		}
	}()
	mpi.Start(false)

	proc, nproc := 0, 1
	if mpi.IsOn() {
		proc, nproc = mpi.Rank(), mpi.Size()
	}

	if proc == 0 && !*quiet {
		io.PfWhite("\nshockfem -- Lagrangian shock-hydrodynamics proxy\n\n")
	}

	defer utl.DoProf(false)()

	cfg := domain.Config{
		Nx: *nx, Nproc: nproc, Proc: proc,
		NumReg: *numReg, BalanceB: *balanceB, CostMult: *costMult,
		StopTime: 1.0e-2, Consts: domain.DefaultConstants(),
	}
	d, err := domain.New(cfg)
	if err != nil {
		chk.Panic("%v", err)
	}

	var ex exchange.Exchanger
	if mpi.IsOn() && nproc > 1 {
		ex = exchange.NewMPI(d)
	} else {
		ex = exchange.NoOp{}
	}

	nWorkers := runtime.NumCPU()

	start := time.Now()
	for {
		if *iterations > 0 && d.Cycle >= *iterations {
			break
		}
		if d.Time >= d.StopTime {
			break
		}

		hydro.CalcTimeConstraintsForElems(d)
		if err := hydro.TimeIncrement(d, ex); err != nil {
			chk.Panic("%v", err)
		}
		if err := hydro.LagrangeNodal(d, ex, nWorkers); err != nil {
			chk.Panic("%v", err)
		}
		if err := hydro.LagrangeElements(d, ex, nWorkers); err != nil {
			chk.Panic("%v", err)
		}

		if *progress && proc == 0 {
			io.Pf("cycle %6d : time=%12.5e dt=%12.5e\n", d.Cycle, d.Time, d.DeltaTime)
		}
	}
	elapsed := time.Since(start)

	if proc == 0 && !*quiet {
		report.FromDomain(d, d.NumElem*nproc, elapsed).Print()
	}
}
