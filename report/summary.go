// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report prints the end-of-run summary a completed simulation leaves behind:
// problem size, cycle count, elapsed wall time and the grind-time figure of merit.
package report

import (
	"time"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/shockfem/domain"
)

// Summary holds the figures printed once a run completes (StopTime or the iteration
// count is reached); a run that ends on a fatal error prints no summary.
type Summary struct {
	Nproc       int
	ProblemSize int // global edge element count
	NumElem     int // total elements across all ranks
	Cycle       int
	SimTime     float64
	Elapsed     time.Duration
	OriginE     float64 // final internal energy of element 0 on the origin rank
}

// FromDomain gathers a Summary from one rank's domain and a wall-clock elapsed
// duration. globalNumElem is the total element count summed across all ranks.
func FromDomain(d *domain.Domain, globalNumElem int, elapsed time.Duration) Summary {
	var originE float64
	if d.ColLoc == 0 && d.RowLoc == 0 && d.PlaneLoc == 0 {
		originE = d.E[0]
	}
	return Summary{
		Nproc:       d.Nproc,
		ProblemSize: d.Nx * d.Tp,
		NumElem:     globalNumElem,
		Cycle:       d.Cycle,
		SimTime:     d.Time,
		Elapsed:     elapsed,
		OriginE:     originE,
	}
}

// GrindTime returns the grind-time figure of merit: microseconds of wall time spent
// per element per cycle, the customary inverse-throughput metric for this kind of
// proxy application.
func (s Summary) GrindTime() float64 {
	if s.NumElem == 0 || s.Cycle == 0 {
		return 0
	}
	return s.Elapsed.Seconds() * 1.0e6 / (float64(s.NumElem) * float64(s.Cycle))
}

// Print writes the summary in the same terse, labeled-line style the teacher uses
// for its own run reports.
func (s Summary) Print() {
	io.Pf("\nRun completed\n")
	io.Pf("  nproc        = %d\n", s.Nproc)
	io.Pf("  problem size = %d\n", s.ProblemSize)
	io.Pf("  total elems  = %d\n", s.NumElem)
	io.Pf("  cycles       = %d\n", s.Cycle)
	io.Pf("  final time   = %23.10e\n", s.SimTime)
	io.Pf("  origin E     = %23.10e\n", s.OriginE)
	io.PfGreen("  elapsed      = %v\n", s.Elapsed)
	io.PfGreen("  grind time   = %v us/z/c\n", s.GrindTime())
	if s.Elapsed > 0 {
		io.PfGreen("  FOM          = %v z/s\n", float64(s.NumElem)*float64(s.Cycle)/s.Elapsed.Seconds())
	}
}
