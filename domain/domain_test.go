// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func newTestDomain(tst *testing.T, nx, nproc, proc, numReg int) *Domain {
	d, err := New(Config{
		Nx: nx, Nproc: nproc, Proc: proc,
		NumReg: numReg, BalanceB: 1, CostMult: 1,
		StopTime: 1.0e-2, Consts: DefaultConstants(),
	})
	if err != nil {
		tst.Fatalf("domain construction failed: %v", err)
	}
	return d
}

func Test_domain01(tst *testing.T) {

	chk.PrintTitle("domain01: mass conservation")

	d := newTestDomain(tst, 4, 1, 0, 5)

	var sumNodal, sumElem float64
	for _, m := range d.NodalMass {
		sumNodal += m
	}
	for _, m := range d.ElemMass {
		sumElem += m
	}
	chk.Scalar(tst, "sum(nodal mass) == sum(element mass)", 1e-9, sumNodal, sumElem)
}

func Test_domain02(tst *testing.T) {

	chk.PrintTitle("domain02: relative volume starts at one and within EOS bounds")

	d := newTestDomain(tst, 3, 1, 0, 3)
	for i, v := range d.V {
		if v <= 0 {
			tst.Errorf("element %d: v=%v not positive", i, v)
		}
		if v < d.Consts.EOSVmin || v > d.Consts.EOSVmax {
			tst.Errorf("element %d: v=%v out of EOS bounds", i, v)
		}
		chk.Scalar(tst, "initial v", 1e-14, v, 1.0)
	}
}

func Test_domain03(tst *testing.T) {

	chk.PrintTitle("domain03: every region gets assigned elements that sum to NumElem")

	d := newTestDomain(tst, 4, 1, 0, 7)
	total := 0
	for _, r := range d.Regions {
		total += len(r.ElemIDs)
		for _, e := range r.ElemIDs {
			if d.RegionID[e] != r.ID {
				tst.Errorf("element %d claims region %d but sits in region %d's list", e, d.RegionID[e], r.ID)
			}
		}
	}
	if total != d.NumElem {
		tst.Errorf("region element counts sum to %d, want %d", total, d.NumElem)
	}
}

func Test_domain04(tst *testing.T) {

	chk.PrintTitle("domain04: single-rank domain has no ghost slots")

	d := newTestDomain(tst, 4, 1, 0, 5)
	if d.NumGhost != 0 {
		tst.Errorf("expected NumGhost=0 for a single rank, got %d", d.NumGhost)
	}
}

func Test_domain05(tst *testing.T) {

	chk.PrintTitle("domain05: CSR adjacency reproduces element connectivity")

	d := newTestDomain(tst, 3, 1, 0, 2)
	seen := make(map[int]int)
	for n := 0; n < d.NumNode; n++ {
		for _, tup := range d.NodeElemCol[d.NodeElemPtr[n]:d.NodeElemPtr[n+1]] {
			e, corner := int(tup)/8, int(tup)%8
			if int(d.NodeList[e][corner]) != n {
				tst.Errorf("CSR tuple (elem=%d,corner=%d) claims node %d, but NodeList says %d", e, corner, n, d.NodeList[e][corner])
			}
			seen[e*8+corner]++
		}
	}
	for e := 0; e < d.NumElem; e++ {
		for corner := 0; corner < 8; corner++ {
			if seen[e*8+corner] != 1 {
				tst.Errorf("tuple (elem=%d,corner=%d) appears %d times in CSR, want 1", e, corner, seen[e*8+corner])
			}
		}
	}
}

func Test_domain06(tst *testing.T) {

	chk.PrintTitle("domain06: origin subdomain deposits the Sedov point energy")

	d := newTestDomain(tst, 5, 1, 0, 3)
	if d.E[0] <= 0 {
		tst.Errorf("expected positive deposited energy at element 0, got %v", d.E[0])
	}
	for e := 1; e < d.NumElem; e++ {
		if d.E[e] != 0 {
			tst.Errorf("element %d should start with zero energy, got %v", e, d.E[e])
		}
	}
	if d.DeltaTime <= 0 {
		tst.Errorf("expected positive initial time step, got %v", d.DeltaTime)
	}
}

func Test_domain07(tst *testing.T) {

	chk.PrintTitle("domain07: symmetry node lists only populate at the global origin")

	d := newTestDomain(tst, 3, 1, 0, 2)
	if len(d.SymmX) == 0 || len(d.SymmY) == 0 || len(d.SymmZ) == 0 {
		tst.Errorf("single-rank domain sits at the global origin on all three faces; expected nonempty symmetry lists")
	}
}

func Test_domain08(tst *testing.T) {

	chk.PrintTitle("domain08: non-cube rank count is rejected")

	_, err := New(Config{Nx: 4, Nproc: 5, Proc: 0, NumReg: 3, Consts: DefaultConstants(), StopTime: 1e-2})
	if err == nil {
		tst.Errorf("expected an error for a non-cube rank count (5)")
	}
}
