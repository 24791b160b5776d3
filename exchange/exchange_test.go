// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exchange

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/shockfem/domain"
)

func Test_noop01(tst *testing.T) {

	chk.PrintTitle("noop01: NoOp leaves every field untouched")

	d, err := domain.New(domain.Config{
		Nx: 2, Nproc: 1, Proc: 0, NumReg: 1, StopTime: 1.0, Consts: domain.DefaultConstants(),
	})
	if err != nil {
		tst.Fatalf("domain construction failed: %v", err)
	}

	fx := append([]float64(nil), d.Fx...)
	if err := Round(NoOp{}, d, MsgNodalSum, [][]float64{d.Fx}, false, true); err != nil {
		tst.Fatalf("Round: %v", err)
	}
	chk.Vector(tst, "Fx unchanged", 1e-14, d.Fx, fx)

	dt, err := NoOp{}.GlobalMinDt(0.5)
	if err != nil {
		tst.Fatalf("GlobalMinDt: %v", err)
	}
	chk.Scalar(tst, "dt unchanged", 1e-14, dt, 0.5)
}
