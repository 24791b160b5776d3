// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exchange

import "github.com/cpmech/shockfem/domain"

// NoOp is the ghost exchange used when a domain runs alone (Nproc==1, spec §6):
// there are no neighbor ranks, so every stage is a no-op.
type NoOp struct{}

func (NoOp) Recv(d *domain.Domain, msgType MsgType, fields [][]float64, planeOnly bool) error {
	return nil
}

func (NoOp) Send(d *domain.Domain, msgType MsgType, fieldSources [][]float64, planeOnly bool) error {
	return nil
}

func (NoOp) ApplySum(d *domain.Domain, fields [][]float64) error {
	return nil
}

func (NoOp) ApplyCopy(d *domain.Domain, fields [][]float64) error {
	return nil
}

func (NoOp) GlobalMinDt(dt float64) (float64, error) {
	return dt, nil
}
