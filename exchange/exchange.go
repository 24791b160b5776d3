// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exchange defines the ghost-cell exchange collaborator required by the
// core (spec §6): the boundary-synchronization transport is out of scope for the
// core physics and is treated as a pluggable interface with two implementations,
// a no-op (single rank) and an MPI-backed one.
package exchange

import "github.com/cpmech/shockfem/domain"

// MsgType identifies one of the three collective message shapes the core issues
// between and inside its Lagrange stages (spec §5, §6).
type MsgType int

// message kinds
const (
	MsgNodalSum   MsgType = iota // mass/force sums at shared boundary nodes
	MsgPosVelSync                // position/velocity synchronization
	MsgQGradCopy                 // monotonic-q Δv gradient copy into ghost slots
)

// Exchanger is the sole interface boundary the core requires (spec §9 "Dispatch").
// A no-op implementation is valid when Nproc==1.
type Exchanger interface {
	// Recv posts non-blocking receives for the given message type and fields.
	Recv(d *domain.Domain, msgType MsgType, fields [][]float64, planeOnly bool) error

	// Send packs fieldSources and issues non-blocking sends for msgType.
	Send(d *domain.Domain, msgType MsgType, fieldSources [][]float64, planeOnly bool) error

	// ApplySum waits on outstanding requests and accumulates received values into
	// the corresponding local node fields (for mass/force sums).
	ApplySum(d *domain.Domain, fields [][]float64) error

	// ApplyCopy waits on outstanding requests and overwrites ghost slots with the
	// received values (for Δv gradients and post-sync positions/velocities).
	ApplyCopy(d *domain.Domain, fields [][]float64) error

	// GlobalMinDt reduces one rank's candidate time-step to the minimum across all
	// ranks (spec §4.2): a no-op exchanger simply returns dt unchanged.
	GlobalMinDt(dt float64) (float64, error)
}

// Round bundles one Recv/Send/Apply triple exactly as the three per-cycle suspension
// points of spec §5 use it.
func Round(ex Exchanger, d *domain.Domain, msgType MsgType, fields [][]float64, planeOnly, sum bool) error {
	if err := ex.Recv(d, msgType, fields, planeOnly); err != nil {
		return err
	}
	if err := ex.Send(d, msgType, fields, planeOnly); err != nil {
		return err
	}
	if sum {
		return ex.ApplySum(d, fields)
	}
	return ex.ApplyCopy(d, fields)
}
