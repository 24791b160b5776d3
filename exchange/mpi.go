// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exchange

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/mpi"

	"github.com/cpmech/shockfem/domain"
)

// pending records one outstanding face transfer between Recv/Send and Apply*.
type pending struct {
	dir      int
	nodal    bool     // true: per-node face buffer; false: per-element ghost buffer
	locals   []int32  // local indices (nodes, or elements owning a comm face) in scan order
	ghosts   []int32  // matching ghost slot indices (element messages only)
	recvBufs [][]float64
}

// MPI is the ghost-exchange collaborator backed by github.com/cpmech/gosl/mpi's
// non-blocking point-to-point primitives and collective reductions (spec §6).
// It implements the three-message protocol over the six axial neighbor directions
// of the r×r×r rank cube.
type MPI struct {
	pend []pending
}

// NewMPI returns an MPI-backed exchanger for the given domain's rank placement.
func NewMPI(d *domain.Domain) *MPI {
	return &MPI{}
}

// Recv posts non-blocking receives for every face this subdomain shares with a
// neighbor in the given message's direction set.
func (o *MPI) Recv(d *domain.Domain, msgType MsgType, fields [][]float64, planeOnly bool) error {
	o.pend = o.pend[:0]
	nodal := msgType != MsgQGradCopy
	for dir := 0; dir < domain.NumFaces; dir++ {
		if !d.HasCommNeighbor(dir) {
			continue
		}
		var locals, ghosts []int32
		if nodal {
			locals = d.NodesOnFace(dir)
		} else {
			locals, ghosts = d.CommFaceElems(dir)
		}
		if len(locals) == 0 {
			continue
		}
		src := d.NeighborRank(dir)
		recvBufs := make([][]float64, len(fields))
		for fi := range fields {
			buf := make([]float64, len(locals))
			recvBufs[fi] = buf
			mpi.IRecvOne(buf, src, int(msgType)*domain.NumFaces+dir)
		}
		o.pend = append(o.pend, pending{dir: dir, nodal: nodal, locals: locals, ghosts: ghosts, recvBufs: recvBufs})
	}
	return nil
}

// Send packs fieldSources along each shared face and issues non-blocking sends
// matching the receives posted by Recv.
func (o *MPI) Send(d *domain.Domain, msgType MsgType, fieldSources [][]float64, planeOnly bool) error {
	nodal := msgType != MsgQGradCopy
	for dir := 0; dir < domain.NumFaces; dir++ {
		if !d.HasCommNeighbor(dir) {
			continue
		}
		var locals []int32
		if nodal {
			locals = d.NodesOnFace(dir)
		} else {
			locals, _ = d.CommFaceElems(dir)
		}
		if len(locals) == 0 {
			continue
		}
		dst := d.NeighborRank(dir)
		for fi, field := range fieldSources {
			out := make([]float64, len(locals))
			for i, idx := range locals {
				out[i] = field[idx]
			}
			// tag with the receiver's direction back to us (the opposite face, dir^1)
			mpi.ISendOne(out, dst, int(msgType)*domain.NumFaces+(dir^1))
		}
	}
	return nil
}

// ApplySum waits for outstanding transfers and accumulates the received values into
// the local node fields, used for mass/force sums across shared boundary nodes.
func (o *MPI) ApplySum(d *domain.Domain, fields [][]float64) error {
	mpi.WaitAll()
	for _, p := range o.pend {
		if !p.nodal {
			return chk.Err("ApplySum called with a non-nodal exchange round (dir=%d)", p.dir)
		}
		for fi, buf := range p.recvBufs {
			for i, idx := range p.locals {
				fields[fi][idx] += buf[i]
			}
		}
	}
	return nil
}

// ApplyCopy waits for outstanding transfers and overwrites ghost slots (or face nodes,
// for position/velocity sync) with the received values.
func (o *MPI) ApplyCopy(d *domain.Domain, fields [][]float64) error {
	mpi.WaitAll()
	for _, p := range o.pend {
		for fi, buf := range p.recvBufs {
			if p.nodal {
				for i, idx := range p.locals {
					fields[fi][idx] = buf[i]
				}
				continue
			}
			for i, idx := range p.ghosts {
				fields[fi][idx] = buf[i]
			}
		}
	}
	return nil
}

// GlobalMinDt reduces dt to its minimum across every rank (spec §4.2), using the
// same workspace-buffer shape as gosl/mpi's other all-reduce helpers.
func (o *MPI) GlobalMinDt(dt float64) (float64, error) {
	buf := []float64{dt}
	wspc := make([]float64, 1)
	mpi.AllReduceMin(buf, wspc)
	return buf[0], nil
}
