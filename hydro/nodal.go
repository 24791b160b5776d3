// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hydro

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/cpmech/shockfem/domain"
	"github.com/cpmech/shockfem/exchange"
	"github.com/cpmech/shockfem/shape"
)

// LagrangeNodal assembles nodal forces from the current stress state (pressure,
// viscosity, hourglass stabilization) and integrates acceleration, velocity and
// position (spec §4.4). nWorkers controls the fork-join width of both the per-element
// corner-force kernel and the node scatter.
func LagrangeNodal(d *domain.Domain, ex exchange.Exchanger, nWorkers int) error {

	la.VecFill(d.Fx, 0)
	la.VecFill(d.Fy, 0)
	la.VecFill(d.Fz, 0)

	cfx := make([]float64, d.NumElem*8)
	cfy := make([]float64, d.NumElem*8)
	cfz := make([]float64, d.NumElem*8)

	forRange(d.NumElem, nWorkers, func(lo, hi int) {
		for e := lo; e < hi; e++ {
			elemCornerForces(d, e, cfx[e*8:e*8+8], cfy[e*8:e*8+8], cfz[e*8:e*8+8])
		}
	})

	if nWorkers > 1 {
		scatterByNode(d, cfx, cfy, cfz, nWorkers)
	} else {
		scatterDirect(d, cfx, cfy, cfz)
	}

	// suspension point 1/3: sum nodal force contributions across ranks (spec §5, §6)
	if err := exchange.Round(ex, d, exchange.MsgNodalSum, [][]float64{d.Fx, d.Fy, d.Fz}, false, true); err != nil {
		return err
	}

	integrateKinematics(d)

	// suspension point 2/3: synchronize positions/velocities across ranks
	return exchange.Round(ex, d, exchange.MsgPosVelSync, [][]float64{d.X, d.Y, d.Z, d.Xd, d.Yd, d.Zd}, false, false)
}

// elemCornerForces computes the 8 corner force contributions of element e: the
// stress σ=-(p+q)·I contracted with the analytic volume gradient, plus the
// γ-basis hourglass stabilization force (spec §4.4).
func elemCornerForces(d *domain.Domain, e int, fx, fy, fz []float64) {
	var x, y, z, xd, yd, zd [8]float64
	for k, n := range d.NodeList[e] {
		x[k], y[k], z[k] = d.X[n], d.Y[n], d.Z[n]
		xd[k], yd[k], zd[k] = d.Xd[n], d.Yd[n], d.Zd[n]
	}

	dvdx, dvdy, dvdz := shape.CalcElemVolumeDerivative(x, y, z)
	stress := -(d.P[e] + d.Q[e])
	for k := 0; k < 8; k++ {
		fx[k] = -stress * dvdx[k]
		fy[k] = -stress * dvdy[k]
		fz[k] = -stress * dvdz[k]
	}

	vol := d.Volo[e] * d.V[e]
	if vol <= 0 {
		return
	}
	volInv := 1.0 / vol
	scale := d.Consts.HgCoef * (d.ElemMass[e] / vol) * d.SoundSpeed[e] * math.Cbrt(vol)

	ampX := shape.HourglassModeAmplitudes(xd, dvdx, volInv)
	ampY := shape.HourglassModeAmplitudes(yd, dvdy, volInv)
	ampZ := shape.HourglassModeAmplitudes(zd, dvdz, volInv)
	for k := 0; k < 8; k++ {
		fx[k] += shape.HourglassCornerForce(ampX, k, scale)
		fy[k] += shape.HourglassCornerForce(ampY, k, scale)
		fz[k] += shape.HourglassCornerForce(ampZ, k, scale)
	}
}

// scatterByNode sums per-corner force contributions into nodal forces using the
// precomputed CSR node->element-corner adjacency, parallelized over disjoint node
// ranges so no two workers ever write the same node (spec §5 "Shared-resource policy").
func scatterByNode(d *domain.Domain, cfx, cfy, cfz []float64, nWorkers int) {
	forRange(d.NumNode, nWorkers, func(lo, hi int) {
		for n := lo; n < hi; n++ {
			var sx, sy, sz float64
			for _, tup := range d.NodeElemCol[d.NodeElemPtr[n]:d.NodeElemPtr[n+1]] {
				sx += cfx[tup]
				sy += cfy[tup]
				sz += cfz[tup]
			}
			d.Fx[n] += sx
			d.Fy[n] += sy
			d.Fz[n] += sz
		}
	})
}

// scatterDirect adds corner contributions straight into the nodal arrays; safe only
// when a single worker runs (spec §4.4 "Single-thread mode may scatter directly").
func scatterDirect(d *domain.Domain, cfx, cfy, cfz []float64) {
	for e := 0; e < d.NumElem; e++ {
		for k, n := range d.NodeList[e] {
			tup := e*8 + k
			d.Fx[n] += cfx[tup]
			d.Fy[n] += cfy[tup]
			d.Fz[n] += cfz[tup]
		}
	}
}

// integrateKinematics derives nodal acceleration from force/mass, zeroes acceleration
// normal to symmetry planes, integrates velocity and position, and snaps drifting
// velocity components to zero below the u_cut floor (spec §4.4).
func integrateKinematics(d *domain.Domain) {
	dt := d.DeltaTime
	for n := 0; n < d.NumNode; n++ {
		m := d.NodalMass[n]
		if m > 0 {
			d.Xdd[n] = d.Fx[n] / m
			d.Ydd[n] = d.Fy[n] / m
			d.Zdd[n] = d.Fz[n] / m
		}
	}
	for _, n := range d.SymmX {
		d.Xdd[n] = 0
	}
	for _, n := range d.SymmY {
		d.Ydd[n] = 0
	}
	for _, n := range d.SymmZ {
		d.Zdd[n] = 0
	}
	uCut := d.Consts.UCut
	for n := 0; n < d.NumNode; n++ {
		d.Xd[n] += d.Xdd[n] * dt
		d.Yd[n] += d.Ydd[n] * dt
		d.Zd[n] += d.Zdd[n] * dt
		if math.Abs(d.Xd[n]) < uCut {
			d.Xd[n] = 0
		}
		if math.Abs(d.Yd[n]) < uCut {
			d.Yd[n] = 0
		}
		if math.Abs(d.Zd[n]) < uCut {
			d.Zd[n] = 0
		}
		d.X[n] += d.Xd[n] * dt
		d.Y[n] += d.Yd[n] * dt
		d.Z[n] += d.Zd[n] * dt
	}
}
