// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hydro

import (
	"math"
	"sync"

	"github.com/cpmech/gosl/la"

	"github.com/cpmech/shockfem/domain"
	"github.com/cpmech/shockfem/eos"
	"github.com/cpmech/shockfem/exchange"
	"github.com/cpmech/shockfem/shape"
)

// LagrangeElements computes the new element volume, strain rate and characteristic
// length from the positions LagrangeNodal just integrated, gathers the monotonic
// artificial-viscosity slopes across rank and face boundaries, and applies the
// equation of state (spec §4.5). nWorkers controls the strain/volume kernel's
// fork-join width; the EOS stage is run per region so the imbalance-cost replication
// of spec §4.5/§9 stays scoped to one region's work.
func LagrangeElements(d *domain.Domain, ex exchange.Exchanger, nWorkers int) error {

	var errMu sync.Mutex
	var firstErr error
	forRange(d.NumElem, nWorkers, func(lo, hi int) {
		for e := lo; e < hi; e++ {
			if err := calcStrainAndVolume(d, e); err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
			}
		}
	})
	if firstErr != nil {
		return firstErr
	}

	// suspension point 3/3: copy Δv into ghost slots so the
	// monotonic limiter can read neighbor-rank elements (spec §5, §6)
	if err := exchange.Round(ex, d, exchange.MsgQGradCopy, [][]float64{d.Delv}, false, false); err != nil {
		return err
	}

	if err := CalcMonotonicQForElems(d); err != nil {
		return err
	}

	if err := evalEOSByRegion(d); err != nil {
		return err
	}

	applyFloorCuts(d)
	return nil
}

// calcStrainAndVolume computes element e's new relative volume, characteristic
// length and principal strain-rate diagonal from the current nodal positions and
// velocities (spec §4.5). Returns a *VolumeError if the new volume is non-positive.
func calcStrainAndVolume(d *domain.Domain, e int) error {
	var x, y, z, xd, yd, zd [8]float64
	for k, n := range d.NodeList[e] {
		x[k], y[k], z[k] = d.X[n], d.Y[n], d.Z[n]
		xd[k], yd[k], zd[k] = d.Xd[n], d.Yd[n], d.Zd[n]
	}

	vNew := shape.HexVolume(x, y, z) / d.Volo[e]
	if vNew <= 0 {
		return &domain.VolumeError{Elem: e, V: vNew}
	}

	amax := shape.MaxFaceAreaSquared(x, y, z)
	vol := vNew * d.Volo[e]
	if amax > 0 {
		d.Arealg[e] = vol / math.Sqrt(amax)
	}

	dvdx, dvdy, dvdz := shape.CalcElemVolumeDerivative(x, y, z)
	volInv := 0.0
	if vol > 0 {
		volInv = 1.0 / vol
	}
	var dxx, dyy, dzz float64
	for k := 0; k < 8; k++ {
		dxx += dvdx[k] * xd[k]
		dyy += dvdy[k] * yd[k]
		dzz += dvdz[k] * zd[k]
	}
	d.Dxx[e] = dxx * volInv
	d.Dyy[e] = dyy * volInv
	d.Dzz[e] = dzz * volInv

	clamped := vNew
	if clamped < d.Consts.EOSVmin {
		clamped = d.Consts.EOSVmin
	}
	if clamped > d.Consts.EOSVmax {
		clamped = d.Consts.EOSVmax
	}
	d.Vnew[e] = clamped
	// vdov is (Δv/Δt)/v, a rate -- the velocity divergence, not a per-cycle
	// increment (spec §3); the Courant and monotonic-q kernels both combine it
	// with a length (Arealg) to get a velocity-dimensioned quantity.
	d.Vdov[e] = d.Dxx[e] + d.Dyy[e] + d.Dzz[e]
	d.Delv[e] = clamped - d.V[e]
	return nil
}

// evalEOSByRegion runs the gamma-law EOS update (package eos) for every element,
// region by region, replicating one region's work CostMult times to reproduce the
// synthetic load imbalance of spec §4.5/§9 Open Question 2.
func evalEOSByRegion(d *domain.Domain) error {
	params := eos.Params{
		Gamma:         d.Consts.Gamma,
		RefDensity:    d.Consts.RefDensity,
		EnergyFloor:   d.Consts.EnergyFloor,
		PressureFloor: d.Consts.PressureFloor,
		ECut:          d.Consts.ECut,
		PCut:          d.Consts.PCut,
	}
	for _, reg := range d.Regions {
		reps := reg.CostMult
		if reps < 1 {
			reps = 1
		}
		for i := 0; i < reps; i++ {
			for _, e := range reg.ElemIDs {
				qWork := 0.5 * (d.Ql[e]) * d.Delv[e]
				s := eos.State{E: d.E[e], P: d.P[e], Q: d.Q[e], V: d.Vnew[e], Delv: d.Delv[e]}
				eos.Update(&s, params, qWork)
				// only the final replication's result is retained; earlier replications
				// are pure extra work standing in for a costlier material model
				if i == reps-1 {
					d.E[e] = s.E
					d.P[e] = s.P
					d.SoundSpeed[e] = s.C
				}
			}
		}
	}
	return nil
}

// applyFloorCuts snaps small values to the neutral zero/one the spec's numerical
// floor-cuts require, and commits the new relative volume (spec §4.5, §7).
func applyFloorCuts(d *domain.Domain) {
	c := d.Consts
	la.VecCopy(d.V, 1.0, d.Vnew[:d.NumElem])
	for e := 0; e < d.NumElem; e++ {
		if math.Abs(d.V[e]-1.0) < c.VCut {
			d.V[e] = 1.0
		}
		if math.Abs(d.Q[e]) < c.QCut {
			d.Q[e] = 0
		}
	}
}
