// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hydro

import "github.com/cpmech/shockfem/domain"

// gatherFaceDelv resolves the Δv value seen across one face of element e, applying
// the three boundary-condition rules of spec §4.5: symmetry faces reflect (use the
// element's own Δv), free-surface faces contribute the element's own value, and
// communication faces read the ghost slot the exchange collaborator populated.
func gatherFaceDelv(d *domain.Domain, e, dirMinus, dirPlus int) (dvm, dvp float64) {
	switch d.FaceBCs[e][dirMinus] {
	case domain.BCComm:
		dvm = d.Delv[d.LFace[dirMinus][e]]
	default: // symmetry or free surface: reflect / use own value
		dvm = d.Delv[e]
	}
	switch d.FaceBCs[e][dirPlus] {
	case domain.BCComm:
		dvp = d.Delv[d.LFace[dirPlus][e]]
	default:
		dvp = d.Delv[e]
	}
	return
}

// monotonicSlope returns the clamped slope ratio between this element's Δv and the
// more-compressive of its two face neighbors along one axis (spec §4.5): the ratio
// is clamped into [0, monoq_max_slope] and is zero whenever the element is expanding.
func monotonicSlope(own, dvm, dvp float64, maxSlope float64) float64 {
	if own >= 0 {
		return 0
	}
	denom := dvm
	if dvp < denom {
		denom = dvp
	}
	if denom == 0 {
		return 0
	}
	phi := own / denom
	if phi < 0 {
		phi = 0
	}
	if phi > maxSlope {
		phi = maxSlope
	}
	return phi
}

// CalcMonotonicQForElems computes the linear and quadratic artificial-viscosity
// components for every element using monotonic slope limiting across the three axial
// face-neighbor directions (spec §4.5). Elements that are expanding (vdov>=0) get
// q forced to zero. Returns a *QStopError if any element's q exceeds the ceiling.
func CalcMonotonicQForElems(d *domain.Domain) error {
	c := d.Consts
	for e := 0; e < d.NumElem; e++ {
		if d.Vdov[e] >= 0 {
			d.Ql[e], d.Qq[e], d.Q[e] = 0, 0, 0
			continue
		}

		dvmXi, dvpXi := gatherFaceDelv(d, e, domain.FaceXiM, domain.FaceXiP)
		dvmEta, dvpEta := gatherFaceDelv(d, e, domain.FaceEtaM, domain.FaceEtaP)
		dvmZeta, dvpZeta := gatherFaceDelv(d, e, domain.FaceZetaM, domain.FaceZetaP)

		d.DelvXi[e] = dvpXi - dvmXi
		d.DelvEta[e] = dvpEta - dvmEta
		d.DelvZeta[e] = dvpZeta - dvmZeta

		own := d.Delv[e]
		phi := monotonicSlope(own, dvmXi, dvpXi, c.MonoqMaxSlope)
		phi += monotonicSlope(own, dvmEta, dvpEta, c.MonoqMaxSlope)
		phi += monotonicSlope(own, dvmZeta, dvpZeta, c.MonoqMaxSlope)
		phi = (phi / 3.0) * c.MonoqLimiterMult
		if phi > c.MonoqMaxSlope*c.MonoqLimiterMult {
			phi = c.MonoqMaxSlope * c.MonoqLimiterMult
		}

		rho := c.RefDensity / d.V[e]
		vdov := d.Vdov[e]
		d.Ql[e] = c.QLinCoeff * rho * d.Arealg[e] * (-vdov) * phi
		d.Qq[e] = c.QQuadCoeff * rho * (d.Arealg[e] * vdov) * (d.Arealg[e] * vdov) * phi
		d.Q[e] = d.Ql[e] + d.Qq[e]

		if d.Q[e] > c.QStop {
			return &domain.QStopError{Elem: e, Q: d.Q[e]}
		}
	}
	return nil
}
