// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eos implements the ideal-gas equation of state used by the core's per-cycle
// pressure/energy/sound-speed update (spec §4.5), in the iterate-and-clamp style the
// teacher's msolid material models use for their Update methods.
package eos

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// State holds the per-element quantities the gamma-law update reads and writes.
type State struct {
	E     float64 // internal energy
	P     float64 // pressure
	Q     float64 // artificial viscosity (already combined, for the work-rate term)
	V     float64 // new relative volume (post-clamp)
	Delv  float64 // Δv = v_new - v_old
	C     float64 // sound speed (output)
}

// Params holds the cutoffs the gamma-law update needs; RefDensity is the material's
// reference density (ρ = RefDensity/v).
type Params struct {
	Gamma         float64
	RefDensity    float64
	EnergyFloor   float64
	PressureFloor float64
	ECut          float64
	PCut          float64
}

// DefaultPrms returns the gamma-law proxy's default parameter table in the teacher's
// fun.Prms record shape (msolid's GetPrms pattern), so a region's material parameters
// can be read from or written to a .sim-style parameter table instead of Go literals.
func DefaultPrms() fun.Prms {
	return []*fun.Prm{
		{N: "gamma", V: 5.0 / 3.0},
		{N: "rho0", V: 1.0},
		{N: "ecut", V: 1.0e-7},
		{N: "pcut", V: 1.0e-7},
		{N: "efloor", V: -1.0e+15},
		{N: "pfloor", V: 0},
	}
}

// ParamsFromPrms builds a Params from a fun.Prms table (msolid's Init(prms) pattern),
// leaving any name it doesn't recognize untouched.
func ParamsFromPrms(prms fun.Prms) (p Params) {
	p = Params{Gamma: 5.0 / 3.0, RefDensity: 1.0, EnergyFloor: -1.0e+15, ECut: 1.0e-7, PCut: 1.0e-7}
	for _, prm := range prms {
		switch prm.N {
		case "gamma":
			p.Gamma = prm.V
		case "rho0":
			p.RefDensity = prm.V
		case "ecut":
			p.ECut = prm.V
		case "pcut":
			p.PCut = prm.V
		case "efloor":
			p.EnergyFloor = prm.V
		case "pfloor":
			p.PressureFloor = prm.V
		}
	}
	return
}

// Update applies one EOS iteration to s in place: the work-rate balance, the
// pressure/energy update, and the sound-speed recomputation (spec §4.5). qWorkTerm
// is the Δ_q_l contribution already evaluated by the caller's monotonic-q stage.
func Update(s *State, p Params, qWorkTerm float64) {
	rho := p.RefDensity / s.V

	// work rate: pressure+viscosity do work against the volume change
	deltaEWork := -(s.P+s.Q)*s.Delv - qWorkTerm

	eNew := s.E + 0.5*deltaEWork
	if eNew < p.EnergyFloor {
		eNew = p.EnergyFloor
	}

	// compatibility correction: half-step pressure at the updated energy, then
	// rebalance so that p*Δv work is consistent with the energy actually deposited
	pHalf := math.Max(p.PressureFloor, (p.Gamma-1.0)*rho*eNew)
	deltaEWork2 := -(pHalf+s.Q)*s.Delv - qWorkTerm
	eNew = s.E + 0.5*(deltaEWork+deltaEWork2)
	if eNew < p.EnergyFloor {
		eNew = p.EnergyFloor
	}
	if math.Abs(eNew) < p.ECut {
		eNew = 0
	}

	pNew := math.Max(p.PressureFloor, (p.Gamma-1.0)*rho*eNew)
	if math.Abs(pNew) < p.PCut {
		pNew = 0
	}

	ssTmp := p.Gamma * (p.Gamma - 1.0) * eNew
	ssTmp += (pNew / rho) * (p.Gamma - 1.0)
	if ssTmp < 0 {
		ssTmp = 0
	}

	s.E = eNew
	s.P = pNew
	s.C = math.Sqrt(ssTmp)
}
