// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hydro

import (
	"math"

	"github.com/cpmech/shockfem/domain"
	"github.com/cpmech/shockfem/exchange"
)

// CalcTimeConstraintsForElems scans every element and reduces the per-element Courant
// and volume-change candidates (spec §4.6) into d.DtCourant and d.DtHydro. Elements
// with vdov==0 contribute no constraint.
func CalcTimeConstraintsForElems(d *domain.Domain) {
	const eps = 1.0e-20
	dtCourant := math.MaxFloat64
	dtHydro := math.MaxFloat64

	for e := 0; e < d.NumElem; e++ {
		vdov := d.Vdov[e]
		if vdov == 0 {
			continue
		}

		c2 := d.SoundSpeed[e] * d.SoundSpeed[e]
		lchar := d.Arealg[e]
		var dtc float64
		if vdov < 0 {
			dtc = lchar / math.Sqrt(c2+d.Consts.QQC*lchar*lchar*vdov*vdov)
		} else if d.SoundSpeed[e] > 0 {
			dtc = lchar / d.SoundSpeed[e]
		}
		if dtc > 0 && dtc < dtCourant {
			dtCourant = dtc
		}

		if vdov < 0 {
			dth := d.Consts.MaxVolChange / math.Abs(vdov+eps)
			if dth < dtHydro {
				dtHydro = dth
			}
		}
	}

	d.DtCourant = dtCourant
	d.DtHydro = dtHydro
}

// TimeIncrement advances the cycle's Δt from the previous cycle's Courant and
// volume-change constraints (spec §4.2), bounding its growth between consecutive
// cycles, clamping it to not overshoot StopTime, and reducing it to the minimum
// across ranks before committing it to d.DeltaTime and advancing d.Time.
func TimeIncrement(d *domain.Domain, ex exchange.Exchanger) error {
	c := d.Consts

	newDt := d.DeltaTime
	if d.DtFixed <= 0 {
		prev := d.DeltaTime
		if prev*c.DeltaTimeUb < c.DtMax {
			newDt = prev
		} else {
			newDt = prev / c.DeltaTimeUb
		}

		if d.DtCourant < newDt*(2.0/3.0) {
			newDt = d.DtCourant * (2.0 / 3.0)
		}
		if d.DtHydro < newDt*(2.0/3.0) {
			newDt = d.DtHydro * (2.0 / 3.0)
		}

		if d.Cycle > 0 {
			ratio := newDt / prev
			if ratio >= 1.0 {
				// growing: cap at the upper bound, and suppress a rise too small
				// to be worth taking (below the lower bound) back to no change.
				if ratio > c.DeltaTimeUb {
					newDt = prev * c.DeltaTimeUb
				} else if ratio < c.DeltaTimeLb {
					newDt = prev
				}
			}
			// shrinking (ratio<1) passes through unchanged: a Courant/hydro
			// constraint may shrink Δt arbitrarily, subject only to the DtMax
			// and StopTime clamps below (spec §4.2).
		}
	} else {
		newDt = d.DtFixed
	}

	if newDt > c.DtMax {
		newDt = c.DtMax
	}
	if d.Time+newDt > d.StopTime {
		newDt = d.StopTime - d.Time
	}

	reduced, err := ex.GlobalMinDt(newDt)
	if err != nil {
		return err
	}

	d.DeltaTime = reduced
	d.Time += reduced
	d.Cycle++
	return nil
}
