// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

// GammaBasis is the fixed 4x8 Flanagan-Belytschko hourglass basis for the 8-node hex:
// each row is one of the four zero-energy (hourglass) deformation modes of the
// single-point-quadrature element (spec §4.4, GLOSSARY "Hourglass mode").
var GammaBasis = [4][8]float64{
	{1, 1, -1, -1, -1, -1, 1, 1},
	{1, -1, -1, 1, -1, 1, 1, -1},
	{1, -1, 1, -1, 1, -1, 1, -1},
	{-1, 1, -1, 1, 1, -1, 1, -1},
}

// HourglassModeAmplitudes projects the 8 corner values of a field (e.g. one velocity
// component) onto the 4 hourglass modes, after removing the component that is a
// linear function of position (spanned by dvdx/dvdy/dvdz) so that genuine straining
// does not get mistaken for hourglassing.
func HourglassModeAmplitudes(field [8]float64, volDeriv [8]float64, volInv float64) (amp [4]float64) {
	var proj float64
	for k := 0; k < 8; k++ {
		proj += volDeriv[k] * field[k]
	}
	proj *= volInv
	for m := 0; m < 4; m++ {
		var sum float64
		for k := 0; k < 8; k++ {
			sum += GammaBasis[m][k] * (field[k] - proj*volDeriv[k])
		}
		amp[m] = sum
	}
	return
}

// HourglassCornerForce returns the anti-hourglass stabilization force on corner k along
// one axis, given that axis's velocity-field hourglass amplitudes and the element's
// scaling term (hgcoef * density * soundspeed * cbrt(volume)), per spec §4.4. The force
// opposes the hourglass velocity pattern.
func HourglassCornerForce(amp [4]float64, corner int, scale float64) float64 {
	var f float64
	for m := 0; m < 4; m++ {
		f += GammaBasis[m][corner] * amp[m]
	}
	return -scale * f
}
