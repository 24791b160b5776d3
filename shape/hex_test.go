// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func unitCube() (x, y, z [8]float64) {
	x = [8]float64{0, 1, 1, 0, 0, 1, 1, 0}
	y = [8]float64{0, 0, 1, 1, 0, 0, 1, 1}
	z = [8]float64{0, 0, 0, 0, 1, 1, 1, 1}
	return
}

func Test_hexvolume01(tst *testing.T) {

	chk.PrintTitle("hexvolume01: unit cube")

	x, y, z := unitCube()
	v := HexVolume(x, y, z)
	chk.Scalar(tst, "unit cube volume", 1e-14, v, 1.0)
}

func Test_hexvolume02(tst *testing.T) {

	chk.PrintTitle("hexvolume02: all-coincident corners")

	var x, y, z [8]float64
	for k := range x {
		x[k], y[k], z[k] = 3.0, -2.0, 7.0
	}
	v := HexVolume(x, y, z)
	chk.Scalar(tst, "degenerate hex volume", 1e-14, v, 0.0)
}

func Test_hexvolume03(tst *testing.T) {

	chk.PrintTitle("hexvolume03: top/bottom swap flips sign")

	x, y, z := unitCube()
	v1 := HexVolume(x, y, z)

	// swap bottom face (0..3) with top face (4..7): flips orientation
	var x2, y2, z2 [8]float64
	for k := 0; k < 4; k++ {
		x2[k], y2[k], z2[k] = x[k+4], y[k+4], z[k+4]
		x2[k+4], y2[k+4], z2[k+4] = x[k], y[k], z[k]
	}
	v2 := HexVolume(x2, y2, z2)
	chk.Scalar(tst, "flipped volume magnitude", 1e-14, math.Abs(v2), math.Abs(v1))
	if (v1 > 0) == (v2 > 0) {
		tst.Errorf("expected sign flip: v1=%v v2=%v", v1, v2)
	}
}

func Test_hexvolume04(tst *testing.T) {

	chk.PrintTitle("hexvolume04: scaled box volume")

	x := [8]float64{0, 2, 2, 0, 0, 2, 2, 0}
	y := [8]float64{0, 0, 3, 3, 0, 0, 3, 3}
	z := [8]float64{0, 0, 0, 0, 4, 4, 4, 4}
	v := HexVolume(x, y, z)
	chk.Scalar(tst, "box volume", 1e-12, v, 2.0*3.0*4.0)
}

func Test_maxfacearea01(tst *testing.T) {

	chk.PrintTitle("maxfacearea01: unit cube faces are all unit squares")

	x, y, z := unitCube()
	a := MaxFaceAreaSquared(x, y, z)
	chk.Scalar(tst, "max face area squared", 1e-14, a, 1.0)
}

func Test_volumederivative01(tst *testing.T) {

	chk.PrintTitle("volumederivative01: finite-difference check on a distorted hex")

	x := [8]float64{0, 1.1, 1.0, -0.1, 0.05, 1.05, 0.95, -0.05}
	y := [8]float64{0, -0.05, 1.0, 1.05, 0.05, 0.0, 1.1, 1.0}
	z := [8]float64{0, 0.05, -0.05, 0, 1.0, 1.05, 0.95, 1.1}

	dvdx, dvdy, dvdz := CalcElemVolumeDerivative(x, y, z)

	const h = 1e-6
	for k := 0; k < 8; k++ {
		xp, xm := x, x
		xp[k] += h
		xm[k] -= h
		fd := (HexVolume(xp, y, z) - HexVolume(xm, y, z)) / (2 * h)
		chk.Scalar(tst, "dV/dx", 1e-4, dvdx[k], fd)

		yp, ym := y, y
		yp[k] += h
		ym[k] -= h
		fdY := (HexVolume(x, yp, z) - HexVolume(x, ym, z)) / (2 * h)
		chk.Scalar(tst, "dV/dy", 1e-4, dvdy[k], fdY)

		zp, zm := z, z
		zp[k] += h
		zm[k] -= h
		fdZ := (HexVolume(x, y, zp) - HexVolume(x, y, zm)) / (2 * h)
		chk.Scalar(tst, "dV/dz", 1e-4, dvdz[k], fdZ)
	}
}
