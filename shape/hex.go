// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape implements the closed-form geometry of the single-point-quadrature
// 8-node hexahedron: its volume, the analytic gradient of that volume with respect to
// each corner (used to build nodal forces), and the hourglass stabilization basis.
package shape

// HexVolume returns the signed volume of a distorted hex with corners x,y,z given in
// the canonical order {(0,0,0),(1,0,0),(1,1,0),(0,1,0),(0,0,1),(1,0,1),(1,1,1),(0,1,1)},
// using the 12-term mixed-determinant "twelve-pointer" formula (spec §4.3). A properly
// oriented element has V>0; a nonpositive V during simulation is a fatal mesh-tangling
// condition reported by the caller.
func HexVolume(x, y, z [8]float64) float64 {
	dx31, dy31, dz31 := x[3]-x[1], y[3]-y[1], z[3]-z[1]
	dx72, dy72, dz72 := x[7]-x[2], y[7]-y[2], z[7]-z[2]
	dx63, dy63, dz63 := x[6]-x[3], y[6]-y[3], z[6]-z[3]
	dx20, dy20, dz20 := x[2]-x[0], y[2]-y[0], z[2]-z[0]
	dx70, dy70, dz70 := x[7]-x[0], y[7]-y[0], z[7]-z[0]
	dx57, dy57, dz57 := x[5]-x[7], y[5]-y[7], z[5]-z[7]
	dx43, dy43, dz43 := x[4]-x[3], y[4]-y[3], z[4]-z[3]
	dx64, dy64, dz64 := x[6]-x[4], y[6]-y[4], z[6]-z[4]
	dx14, dy14, dz14 := x[1]-x[4], y[1]-y[4], z[1]-z[4]
	dx25, dy25, dz25 := x[2]-x[5], y[2]-y[5], z[2]-z[5]
	dx61, dy61, dz61 := x[6]-x[1], y[6]-y[1], z[6]-z[1]
	dx50, dy50, dz50 := x[5]-x[0], y[5]-y[0], z[5]-z[0]

	// triple(a, b, c) = a·(b×c)
	triple := func(ax, ay, az, bx, by, bz, cx, cy, cz float64) float64 {
		return ax*(by*cz-bz*cy) + ay*(bz*cx-bx*cz) + az*(bx*cy-by*cx)
	}
	term1 := triple(dx31+dx72, dy31+dy72, dz31+dz72, dx63, dy63, dz63, dx20, dy20, dz20)
	term2 := triple(dx43+dx57, dy43+dy57, dz43+dz57, dx64, dy64, dz64, dx70, dy70, dz70)
	term3 := triple(dx14+dx25, dy14+dy25, dz14+dz25, dx61, dy61, dz61, dx50, dy50, dz50)

	return (term1 + term2 + term3) / 12.0
}

// cornerVolumeGradient is the analytic per-corner derivative of the hex's 6-face
// "twelve-pointer" volume expression, restricted to the 6 neighbors of each corner
// in the canonical node ordering. It is the building block both CalcElemVolumeDerivative
// and the single-point-quadrature corner force integral use.
func cornerVolumeGradient(x0, x1, x2, x3, x4, x5, y0, y1, y2, y3, y4, y5, z0, z1, z2, z3, z4, z5 float64) (dvdx, dvdy, dvdz float64) {
	const twelfth = 1.0 / 12.0
	dvdx = (y1+y2)*(z0+z1) - (y0+y1)*(z1+z2) +
		(y0+y4)*(z3+z4) - (y3+y4)*(z0+z4) -
		(y2+y5)*(z3+z5) + (y3+y5)*(z2+z5)
	dvdy = -(x1+x2)*(z0+z1) + (x0+x1)*(z1+z2) -
		(x0+x4)*(z3+z4) + (x3+x4)*(z0+z4) +
		(x2+x5)*(z3+z5) - (x3+x5)*(z2+z5)
	dvdz = -(y1+y2)*(x0+x1) + (y0+y1)*(x1+x2) -
		(y0+y4)*(x3+x4) + (y3+y4)*(x0+x4) +
		(y2+y5)*(x3+x5) - (y3+y5)*(x2+x5)
	dvdx *= twelfth
	dvdy *= twelfth
	dvdz *= twelfth
	return
}

// CalcElemVolumeDerivative returns, for each of the 8 corners, the gradient of the
// element volume with respect to that corner's position. This is the "analytic form
// of the corner force vectors" spec §4.4 requires: the stress tensor contracted with
// this gradient gives each corner's share of the pressure/viscosity nodal force.
func CalcElemVolumeDerivative(x, y, z [8]float64) (dvdx, dvdy, dvdz [8]float64) {
	dvdx[0], dvdy[0], dvdz[0] = cornerVolumeGradient(
		x[1], x[2], x[3], x[4], x[5], x[7],
		y[1], y[2], y[3], y[4], y[5], y[7],
		z[1], z[2], z[3], z[4], z[5], z[7])
	dvdx[3], dvdy[3], dvdz[3] = cornerVolumeGradient(
		x[0], x[1], x[2], x[7], x[4], x[6],
		y[0], y[1], y[2], y[7], y[4], y[6],
		z[0], z[1], z[2], z[7], z[4], z[6])
	dvdx[2], dvdy[2], dvdz[2] = cornerVolumeGradient(
		x[3], x[0], x[1], x[6], x[7], x[5],
		y[3], y[0], y[1], y[6], y[7], y[5],
		z[3], z[0], z[1], z[6], z[7], z[5])
	dvdx[1], dvdy[1], dvdz[1] = cornerVolumeGradient(
		x[2], x[3], x[0], x[5], x[6], x[4],
		y[2], y[3], y[0], y[5], y[6], y[4],
		z[2], z[3], z[0], z[5], z[6], z[4])
	dvdx[4], dvdy[4], dvdz[4] = cornerVolumeGradient(
		x[7], x[6], x[5], x[0], x[3], x[1],
		y[7], y[6], y[5], y[0], y[3], y[1],
		z[7], z[6], z[5], z[0], z[3], z[1])
	dvdx[5], dvdy[5], dvdz[5] = cornerVolumeGradient(
		x[4], x[7], x[6], x[1], x[0], x[2],
		y[4], y[7], y[6], y[1], y[0], y[2],
		z[4], z[7], z[6], z[1], z[0], z[2])
	dvdx[6], dvdy[6], dvdz[6] = cornerVolumeGradient(
		x[5], x[4], x[7], x[2], x[1], x[3],
		y[5], y[4], y[7], y[2], y[1], y[3],
		z[5], z[4], z[7], z[2], z[1], z[3])
	dvdx[7], dvdy[7], dvdz[7] = cornerVolumeGradient(
		x[6], x[5], x[4], x[3], x[2], x[0],
		y[6], y[5], y[4], y[3], y[2], y[0],
		z[6], z[5], z[4], z[3], z[2], z[0])
	return
}

// MaxFaceAreaSquared returns the squared area of the largest of the hex's 6 faces,
// used to compute the element's characteristic length L_char = V/√A_max (spec §4.5).
func MaxFaceAreaSquared(x, y, z [8]float64) float64 {
	faces := [6][4]int{
		{0, 1, 2, 3}, {4, 5, 6, 7}, // zeta- / zeta+
		{0, 1, 5, 4}, {3, 2, 6, 7}, // eta- / eta+
		{0, 4, 7, 3}, {1, 5, 6, 2}, // xi- / xi+
	}
	var amax float64
	for _, f := range faces {
		a := quadFaceAreaSquared(x, y, z, f)
		if a > amax {
			amax = a
		}
	}
	return amax
}

// quadFaceAreaSquared returns the squared area of a planar quad face using its two
// diagonals (standard formula: 4*Area^2 = |d1 x d2|^2 for a quad's diagonal vectors).
func quadFaceAreaSquared(x, y, z [8]float64, f [4]int) float64 {
	d1x, d1y, d1z := x[f[2]]-x[f[0]], y[f[2]]-y[f[0]], z[f[2]]-z[f[0]]
	d2x, d2y, d2z := x[f[3]]-x[f[1]], y[f[3]]-y[f[1]], z[f[3]]-z[f[1]]
	cx := d1y*d2z - d1z*d2y
	cy := d1z*d2x - d1x*d2z
	cz := d1x*d2y - d1y*d2x
	return 0.25 * (cx*cx + cy*cy + cz*cz)
}
