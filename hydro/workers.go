// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hydro implements the per-cycle Lagrangian time-advance: nodal force
// assembly and kinematics, the strain/volume/viscosity/EOS element update, and the
// Courant/volume-change time-step controller (spec §4).
package hydro

// forRange runs fn(lo,hi) over [0,n) split into nWorkers disjoint chunks, fanning out
// with goroutines and fanning back in on a buffered channel -- the same shape as the
// teacher's race-detector test (shp/t_racedetect_test.go), generalized from a fixed
// two-way split to an arbitrary worker count. A single worker runs fn inline with no
// goroutine at all, matching spec §5's "single-thread mode may scatter directly".
func forRange(n, nWorkers int, fn func(lo, hi int)) {
	if nWorkers <= 1 || n <= 1 {
		fn(0, n)
		return
	}
	if nWorkers > n {
		nWorkers = n
	}
	chunk := (n + nWorkers - 1) / nWorkers
	done := make(chan int, nWorkers)
	launched := 0
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		launched++
		go func(lo, hi int) {
			fn(lo, hi)
			done <- 1
		}(lo, hi)
	}
	for i := 0; i < launched; i++ {
		<-done
	}
}
