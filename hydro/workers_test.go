// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hydro

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_forrange01(tst *testing.T) {

	chk.PrintTitle("forrange01: chunks cover every index exactly once")

	const n = 37
	seen := make([]int, n)
	forRange(n, 4, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			seen[i]++
		}
	})
	for i, c := range seen {
		if c != 1 {
			tst.Errorf("index %d visited %d times, want 1", i, c)
		}
	}
}

func Test_forrange02(tst *testing.T) {

	chk.PrintTitle("forrange02: single worker runs inline with no chunking")

	const n = 10
	seen := make([]int, n)
	forRange(n, 1, func(lo, hi int) {
		if lo != 0 || hi != n {
			tst.Errorf("expected a single inline call over [0,%d), got [%d,%d)", n, lo, hi)
		}
		for i := lo; i < hi; i++ {
			seen[i]++
		}
	})
	for i, c := range seen {
		if c != 1 {
			tst.Errorf("index %d visited %d times, want 1", i, c)
		}
	}
}
