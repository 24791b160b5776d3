// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import "github.com/cpmech/gosl/io"

// VolumeError signals that an element's new volume is non-positive: the mesh has tangled
// and the run cannot continue.
type VolumeError struct {
	Elem int
	V    float64
}

func (e *VolumeError) Error() string {
	return io.Sf("VolumeError: element %d has non-positive volume (v=%v)", e.Elem, e.V)
}

// QStopError signals that an element's artificial viscosity exceeded the configured
// ceiling: the viscosity has run away and the run cannot continue.
type QStopError struct {
	Elem int
	Q    float64
}

func (e *QStopError) Error() string {
	return io.Sf("QStopError: element %d has q=%v above qstop", e.Elem, e.Q)
}
