// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

// CommFaceElems returns, in a deterministic (plane,row,col)-scan order, the local
// element indices whose face dir is tagged BCComm, and the matching ghost slot index
// each one was assigned during setup. The two slices are parallel: CommFaceElems(dir)
// gives the pairing the ghost-exchange collaborator needs to pack/unpack a face.
func (d *Domain) CommFaceElems(dir int) (locals, ghosts []int32) {
	nx := d.Nx
	for p := 0; p < nx; p++ {
		for r := 0; r < nx; r++ {
			for c := 0; c < nx; c++ {
				e := p*nx*nx + r*nx + c
				if d.FaceBCs[e][dir] == BCComm {
					locals = append(locals, int32(e))
					ghosts = append(ghosts, d.LFace[dir][e])
				}
			}
		}
	}
	return
}

// NodesOnFace returns, in a deterministic scan order, the node indices lying on this
// subdomain's face plane in direction dir (c=0/c=nx for xi, etc.), regardless of that
// face's boundary condition. Used to pack/unpack nodal-sum exchange messages.
func (d *Domain) NodesOnFace(dir int) []int32 {
	nx := d.Nx
	n1d := nx + 1
	var nodes []int32
	switch dir {
	case FaceXiM, FaceXiP:
		c := 0
		if dir == FaceXiP {
			c = nx
		}
		for p := 0; p <= nx; p++ {
			for r := 0; r <= nx; r++ {
				nodes = append(nodes, int32(p*n1d*n1d+r*n1d+c))
			}
		}
	case FaceEtaM, FaceEtaP:
		r := 0
		if dir == FaceEtaP {
			r = nx
		}
		for p := 0; p <= nx; p++ {
			for c := 0; c <= nx; c++ {
				nodes = append(nodes, int32(p*n1d*n1d+r*n1d+c))
			}
		}
	case FaceZetaM, FaceZetaP:
		p := 0
		if dir == FaceZetaP {
			p = nx
		}
		for r := 0; r <= nx; r++ {
			for c := 0; c <= nx; c++ {
				nodes = append(nodes, int32(p*n1d*n1d+r*n1d+c))
			}
		}
	}
	return nodes
}

// HasCommNeighbor reports whether this subdomain has a neighbor in direction dir,
// i.e. whether it is not sitting at the global boundary on that face.
func (d *Domain) HasCommNeighbor(dir int) bool {
	switch dir {
	case FaceXiM:
		return d.ColLoc > 0
	case FaceXiP:
		return d.ColLoc < d.Tp-1
	case FaceEtaM:
		return d.RowLoc > 0
	case FaceEtaP:
		return d.RowLoc < d.Tp-1
	case FaceZetaM:
		return d.PlaneLoc > 0
	case FaceZetaP:
		return d.PlaneLoc < d.Tp-1
	}
	return false
}

// NeighborRank returns the rank of the neighbor subdomain in direction dir, or -1 if
// this subdomain sits at the global boundary on that face.
func (d *Domain) NeighborRank(dir int) int {
	if !d.HasCommNeighbor(dir) {
		return -1
	}
	col, row, plane := d.ColLoc, d.RowLoc, d.PlaneLoc
	switch dir {
	case FaceXiM:
		col--
	case FaceXiP:
		col++
	case FaceEtaM:
		row--
	case FaceEtaP:
		row++
	case FaceZetaM:
		plane--
	case FaceZetaP:
		plane++
	}
	return plane*d.Tp*d.Tp + row*d.Tp + col
}
