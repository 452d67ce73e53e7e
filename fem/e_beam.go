// Copyright 2016 The threed-beam-fea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Beam represents one spatial two-node structural beam element
// (Euler-Bernoulli, linear elastic)
//
//	 y                                 Props:
//	 ^                                  EA         -- axial
//	 |                                  EIz, EIy   -- bending
//	(0)============================(1)--> x        GJ -- torsion
//
//	local x runs along the element axis; the user-given reference
//	normal defines local y; local z completes the triad
type Beam struct {

	// basic data
	Id int  // element index in the job
	El Elem // connectivity and section properties
	L  float64

	// vectors and matrices
	T  [][]float64 // global-to-local transformation matrix [12][12]
	Kl [][]float64 // local K matrix
	K  [][]float64 // global K matrix

	// problem variables
	Umap []int // assembly map (location array/element equations)
}

// NewBeam returns a new beam element for element index id of job.
// The stiffness and transformation matrices are computed immediately.
func NewBeam(id int, job *Job) (o *Beam, err error) {

	// basic data
	o = new(Beam)
	o.Id = id
	o.El = job.Elems[id]

	// vectors and matrices
	nu := 2 * NdofPerNode
	o.T = la.MatAlloc(nu, nu)
	o.Kl = la.MatAlloc(nu, nu)
	o.K = la.MatAlloc(nu, nu)

	// assembly map
	o.Umap = make([]int, nu)
	for i := 0; i < NdofPerNode; i++ {
		o.Umap[i] = NdofPerNode*o.El.N1 + i
		o.Umap[i+NdofPerNode] = NdofPerNode*o.El.N2 + i
	}

	// compute K
	err = o.Recompute(job.Nodes[o.El.N1], job.Nodes[o.El.N2])
	if err != nil {
		return nil, chk.Err("element %d: %v", id, err)
	}
	return
}

// Recompute computes T, Kl and K for endpoints x1 and x2
func (o *Beam) Recompute(x1, x2 Node) (err error) {

	// unit vector along the element axis
	nx := []float64{x2[0] - x1[0], x2[1] - x1[1], x2[2] - x1[2]}
	l := math.Sqrt(utl.Dot3d(nx, nx))
	if l < 1e-14 {
		return chk.Err("element has zero length")
	}
	o.L = l
	for i := 0; i < 3; i++ {
		nx[i] /= l
	}

	// unit vector defining the local y axis
	ny := []float64{o.El.Props.Normal[0], o.El.Props.Normal[1], o.El.Props.Normal[2]}
	ln := math.Sqrt(utl.Dot3d(ny, ny))
	if ln < 1e-14 {
		return chk.Err("reference normal has zero length")
	}
	for i := 0; i < 3; i++ {
		ny[i] /= ln
	}

	// local z completes the triad. ny is normalised above but not
	// re-orthogonalised against the axis; when the supplied normal is not
	// exactly perpendicular to the axis the triad is mildly non-orthogonal.
	nz := make([]float64, 3)
	utl.Cross3d(nz, nx, ny) // nz := nx cross ny
	lz := math.Sqrt(utl.Dot3d(nz, nz))
	if lz < 1e-14 {
		return chk.Err("reference normal is parallel to the element axis")
	}
	for i := 0; i < 3; i++ {
		nz[i] /= lz
	}

	// global to local transformation matrix
	for k := 0; k < 4; k++ {
		o.T[3*k+0][3*k+0], o.T[3*k+0][3*k+1], o.T[3*k+0][3*k+2] = nx[0], nx[1], nx[2]
		o.T[3*k+1][3*k+0], o.T[3*k+1][3*k+1], o.T[3*k+1][3*k+2] = ny[0], ny[1], ny[2]
		o.T[3*k+2][3*k+0], o.T[3*k+2][3*k+1], o.T[3*k+2][3*k+2] = nz[0], nz[1], nz[2]
	}

	// constants
	EA, EIz, EIy, GJ := o.El.Props.EA, o.El.Props.EIz, o.El.Props.EIy, o.El.Props.GJ
	ll := l * l
	lll := l * ll

	// stiffness matrix in local system
	o.Kl[0][0] = EA / l
	o.Kl[0][6] = -EA / l

	o.Kl[1][1] = 12.0 * EIz / lll
	o.Kl[1][5] = 6.0 * EIz / ll
	o.Kl[1][7] = -12.0 * EIz / lll
	o.Kl[1][11] = 6.0 * EIz / ll

	o.Kl[2][2] = 12.0 * EIy / lll
	o.Kl[2][4] = -6.0 * EIy / ll
	o.Kl[2][8] = -12.0 * EIy / lll
	o.Kl[2][10] = -6.0 * EIy / ll

	o.Kl[3][3] = GJ / l
	o.Kl[3][9] = -GJ / l

	o.Kl[4][2] = -6.0 * EIy / ll
	o.Kl[4][4] = 4.0 * EIy / l
	o.Kl[4][8] = 6.0 * EIy / ll
	o.Kl[4][10] = 2.0 * EIy / l

	o.Kl[5][1] = 6.0 * EIz / ll
	o.Kl[5][5] = 4.0 * EIz / l
	o.Kl[5][7] = -6.0 * EIz / ll
	o.Kl[5][11] = 2.0 * EIz / l

	o.Kl[6][0] = -EA / l
	o.Kl[6][6] = EA / l

	o.Kl[7][1] = -12.0 * EIz / lll
	o.Kl[7][5] = -6.0 * EIz / ll
	o.Kl[7][7] = 12.0 * EIz / lll
	o.Kl[7][11] = -6.0 * EIz / ll

	o.Kl[8][2] = -12.0 * EIy / lll
	o.Kl[8][4] = 6.0 * EIy / ll
	o.Kl[8][8] = 12.0 * EIy / lll
	o.Kl[8][10] = 6.0 * EIy / ll

	o.Kl[9][3] = -GJ / l
	o.Kl[9][9] = GJ / l

	o.Kl[10][2] = -6.0 * EIy / ll
	o.Kl[10][4] = 2.0 * EIy / l
	o.Kl[10][8] = 6.0 * EIy / ll
	o.Kl[10][10] = 4.0 * EIy / l

	o.Kl[11][1] = 6.0 * EIz / ll
	o.Kl[11][5] = 2.0 * EIz / l
	o.Kl[11][7] = -6.0 * EIz / ll
	o.Kl[11][11] = 4.0 * EIz / l

	// stiffness matrix in global system
	la.MatTrMul3(o.K, 1, o.T, o.Kl, o.T) // K := 1 * trans(T) * Kl * T
	return
}

// AddToKb adds the element stiffness to the global triplets Kb and Kf
func (o *Beam) AddToKb(Kb, Kf *la.Triplet) {
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			Kb.Put(I, J, o.K[i][j])
			Kf.Put(I, J, o.K[i][j])
		}
	}
}
