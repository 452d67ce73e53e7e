// Copyright 2016 The threed-beam-fea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// NodalDisp reshapes the displacement block of the solution vector into
// one row per node, rounding magnitudes below eps to zero
func (o *Domain) NodalDisp(eps float64) [][]float64 {
	nn := len(o.Job.Nodes)
	res := la.MatAlloc(nn, NdofPerNode)
	for i := 0; i < nn; i++ {
		for j := 0; j < NdofPerNode; j++ {
			res[i][j] = roundEps(o.Xb[NdofPerNode*i+j], eps)
		}
	}
	return res
}

// NodalForces computes the reaction vector K*u using the physical
// stiffness (the top-left block of Kb, before the Lagrange
// augmentation) and reshapes it into one row per node. Free dofs come
// out zero up to numerical noise; constrained dofs carry the reactions.
// At a constrained dof the reaction plus its Lagrange multiplier in the
// solution tail equals the applied load there.
func (o *Domain) NodalForces(eps float64) [][]float64 {
	nn := len(o.Job.Nodes)
	r := make([]float64, o.Ny)
	Km := o.Kf.ToMatrix(nil)
	la.SpMatVecMulAdd(r, 1, Km, o.Xb[:o.Ny]) // r += 1 * Kf * u
	res := la.MatAlloc(nn, NdofPerNode)
	for i := 0; i < nn; i++ {
		for j := 0; j < NdofPerNode; j++ {
			res[i][j] = roundEps(r[NdofPerNode*i+j], eps)
		}
	}
	return res
}

// TieForces computes the six spring forces of each tie from the
// displacement differences of the tied nodes
func (o *Domain) TieForces(eps float64) [][]float64 {
	res := la.MatAlloc(len(o.Ties), NdofPerNode)
	for i, tie := range o.Ties {
		for j := 0; j < NdofPerNode; j++ {
			k := tie.Klin
			if j >= 3 {
				k = tie.Krot
			}
			d1 := o.Xb[NdofPerNode*tie.N1+j]
			d2 := o.Xb[NdofPerNode*tie.N2+j]
			res[i][j] = roundEps(k*(d2-d1), eps)
		}
	}
	return res
}

// Multipliers returns the Lagrange multiplier tail of the solution
// vector: one value per bc followed by one per equation constraint
func (o *Domain) Multipliers() []float64 {
	return o.Xb[o.Ny:]
}

func roundEps(v, eps float64) float64 {
	if math.Abs(v) < eps {
		return 0
	}
	return v
}
