// Copyright 2016 The threed-beam-fea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Domain holds the assembled global linear system of one analysis.
// Boundary conditions and equation constraints are enforced with
// Lagrange multipliers:
//
//	A・u = c
//
// The resulting Kb matrix has the form:
//	 _       _
//	|  K  At  | / u \   / f \
//	|         | |   | = |   |
//	|_ A   0 _| \ λ /   \ c /
//	    Kb        x       Fb
//
// where K is the physical stiffness (elements plus ties). The first
// block row gives At・λ = f - K・u, so at an unloaded constrained dof
// the multiplier is the reaction K・u with the opposite sign.
type Domain struct {

	// input collections (borrowed)
	Job    *Job
	Bcs    []BC
	Forces []Force
	Ties   []Tie
	Eqns   []Equation

	// sizes
	Ny   int // number of displacement unknowns == 6 * number of nodes
	Nlam int // number of Lagrange multipliers == number of bcs + equations
	Nyb  int // order of the augmented system == Ny + Nlam

	// elements
	Beams []*Beam

	// linear system
	Kb *la.Triplet // augmented stiffness matrix
	Kf *la.Triplet // physical stiffness: top-left Ny by Ny block of Kb
	A  *la.Triplet // constraint coefficient matrix [Nlam][Ny]
	Fb []float64   // right-hand side

	// solution
	Xb  []float64 // solution vector: displacements then multipliers
	Sol la.LinSol // sparse solver
}

// NewDomain validates the input collections, allocates the elements and
// assembles the global system
func NewDomain(job *Job, bcs []BC, forces []Force, ties []Tie, eqns []Equation) (o *Domain, err error) {

	// check mesh
	err = CheckJob(job)
	if err != nil {
		return
	}

	// new domain
	o = new(Domain)
	o.Job = job
	o.Bcs = bcs
	o.Forces = forces
	o.Ties = ties
	o.Eqns = eqns

	// sizes
	nn := len(job.Nodes)
	o.Ny = NdofPerNode * nn
	o.Nlam = len(bcs) + len(eqns)
	o.Nyb = o.Ny + o.Nlam

	// check constraints, loads and ties
	dupbc := make(map[int]bool)
	for i, bc := range bcs {
		if bc.Node < 0 || bc.Node >= nn || bc.Dof < 0 || bc.Dof >= NdofPerNode {
			return nil, chk.Err("bc %d: (node=%d, dof=%d) out of range", i, bc.Node, bc.Dof)
		}
		eq := NdofPerNode*bc.Node + bc.Dof
		if dupbc[eq] {
			return nil, chk.Err("bc %d: duplicate constraint on node %d dof %d", i, bc.Node, bc.Dof)
		}
		dupbc[eq] = true
	}
	for i, f := range forces {
		if f.Node < 0 || f.Node >= nn || f.Dof < 0 || f.Dof >= NdofPerNode {
			return nil, chk.Err("force %d: (node=%d, dof=%d) out of range", i, f.Node, f.Dof)
		}
	}
	nnzA := len(bcs)
	for i, eqn := range eqns {
		nonzero := false
		for _, t := range eqn.Terms {
			if t.Node < 0 || t.Node >= nn || t.Dof < 0 || t.Dof >= NdofPerNode {
				return nil, chk.Err("equation %d: (node=%d, dof=%d) out of range", i, t.Node, t.Dof)
			}
			if t.Coef != 0 {
				nonzero = true
			}
		}
		if !nonzero {
			return nil, chk.Err("equation %d: must have at least one nonzero coefficient", i)
		}
		nnzA += len(eqn.Terms)
	}
	for i, tie := range ties {
		if tie.N1 < 0 || tie.N1 >= nn || tie.N2 < 0 || tie.N2 >= nn {
			return nil, chk.Err("tie %d: node indices (%d,%d) out of range", i, tie.N1, tie.N2)
		}
		if tie.N1 == tie.N2 {
			return nil, chk.Err("tie %d: nodes must be distinct", i)
		}
		if tie.Klin < 0 || tie.Krot < 0 {
			return nil, chk.Err("tie %d: spring constants must be non-negative", i)
		}
	}

	// allocate elements
	o.Beams = make([]*Beam, len(job.Elems))
	for i := range job.Elems {
		o.Beams[i], err = NewBeam(i, job)
		if err != nil {
			return nil, err
		}
	}

	// linear system
	nnzK := 144*len(job.Elems) + 4*NdofPerNode*len(ties)
	o.Kb = new(la.Triplet)
	o.Kf = new(la.Triplet)
	o.A = new(la.Triplet)
	o.Kb.Init(o.Nyb, o.Nyb, nnzK+2*nnzA)
	o.Kf.Init(o.Ny, o.Ny, nnzK)
	o.A.Init(o.Nlam, o.Ny, nnzA)
	o.Fb = make([]float64, o.Nyb)
	o.assemble()
	return
}

// assemble scatters elements, ties, constraints and forces into the
// global system. Repeated triplet coordinates sum on compression.
func (o *Domain) assemble() {

	// elements
	for _, b := range o.Beams {
		b.AddToKb(o.Kb, o.Kf)
	}

	// ties: 2 by 2 spring block per dof
	for _, tie := range o.Ties {
		for j := 0; j < NdofPerNode; j++ {
			k := tie.Klin
			if j >= 3 {
				k = tie.Krot
			}
			I := NdofPerNode*tie.N1 + j
			J := NdofPerNode*tie.N2 + j
			o.Kb.Put(I, I, k)
			o.Kb.Put(J, J, k)
			o.Kb.Put(I, J, -k)
			o.Kb.Put(J, I, -k)
			o.Kf.Put(I, I, k)
			o.Kf.Put(J, J, k)
			o.Kf.Put(I, J, -k)
			o.Kf.Put(J, I, -k)
		}
	}

	// boundary conditions: one multiplier row each
	for i, bc := range o.Bcs {
		o.A.Put(i, NdofPerNode*bc.Node+bc.Dof, 1)
		o.Fb[o.Ny+i] = bc.Value
	}

	// equation constraints: one multiplier row each, zero right-hand side
	for e, eqn := range o.Eqns {
		r := len(o.Bcs) + e
		for _, t := range eqn.Terms {
			o.A.Put(r, NdofPerNode*t.Node+t.Dof, t.Coef)
		}
	}

	// join A and tr(A) into Kb
	if o.Nlam > 0 {
		o.Kb.PutMatAndMatT(o.A)
	}

	// forces sum into the right-hand side
	for _, f := range o.Forces {
		o.Fb[NdofPerNode*f.Node+f.Dof] += f.Value
	}
}

// Clean releases resources held by the linear solver
func (o *Domain) Clean() {
	if o.Sol != nil {
		o.Sol.Clean()
	}
}
