// Copyright 2016 The threed-beam-fea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/latture/threed-beam-fea/ana"
)

// lbracketDisp is the analytical solution of the L-bracket problem:
// node 0 clamped, uy = 0.5 prescribed at the bracket tip
var lbracketDisp = [][]float64{
	{0, 0, 0, 0, 0, 0},
	{0, 5.0 / 96.0, 0, -1.0 / 16.0, 0, 3.0 / 32.0},
	{0, 1.0 / 6.0, 0, -1.0 / 8.0, 0, 1.0 / 8.0},
	{0, 0.5, 0, -7.0 / 16.0, 0, 1.0 / 8.0},
}

func cantileverJob() *Job {
	return &Job{
		Nodes: []Node{{0, 0, 0}, {1, 0, 0}},
		Elems: []Elem{{N1: 0, N2: 1, Props: Props{EA: 1, EIz: 1, EIy: 1, GJ: 1, Normal: Node{0, 0, 1}}}},
	}
}

func Test_solve01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve01. L-bracket with prescribed displacement")

	job := lbracketJob()
	bcs := append(clampBcs(0), BC{Node: 3, Dof: DispY, Value: 0.5})
	an := NewAnalysis(job, bcs, nil, nil, nil, NewOptions())
	sum, err := an.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	chk.Matrix(tst, "u", 1e-10, sum.NodalDisp, lbracketDisp)

	// prescribed values are met exactly, not by a penalty approximation
	chk.Float64(tst, "uy @ tip", 1e-14, an.Dom.Xb[NdofPerNode*3+DispY], 0.5)
	for j := 0; j < NdofPerNode; j++ {
		chk.Float64(tst, "u @ clamped node", 1e-14, an.Dom.Xb[j], 0)
	}

	// each multiplier balances K*u against the applied load on its row
	lam := an.Dom.Multipliers()
	chk.IntAssert(len(lam), 7)
	for i, bc := range bcs {
		eq := NdofPerNode*bc.Node + bc.Dof
		r := sum.NodalForces[bc.Node][bc.Dof]
		chk.Float64(tst, io.Sf("r+lambda @ bc %d", i), 1e-10, r+lam[i], an.Dom.Fb[eq])
	}
}

func Test_solve02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve02. L-bracket with duplicated node and stiff tie")

	// node 1 split into two coincident nodes joined by a very stiff tie
	props1 := Props{EA: 10, EIz: 10, EIy: 10, GJ: 10, Normal: Node{0, 1, 0}}
	props2 := Props{EA: 10, EIz: 1, EIy: 1, GJ: 10, Normal: Node{0, 1, 0}}
	job := &Job{
		Nodes: []Node{{0, 0, 0}, {1, 0, 0}, {1, 0, 0}, {2, 0, 0}, {2, 0, 1}},
		Elems: []Elem{
			{N1: 0, N2: 1, Props: props1},
			{N1: 2, N2: 3, Props: props1},
			{N1: 3, N2: 4, Props: props2},
		},
	}
	bcs := append(clampBcs(0), BC{Node: 4, Dof: DispY, Value: 0.5})
	ties := []Tie{{N1: 1, N2: 2, Klin: 1e8, Krot: 1e8}}
	sum, err := Solve(job, bcs, nil, ties, nil, NewOptions())
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	expected := [][]float64{
		lbracketDisp[0],
		lbracketDisp[1],
		lbracketDisp[1], // coincident node behaves as its twin
		lbracketDisp[2],
		lbracketDisp[3],
	}
	chk.Matrix(tst, "u", 1e-7, sum.NodalDisp, expected)
}

func Test_solve03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve03. cantilever with tip load")

	job := cantileverJob()
	forces := []Force{{Node: 1, Dof: DispY, Value: 0.1}}
	sum, err := Solve(job, clampBcs(0), forces, nil, nil, NewOptions())
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}

	sol := ana.CantileverEndLoad{L: 1, EI: 1, F: 0.1}
	expected := [][]float64{
		{0, 0, 0, 0, 0, 0},
		{0, sol.TipDeflection(), 0, 0, 0, sol.TipRotation()},
	}
	chk.Matrix(tst, "u", 1e-13, sum.NodalDisp, expected)
}

func Test_solve04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve04. cantilever with prescribed tip displacements")

	job := cantileverJob()
	bcs := append(clampBcs(0),
		BC{Node: 1, Dof: DispX, Value: 0.1},
		BC{Node: 1, Dof: DispY, Value: 0.1},
	)
	sum, err := Solve(job, bcs, nil, nil, nil, NewOptions())
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}

	bar := ana.AxialBar{L: 1, EA: 1, D: 0.1}
	bend := ana.CantileverEndDisp{L: 1, EI: 1, D: 0.1}
	expected := [][]float64{
		{-bar.EndForce(), -bend.TipForce(), 0, 0, 0, bend.SupportMoment()},
		{bar.EndForce(), bend.TipForce(), 0, 0, 0, 0},
	}
	chk.Matrix(tst, "reactions", 1e-12, sum.NodalForces, expected)
}

func Test_solve05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve05. rigid elements joined by a weak tie")

	// the tie accommodates all of the imposed deformation
	props := Props{EA: 1e9, EIz: 1e9, EIy: 1e9, GJ: 1e9, Normal: Node{0, 1, 0}}
	job := &Job{
		Nodes: []Node{{0, 0, 0}, {1, 0, 0}, {1, 0, 0}, {2, 0, 0}},
		Elems: []Elem{
			{N1: 0, N2: 1, Props: props},
			{N1: 2, N2: 3, Props: props},
		},
	}
	ties := []Tie{{N1: 1, N2: 2, Klin: 0.01, Krot: 0.01}}
	opt := NewOptions()
	opt.Epsilon = 1e-10

	// imposed end displacement only
	bcs := append(clampBcs(0), BC{Node: 3, Dof: DispX, Value: 0.5})
	sum, err := Solve(job, bcs, nil, ties, nil, opt)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	expected := [][]float64{
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0.5, 0, 0, 0, 0, 0},
		{0.5, 0, 0, 0, 0, 0},
	}
	chk.Matrix(tst, "u", 1e-10, sum.NodalDisp, expected)

	// additional rotation across the tie: spring forces follow directly
	bcs = append(bcs, BC{Node: 2, Dof: RotX, Value: 0.5})
	sum, err = Solve(job, bcs, nil, ties, nil, opt)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	chk.Matrix(tst, "tie forces", 1e-13, sum.TieForces, [][]float64{
		{0.005, 0, 0, 0.005, 0, 0},
	})
}

func Test_solve06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve06. equilibrium of reactions and applied loads")

	job := lbracketJob()
	forces := []Force{
		{Node: 2, Dof: DispY, Value: 0.3},
		{Node: 3, Dof: DispZ, Value: -0.2},
		{Node: 3, Dof: RotY, Value: 0.1},
	}
	sum, err := Solve(job, clampBcs(0), forces, nil, nil, NewOptions())
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}

	// sum of reactions balances the applied loads in every direction.
	// note: with loads only, the reaction vector K*u includes the applied
	// loads at the loaded dofs, hence the totals must vanish.
	ftot := make([]float64, 3)
	mtot := make([]float64, 3)
	m := make([]float64, 3)
	for i, row := range sum.NodalForces {
		x := []float64{job.Nodes[i][0], job.Nodes[i][1], job.Nodes[i][2]}
		f := []float64{row[DispX], row[DispY], row[DispZ]}
		utl.Cross3d(m, x, f) // m := x cross f
		for k := 0; k < 3; k++ {
			ftot[k] += f[k]
			mtot[k] += m[k] + row[RotX+k]
		}
	}
	chk.Vector(tst, "sum F", 1e-12, ftot, []float64{0, 0, 0})
	chk.Vector(tst, "sum M", 1e-12, mtot, []float64{0, 0, 0})
}

func Test_solve07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve07. equation constraints as rigid links")

	// same mesh as solve02, but the coincident nodes are joined by six
	// equation constraints u[1,j] - u[2,j] = 0 instead of springs; this
	// reproduces the single-node solution exactly
	props1 := Props{EA: 10, EIz: 10, EIy: 10, GJ: 10, Normal: Node{0, 1, 0}}
	props2 := Props{EA: 10, EIz: 1, EIy: 1, GJ: 10, Normal: Node{0, 1, 0}}
	job := &Job{
		Nodes: []Node{{0, 0, 0}, {1, 0, 0}, {1, 0, 0}, {2, 0, 0}, {2, 0, 1}},
		Elems: []Elem{
			{N1: 0, N2: 1, Props: props1},
			{N1: 2, N2: 3, Props: props1},
			{N1: 3, N2: 4, Props: props2},
		},
	}
	bcs := append(clampBcs(0), BC{Node: 4, Dof: DispY, Value: 0.5})
	var eqns []Equation
	for j := 0; j < NdofPerNode; j++ {
		eqns = append(eqns, Equation{Terms: []EqnTerm{
			{Node: 1, Dof: j, Coef: 1},
			{Node: 2, Dof: j, Coef: -1},
		}})
	}
	sum, err := Solve(job, bcs, nil, nil, eqns, NewOptions())
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	expected := [][]float64{
		lbracketDisp[0],
		lbracketDisp[1],
		lbracketDisp[1],
		lbracketDisp[2],
		lbracketDisp[3],
	}
	chk.Matrix(tst, "u", 1e-10, sum.NodalDisp, expected)
	chk.IntAssert(sum.NumEqns, 6)
}

func Test_solve08(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve08. equation constraint carries the load")

	// a single-term equation pins the tip axially; the multiplier picks
	// up the entire applied force and the mesh does not deform
	job := cantileverJob()
	forces := []Force{{Node: 1, Dof: DispX, Value: 5}}
	eqns := []Equation{{Terms: []EqnTerm{{Node: 1, Dof: DispX, Coef: 1}}}}
	an := NewAnalysis(job, clampBcs(0), forces, nil, eqns, NewOptions())
	sum, err := an.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	chk.Matrix(tst, "u", 1e-12, sum.NodalDisp, [][]float64{
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
	})
	lam := an.Dom.Multipliers()
	chk.IntAssert(len(lam), 7)
	chk.Float64(tst, "lambda == applied force", 1e-12, lam[6], 5)
}

func Test_solve09(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve09. summary counts and state")

	job := lbracketJob()
	bcs := append(clampBcs(0), BC{Node: 3, Dof: DispY, Value: 0.5})
	an := NewAnalysis(job, bcs, nil, nil, nil, NewOptions())
	sum, err := an.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	if an.State != StateReported {
		tst.Errorf("state after Run must be StateReported")
		return
	}
	chk.IntAssert(sum.NumNodes, 4)
	chk.IntAssert(sum.NumElems, 3)
	chk.IntAssert(sum.NumBcs, 7)
	chk.IntAssert(sum.NumForces, 0)
	chk.IntAssert(sum.NumTies, 0)
	chk.IntAssert(sum.NumEqns, 0)
	if len(sum.FullReport()) == 0 {
		tst.Errorf("report must not be empty")
		return
	}

	// a singular system (no constraints at all) must fail and leave the
	// analysis in the error state
	an = NewAnalysis(job, nil, nil, nil, nil, NewOptions())
	_, err = an.Run()
	if err == nil {
		tst.Errorf("unconstrained solve must fail")
		return
	}
	if an.State != StateError {
		tst.Errorf("state after failure must be StateError")
	}
}
