// Copyright 2016 The threed-beam-fea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fem solves linear static analyses of three-dimensional frame
// structures built from two-node Euler-Bernoulli beam elements.
// Boundary conditions and linear multipoint constraints are enforced
// exactly with Lagrange multipliers; pairs of nodes may additionally be
// joined by tie springs. The augmented sparse system is factorised with
// an unsymmetric sparse LU.
package fem

import (
	"time"

	"github.com/cpmech/gosl/io"
)

// State indicates the stage reached by one analysis
type State int

const (
	StateInitial  State = iota
	StateBuilt          // global system assembled
	StateFactored       // sparse LU factors computed
	StateSolved         // solution vector available
	StateReported       // summary filled
	StateError          // a phase failed; the analysis is unusable
)

// Analysis holds all data for one linear static frame analysis
type Analysis struct {

	// input (borrowed)
	Job    *Job
	Bcs    []BC
	Forces []Force
	Ties   []Tie
	Eqns   []Equation
	Opt    Options

	// derived
	Dom   *Domain
	Sum   *Summary
	State State
}

// NewAnalysis returns a new analysis for the given input collections.
// The inputs are only borrowed and are not modified.
func NewAnalysis(job *Job, bcs []BC, forces []Force, ties []Tie, eqns []Equation, opt Options) *Analysis {
	return &Analysis{Job: job, Bcs: bcs, Forces: forces, Ties: ties, Eqns: eqns, Opt: opt}
}

// Solve assembles and solves in one call, returning the summary
func Solve(job *Job, bcs []BC, forces []Force, ties []Tie, eqns []Equation, opt Options) (*Summary, error) {
	return NewAnalysis(job, bcs, forces, ties, eqns, opt).Run()
}

// Run performs the full pipeline: assembly, symbolic analysis,
// factorisation, solution and post-processing. Any failure aborts the
// run; nothing is retried.
func (o *Analysis) Run() (sum *Summary, err error) {

	// exit commands
	t0 := time.Now()
	defer func() {
		if err != nil {
			o.State = StateError
		}
	}()

	// summary
	o.Sum = &Summary{
		NumNodes:  len(o.Job.Nodes),
		NumElems:  len(o.Job.Elems),
		NumBcs:    len(o.Bcs),
		NumForces: len(o.Forces),
		NumTies:   len(o.Ties),
		NumEqns:   len(o.Eqns),
	}

	// assemble global system
	start := time.Now()
	o.Dom, err = NewDomain(o.Job, o.Bcs, o.Forces, o.Ties, o.Eqns)
	if err != nil {
		return
	}
	o.Sum.AssemblyTime = msSince(start)
	o.State = StateBuilt
	if o.Opt.Verbose {
		io.Pf("> Global stiffness matrix assembled in %d ms\n", o.Sum.AssemblyTime)
	}
	defer o.Dom.Clean()

	// symbolic analysis
	start = time.Now()
	err = o.Dom.InitSolver()
	if err != nil {
		return
	}
	o.Sum.PreprocessingTime = msSince(start)
	if o.Opt.Verbose {
		io.Pf("> Preprocessing step of factorisation completed in %d ms\n", o.Sum.PreprocessingTime)
	}

	// factorisation
	start = time.Now()
	err = o.Dom.Factorise()
	if err != nil {
		return
	}
	o.Sum.FactorisationTime = msSince(start)
	o.State = StateFactored
	if o.Opt.Verbose {
		io.Pf("> Factorisation completed in %d ms\n", o.Sum.FactorisationTime)
	}

	// solve
	start = time.Now()
	err = o.Dom.Solve()
	if err != nil {
		return
	}
	o.Sum.SolveTime = msSince(start)
	o.State = StateSolved
	if o.Opt.Verbose {
		io.Pf("> System solved in %d ms\n", o.Sum.SolveTime)
	}

	// nodal displacements and reactions
	o.Sum.NodalDisp = o.Dom.NodalDisp(o.Opt.Epsilon)
	start = time.Now()
	o.Sum.NodalForces = o.Dom.NodalForces(o.Opt.Epsilon)
	o.Sum.NodalForcesTime = msSince(start)

	// tie forces
	if len(o.Ties) > 0 {
		start = time.Now()
		o.Sum.TieForces = o.Dom.TieForces(o.Opt.Epsilon)
		o.Sum.TieForcesTime = msSince(start)
	}

	o.Sum.TotalTime = msSince(t0)
	o.State = StateReported
	return o.Sum, nil
}

func msSince(t time.Time) int64 {
	return time.Since(t).Milliseconds()
}
