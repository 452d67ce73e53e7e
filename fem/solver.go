// Copyright 2016 The threed-beam-fea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Phases of the sparse linear solve. Failures name the phase that
// detected the problem.
const (
	PhaseSymbolic      = "symbolic analysis"
	PhaseFactorisation = "factorisation"
	PhaseSolve         = "solve"
)

// InitSolver allocates the sparse LU solver and runs the symbolic
// analysis on the nonzero pattern of Kb. The augmented system is
// indefinite, hence the unsymmetric LU backend.
func (o *Domain) InitSolver() (err error) {
	o.Sol = la.GetSolver("umfpack")
	err = o.Sol.InitR(o.Kb, false, false, false)
	if err != nil {
		return chk.Err("linear solver failed during %s:\n%v", PhaseSymbolic, err)
	}
	return
}

// Factorise computes the numeric LU factors of Kb
func (o *Domain) Factorise() (err error) {
	err = o.Sol.Fact()
	if err != nil {
		return chk.Err("linear solver failed during %s:\n%v", PhaseFactorisation, err)
	}
	return
}

// Solve computes Xb such that Kb*Xb = Fb
func (o *Domain) Solve() (err error) {
	o.Xb = make([]float64, o.Nyb)
	err = o.Sol.SolveR(o.Xb, o.Fb, false)
	if err != nil {
		return chk.Err("linear solver failed during %s:\n%v", PhaseSolve, err)
	}
	return
}
