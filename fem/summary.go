// Copyright 2016 The threed-beam-fea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/io"
)

// Summary records the sizes, timings and results of one analysis.
// It is filled once by Analysis.Run and immutable thereafter, except
// for the file-save time which the output layer records after saving.
type Summary struct {

	// model parameters
	NumNodes  int
	NumElems  int
	NumBcs    int
	NumForces int
	NumTies   int
	NumEqns   int

	// timings [ms]
	TotalTime         int64
	AssemblyTime      int64
	PreprocessingTime int64 // symbolic analysis of the nonzero pattern
	FactorisationTime int64
	SolveTime         int64
	NodalForcesTime   int64
	TieForcesTime     int64
	FileSaveTime      int64

	// results. one row per node (or tie), six columns in dof order
	NodalDisp   [][]float64
	NodalForces [][]float64
	TieForces   [][]float64
}

// FullReport returns a textual report with the model parameters, the
// per-phase timings and the extrema of the result matrices
func (o *Summary) FullReport() (l string) {

	// model parameters
	l = "\nFinite Element Analysis Summary\n\nModel parameters\n"
	l += io.Sf("\t%-20s: %d\n", "Nodes", o.NumNodes)
	l += io.Sf("\t%-20s: %d\n", "Elements", o.NumElems)
	l += io.Sf("\t%-20s: %d\n", "BCs", o.NumBcs)
	l += io.Sf("\t%-20s: %d\n", "Ties", o.NumTies)
	l += io.Sf("\t%-20s: %d\n", "Forces", o.NumForces)
	l += io.Sf("\t%-20s: %d\n", "Equations", o.NumEqns)

	// timings
	l += io.Sf("\nTotal time %dms\n", o.TotalTime)
	l += io.Sf("\t%-30s: %dms\n", "Assembly time", o.AssemblyTime)
	l += io.Sf("\t%-30s: %dms\n", "Preprocessing time", o.PreprocessingTime)
	l += io.Sf("\t%-30s: %dms\n", "Factorisation time", o.FactorisationTime)
	l += io.Sf("\t%-30s: %dms\n", "Linear solve time", o.SolveTime)
	l += io.Sf("\t%-30s: %dms\n", "Forces solve time", o.NodalForcesTime)
	if o.NumTies > 0 {
		l += io.Sf("\t%-30s: %dms\n", "Ties solve time", o.TieForcesTime)
	}
	l += io.Sf("\t%-30s: %dms\n", "File save time", o.FileSaveTime)

	// extrema
	l += reportMinMax("Nodal displacements", "Node", o.NodalDisp)
	l += reportMinMax("Nodal Forces", "Node", o.NodalForces)
	if o.NumTies > 0 {
		l += reportMinMax("Tie Forces", "Tie", o.TieForces)
	}
	return
}

// reportMinMax renders the location and value of the extrema of mat
func reportMinMax(title, entity string, mat [][]float64) string {
	if len(mat) == 0 {
		return ""
	}
	imin, jmin, imax, jmax := matArgMinMax(mat)
	return io.Sf("\n%s\n\tMinimum : %s %d\tDOF %d\tValue %.3f\n\tMaximum : %s %d\tDOF %d\tValue %.3f\n",
		title, entity, imin, jmin, mat[imin][jmin], entity, imax, jmax, mat[imax][jmax])
}

// matArgMinMax finds the (row, col) locations of the smallest and
// largest entries of mat
func matArgMinMax(mat [][]float64) (imin, jmin, imax, jmax int) {
	min, max := mat[0][0], mat[0][0]
	for i, row := range mat {
		for j, v := range row {
			if v < min {
				imin, jmin, min = i, j, v
			}
			if v > max {
				imax, jmax, max = i, j, v
			}
		}
	}
	return
}
