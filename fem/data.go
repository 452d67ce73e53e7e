// Copyright 2016 The threed-beam-fea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/chk"

// Dof indices at each node. Every node carries six degrees of freedom:
// three translations followed by three rotations, in this order.
const (
	DispX = iota // displacement along global x
	DispY        // displacement along global y
	DispZ        // displacement along global z
	RotX         // rotation about global x
	RotY         // rotation about global y
	RotZ         // rotation about global z
)

// NdofPerNode is the number of degrees of freedom per node
const NdofPerNode = 6

// Node holds the (x, y, z) coordinates of one mesh point
type Node [3]float64

// Props holds the section properties of one beam element
type Props struct {
	EA     float64 // axial stiffness
	EIz    float64 // bending stiffness about local z
	EIy    float64 // bending stiffness about local y
	GJ     float64 // torsional stiffness
	Normal Node    // reference normal defining the local y axis
}

// Elem connects two nodes with one beam element
type Elem struct {
	N1, N2 int   // node indices
	Props  Props // section properties
}

// Job holds the mesh: nodes and the elements connecting them
type Job struct {
	Nodes []Node
	Elems []Elem
}

// BC prescribes the value of one degree of freedom at one node
type BC struct {
	Node  int     // node index
	Dof   int     // local dof index: DispX..RotZ
	Value float64 // prescribed displacement or rotation
}

// Force applies a concentrated load or moment at one node.
// Repeated entries addressing the same (node, dof) sum.
type Force struct {
	Node  int     // node index
	Dof   int     // local dof index: DispX..RotZ
	Value float64 // force (dof < 3) or moment (dof >= 3)
}

// Tie joins two nodes with six independent linear springs: three
// translational with stiffness Klin and three rotational with Krot
type Tie struct {
	N1, N2 int     // node indices
	Klin   float64 // stiffness of the translational springs
	Krot   float64 // stiffness of the rotational springs
}

// EqnTerm is one term c * u[node,dof] of an equation constraint
type EqnTerm struct {
	Node int     // node index
	Dof  int     // local dof index: DispX..RotZ
	Coef float64 // coefficient
}

// Equation is a linear multipoint constraint: sum of terms equals zero
type Equation struct {
	Terms []EqnTerm
}

// Options customises one analysis. Zero-magnitude rounding, output
// precision and the result files to be written are all set here.
type Options struct {
	Epsilon       float64 `json:"epsilon"`       // results with magnitude below this are rounded to zero
	CsvPrecision  int     `json:"csv_precision"` // number of decimal places in result files
	CsvDelimiter  string  `json:"csv_delimiter"` // delimiter in result files
	SaveNodalDisp bool    `json:"save_nodal_displacements"`
	SaveNodalFrc  bool    `json:"save_nodal_forces"`
	SaveTieFrc    bool    `json:"save_tie_forces"`
	Verbose       bool    `json:"verbose"`     // print progress and the final report
	SaveReport    bool    `json:"save_report"` // write the textual report
	NodalDispFn   string  `json:"nodal_displacements_filename"`
	NodalFrcFn    string  `json:"nodal_forces_filename"`
	TieFrcFn      string  `json:"tie_forces_filename"`
	ReportFn      string  `json:"report_filename"`
}

// NewOptions returns options with default values
func NewOptions() Options {
	return Options{
		Epsilon:      1e-14,
		CsvPrecision: 14,
		CsvDelimiter: ",",
		NodalDispFn:  "nodal_displacements.csv",
		NodalFrcFn:   "nodal_forces.csv",
		TieFrcFn:     "tie_forces.csv",
		ReportFn:     "report.txt",
	}
}

// CheckJob verifies basic consistency of the mesh
func CheckJob(job *Job) (err error) {
	nn := len(job.Nodes)
	if nn == 0 {
		return chk.Err("mesh must have at least one node")
	}
	for i, el := range job.Elems {
		if el.N1 < 0 || el.N1 >= nn || el.N2 < 0 || el.N2 >= nn {
			return chk.Err("element %d: node indices (%d,%d) out of range [0,%d)", i, el.N1, el.N2, nn)
		}
		if el.N1 == el.N2 {
			return chk.Err("element %d: nodes must be distinct", i)
		}
		if el.Props.EA < 0 || el.Props.EIz < 0 || el.Props.EIy < 0 || el.Props.GJ < 0 {
			return chk.Err("element %d: section stiffness values must be non-negative", i)
		}
	}
	return
}
