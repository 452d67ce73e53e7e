// Copyright 2016 The threed-beam-fea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the input data read from a JSON configuration
// file and the tabular (CSV) files it names
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/latture/threed-beam-fea/fem"
)

// Config holds the contents of a JSON configuration file: the paths of
// the tabular input files plus the analysis options. bcs, forces and
// ties are optional; unknown members are ignored.
type Config struct {
	Nodes   string      `json:"nodes"`
	Elems   string      `json:"elems"`
	Props   string      `json:"props"`
	Bcs     string      `json:"bcs"`
	Forces  string      `json:"forces"`
	Ties    string      `json:"ties"`
	Options fem.Options `json:"options"`
}

// ReadConfig reads a configuration file. Defaults are set before
// decoding so that absent option members keep their default values;
// mistyped values are an error.
func ReadConfig(fname string) (o *Config, err error) {

	// read file
	b, err := io.ReadFile(fname)
	if err != nil {
		return nil, chk.Err("cannot open configuration input file %q", fname)
	}

	// set default values
	o = new(Config)
	o.Options = fem.NewOptions()

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("configuration file %q: %v", fname, err)
	}

	// required members
	if o.Nodes == "" {
		return nil, chk.Err("configuration file %q does not have requested member variable %q", fname, "nodes")
	}
	if o.Elems == "" {
		return nil, chk.Err("configuration file %q does not have requested member variable %q", fname, "elems")
	}
	if o.Props == "" {
		return nil, chk.Err("configuration file %q does not have requested member variable %q", fname, "props")
	}
	return
}

// LoadJob reads the tabular files named by the configuration and
// assembles the input collections of one analysis
func (o *Config) LoadJob() (job *fem.Job, bcs []fem.BC, forces []fem.Force, ties []fem.Tie, err error) {

	// nodes
	job = new(fem.Job)
	tab, err := ReadTable(o.Nodes)
	if err != nil {
		return
	}
	job.Nodes = make([]fem.Node, len(tab))
	for i, row := range tab {
		if len(row) != 3 {
			err = chk.Err("file %q: row %d does not specify x, y and z coordinates", o.Nodes, i+1)
			return
		}
		job.Nodes[i] = fem.Node{row[0], row[1], row[2]}
	}

	// elements and properties, aligned by row index
	etab, err := ReadTable(o.Elems)
	if err != nil {
		return
	}
	ptab, err := ReadTable(o.Props)
	if err != nil {
		return
	}
	if len(etab) != len(ptab) {
		err = chk.Err("the number of rows in %q did not match %q", o.Elems, o.Props)
		return
	}
	job.Elems = make([]fem.Elem, len(etab))
	for i, row := range etab {
		if len(row) != 2 {
			err = chk.Err("file %q: row %d does not specify 2 nodal indices [n1,n2]", o.Elems, i+1)
			return
		}
		prow := ptab[i]
		if len(prow) != 7 {
			err = chk.Err("file %q: row %d does not specify the 7 property values [EA,EIz,EIy,GJ,nx,ny,nz]", o.Props, i+1)
			return
		}
		job.Elems[i] = fem.Elem{
			N1: int(row[0]),
			N2: int(row[1]),
			Props: fem.Props{
				EA:     prow[0],
				EIz:    prow[1],
				EIy:    prow[2],
				GJ:     prow[3],
				Normal: fem.Node{prow[4], prow[5], prow[6]},
			},
		}
	}

	// boundary conditions
	if o.Bcs != "" {
		tab, err = ReadTable(o.Bcs)
		if err != nil {
			return
		}
		bcs = make([]fem.BC, len(tab))
		for i, row := range tab {
			if len(row) != 3 {
				err = chk.Err("file %q: row %d does not specify [node,dof,value]", o.Bcs, i+1)
				return
			}
			bcs[i] = fem.BC{Node: int(row[0]), Dof: int(row[1]), Value: row[2]}
		}
	}

	// forces
	if o.Forces != "" {
		tab, err = ReadTable(o.Forces)
		if err != nil {
			return
		}
		forces = make([]fem.Force, len(tab))
		for i, row := range tab {
			if len(row) != 3 {
				err = chk.Err("file %q: row %d does not specify [node,dof,value]", o.Forces, i+1)
				return
			}
			forces[i] = fem.Force{Node: int(row[0]), Dof: int(row[1]), Value: row[2]}
		}
	}

	// ties
	if o.Ties != "" {
		tab, err = ReadTable(o.Ties)
		if err != nil {
			return
		}
		ties = make([]fem.Tie, len(tab))
		for i, row := range tab {
			if len(row) != 4 {
				err = chk.Err("file %q: row %d does not specify [n1,n2,klin,krot]", o.Ties, i+1)
				return
			}
			ties[i] = fem.Tie{N1: int(row[0]), N2: int(row[1]), Klin: row[2], Krot: row[3]}
		}
	}
	return
}
