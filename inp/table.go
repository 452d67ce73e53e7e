// Copyright 2016 The threed-beam-fea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ReadTable reads a numeric table with whitespace- or comma-separated
// columns and no header. Blank lines are skipped; an empty table is an
// error. Row indices in error messages are 1-based.
func ReadTable(fname string) (rows [][]float64, err error) {

	// read file
	b, err := io.ReadFile(fname)
	if err != nil {
		return nil, chk.Err("cannot open input file %q", fname)
	}

	// parse lines
	for i, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(strings.Replace(line, ",", " ", -1))
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		row := make([]float64, len(fields))
		for j, s := range fields {
			row[j], err = strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, chk.Err("file %q: row %d: cannot parse %q as a number", fname, i+1, s)
			}
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, chk.Err("file %q: no data was loaded", fname)
	}
	return
}
