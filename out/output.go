// Copyright 2016 The threed-beam-fea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out writes analysis results: the tabular (CSV) result files
// and the textual report
package out

import (
	"bytes"
	"os"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/latture/threed-beam-fea/fem"
)

// WriteMatrix writes one row per entity with fixed-point precision and
// the given column delimiter
func WriteMatrix(fname string, mat [][]float64, precision int, delimiter string) (err error) {
	numfmt := io.Sf("%%.%df", precision)
	var buf bytes.Buffer
	for _, row := range mat {
		for j, v := range row {
			if j > 0 {
				io.Ff(&buf, "%s", delimiter)
			}
			io.Ff(&buf, numfmt, v)
		}
		io.Ff(&buf, "\n")
	}
	return saveFile(fname, &buf)
}

// SaveResults writes the result files enabled in opt and records the
// elapsed time in the summary
func SaveResults(sum *fem.Summary, opt *fem.Options) (err error) {
	start := time.Now()
	if opt.SaveNodalDisp {
		err = WriteMatrix(opt.NodalDispFn, sum.NodalDisp, opt.CsvPrecision, opt.CsvDelimiter)
		if err != nil {
			return
		}
	}
	if opt.SaveNodalFrc {
		err = WriteMatrix(opt.NodalFrcFn, sum.NodalForces, opt.CsvPrecision, opt.CsvDelimiter)
		if err != nil {
			return
		}
	}
	if opt.SaveTieFrc && sum.NumTies > 0 {
		err = WriteMatrix(opt.TieFrcFn, sum.TieForces, opt.CsvPrecision, opt.CsvDelimiter)
		if err != nil {
			return
		}
	}
	sum.FileSaveTime = time.Since(start).Milliseconds()
	return
}

// SaveReport writes the textual report to the configured file
func SaveReport(sum *fem.Summary, opt *fem.Options) (err error) {
	var buf bytes.Buffer
	io.Ff(&buf, "%s", sum.FullReport())
	return saveFile(opt.ReportFn, &buf)
}

// saveFile writes buf to filename
func saveFile(filename string, buf *bytes.Buffer) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return chk.Err("error opening file %q: %v", filename, err)
	}
	defer func() { err = fil.Close() }()
	_, err = fil.Write(buf.Bytes())
	return
}
