// Copyright 2016 The threed-beam-fea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the command line interface of the solver
package cmd

import (
	"fmt"
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/latture/threed-beam-fea/fem"
	"github.com/latture/threed-beam-fea/inp"
	"github.com/latture/threed-beam-fea/out"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "threed-beam-fea",
	Short: "Linear static analysis of 3D beam structures",
	Long: `threed-beam-fea - 3D beam finite element analysis

Solves the linear static equilibrium of a frame structure built from
two-node Euler-Bernoulli beam elements. The mesh, section properties,
boundary conditions, forces and ties are read from the CSV files named
by a JSON configuration file; results are written back as CSV files
and a textual report.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(configPath)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the JSON configuration file")
	rootCmd.MarkFlagRequired("config")
}

// run performs one analysis from the configuration file at path
func run(path string) (err error) {

	// read input data
	cfg, err := inp.ReadConfig(path)
	if err != nil {
		return
	}
	job, bcs, forces, ties, err := cfg.LoadJob()
	if err != nil {
		return
	}

	// solve
	sum, err := fem.Solve(job, bcs, forces, ties, nil, cfg.Options)
	if err != nil {
		return
	}

	// save results
	err = out.SaveResults(sum, &cfg.Options)
	if err != nil {
		return
	}
	if cfg.Options.SaveReport {
		err = out.SaveReport(sum, &cfg.Options)
		if err != nil {
			return
		}
	}

	// report
	if cfg.Options.Verbose {
		io.Pf("%s\n", sum.FullReport())
	}
	return
}

// Execute runs the root command. Errors go to the standard error
// stream and set a nonzero exit status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}
