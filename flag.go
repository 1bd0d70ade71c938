// Copyright © 2026 The Gomon Project.

package main

import (
	"github.com/spf13/cobra"
)

type (
	// flagSet holds the command line flags.
	flagSet struct {
		pids       []int
		exhaustive bool
		verbose    bool
	}
)

const description = `The scantree command produces a tree listing of the processes found by a pool scan.`

var flags flagSet

// register defines the command line flags.
func (f *flagSet) register(cmd *cobra.Command) {
	cmd.Flags().IntSliceVar(&f.pids, "pids", nil,
		"comma separated `pids` to list with their ancestors and descendants")
	cmd.Flags().BoolVar(&f.exhaustive, "exhaustive", false,
		"exclude every nested parent from the roots, not only the first of each parent")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false,
		"log debug detail to stderr")
}
