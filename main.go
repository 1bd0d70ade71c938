// Copyright © 2022-2026 The Gomon Project.

package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/zosmac/scantree/internal/proctree"
	"github.com/zosmac/scantree/internal/scanlog"
)

// fs is where the scan log is read from.
var fs = afero.NewOsFs()

// main
func main() {
	if err := command().Execute(); err != nil {
		os.Exit(1)
	}
}

// command defines the scantree command.
func command() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "scantree [flags] <logfile>",
		Short:        "Print the process tree of a pool scan log",
		Long:         description,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			if flags.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return Main(cmd.OutOrStdout(), args[0])
		},
	}
	flags.register(cmd)
	return cmd
}

// Main builds and displays the process tree of the scan log.
func Main(w io.Writer, name string) error {
	ps, err := scanlog.ParseFile(fs, name)
	if err != nil {
		return err
	}

	var opts []proctree.Option
	if flags.exhaustive {
		opts = append(opts, proctree.WithExhaustiveExclusion())
	}
	f := proctree.Build(ps, opts...)

	logrus.WithFields(logrus.Fields{
		"file":    name,
		"records": len(ps),
		"roots":   len(f.Roots),
	}).Debug("built process tree")

	if len(flags.pids) == 0 {
		return f.Render(w)
	}

	pids := make([]proctree.Pid, len(flags.pids))
	for i, pid := range flags.pids {
		pids[i] = proctree.Pid(pid)
	}
	return f.RenderFocus(w, pids...)
}
