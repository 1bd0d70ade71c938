// Copyright © 2026 The Gomon Project.

/*
Package proctree rebuilds a process forest from process records recovered by a
memory scan. The records carry no guarantee of consistency: parents may be
missing, pids may repeat, and parent links may form loops. The forest is built
once, rendered, and discarded.
*/
package proctree

import (
	"fmt"
	"strconv"

	"github.com/zosmac/gocore"
)

type (
	// Pid is the type for the process identifier.
	Pid int

	// table maps pids to the most recently seen process record.
	table = gocore.Table[Pid, *Process]

	// Process is a process record recovered from a scan.
	Process struct {
		ID   string // address of the originating record
		Pid  Pid
		Ppid Pid
		Name string
		Path string
	}
)

// String renders the pid.
func (pid Pid) String() string {
	return strconv.Itoa(int(pid))
}

// String renders the record for logging.
func (p *Process) String() string {
	return fmt.Sprintf("%s %d %d %s %s", p.ID, p.Pid, p.Ppid, p.Name, p.Path)
}

// HasParent reports whether the record names a parent.
func (p *Process) HasParent() bool {
	return p.Ppid > 0
}

// Parent returns the parent pid.
func (p *Process) Parent() Pid {
	return p.Ppid
}
