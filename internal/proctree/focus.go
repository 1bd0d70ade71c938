// Copyright © 2026 The Gomon Project.

package proctree

import (
	"cmp"
	"io"
	"slices"
	"strings"

	"github.com/zosmac/gocore"
)

// tree organizes the focused processes into a hierarchy.
type tree = gocore.Tree[Pid]

// Focus builds the tree of the ancestors and descendants of each pid. Pids
// without a record are ignored.
func (f *Forest) Focus(pids ...Pid) tree {
	tr := tree{}
	for _, pid := range pids {
		if _, ok := f.Lookup[pid]; !ok {
			continue
		}
		f.descend(tr, append(f.ancestors(pid), pid))
	}
	return tr
}

// ancestors lists the parents of pid, eldest first. The chain ends at pid 0,
// at a parent with no record (which is included), or where a pid repeats.
func (f *Forest) ancestors(pid Pid) []Pid {
	var pids []Pid
	seen := map[Pid]struct{}{pid: {}}
	for p := f.Lookup[pid]; p != nil && p.Ppid > 0; p = f.Lookup[p.Ppid] {
		if _, ok := seen[p.Ppid]; ok {
			break
		}
		seen[p.Ppid] = struct{}{}
		pids = append([]Pid{p.Ppid}, pids...)
	}
	return pids
}

// descend adds path and every path below its last pid to the tree.
func (f *Forest) descend(tr tree, path []Pid) {
	tr.Add(path...)
	for _, c := range f.Index[path[len(path)-1]] {
		if slices.Contains(path, c.Pid) {
			continue // loop
		}
		f.descend(tr, append(slices.Clip(path), c.Pid))
	}
}

// RenderFocus displays the focus tree of pids, marking each requested pid.
func (f *Forest) RenderFocus(w io.Writer, pids ...Pid) error {
	pr := &printer{w: w}
	for depth, pid := range f.Focus(pids...).Ordered(cmp.Compare[Pid]) {
		pr.print(strings.Repeat(bar, depth), f.label(pid))
		if slices.Contains(pids, pid) {
			pr.print(" *")
		}
		pr.print("\n")
	}
	return pr.err
}
