// Copyright © 2026 The Gomon Project.

package proctree

import (
	"io"
	"slices"
	"strings"

	"github.com/zosmac/gocore"
)

const (
	// LoopMarker follows the label of a pid already on its own ancestor path.
	LoopMarker = "[LOOP]"

	branch = "|- "
	corner = "`_ "
	bar    = "| "
	blank  = "  "
)

// printer remembers the first write error so the walk need not check each write.
type printer struct {
	w   io.Writer
	err error
}

func (pr *printer) print(ss ...string) {
	if pr.err != nil {
		return
	}
	for _, s := range ss {
		if _, err := io.WriteString(pr.w, s); err != nil {
			pr.err = gocore.Error("write", err)
			return
		}
	}
}

// Render displays the tree of each root in turn.
func (f *Forest) Render(w io.Writer) error {
	pr := &printer{w: w}
	for _, pid := range f.Roots {
		f.walk(pr, pid, "", nil)
	}
	return pr.err
}

// RenderTree displays the tree below pid, whether or not pid is a root.
func (f *Forest) RenderTree(w io.Writer, pid Pid) error {
	pr := &printer{w: w}
	f.walk(pr, pid, "", nil)
	return pr.err
}

// String renders the whole forest.
func (f *Forest) String() string {
	var sb strings.Builder
	_ = f.Render(&sb) // a strings.Builder never fails a write
	return sb.String()
}

// walk prints pid and descends into its children. path holds the pids from the
// root down to pid's parent and is never modified in place.
func (f *Forest) walk(pr *printer, pid Pid, indent string, path []Pid) {
	label := f.label(pid)
	if slices.Contains(path, pid) {
		pr.print(label, " ", LoopMarker, "\n")
		return
	}
	pr.print(label, "\n")

	children := f.Index[pid]
	if len(children) == 0 {
		return
	}
	path = append(slices.Clip(path), pid)

	last := len(children) - 1
	for _, c := range children[:last] {
		pr.print(indent, branch)
		f.walk(pr, c.Pid, indent+bar, path)
	}
	pr.print(indent, corner)
	f.walk(pr, children[last].Pid, indent+blank, path)
}
