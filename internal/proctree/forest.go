// Copyright © 2026 The Gomon Project.

package proctree

import (
	"github.com/sirupsen/logrus"
)

type (
	// Forest holds the parent/child buckets and the pid lookup of one build.
	Forest struct {
		// Roots are the parent pids selected for display, in first-seen order.
		Roots []Pid
		// Index maps a parent pid to its children in input order.
		Index map[Pid][]*Process
		// Lookup maps a pid to the last record seen for it.
		Lookup table
	}

	// Option configures Build.
	Option func(*options)

	options struct {
		exhaustive bool
	}
)

// WithExhaustiveExclusion makes the anomaly filter exclude every child in a
// bucket that has children of its own, not just the first.
func WithExhaustiveExclusion() Option {
	return func(o *options) {
		o.exhaustive = true
	}
}

// Build indexes the records by parent pid and selects the roots to display.
func Build(records []*Process, opts ...Option) *Forest {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	f := &Forest{
		Index:  map[Pid][]*Process{},
		Lookup: make(table, len(records)),
	}

	var order []Pid
	for _, p := range records {
		f.Lookup[p.Pid] = p
		if _, ok := f.Index[p.Ppid]; !ok {
			order = append(order, p.Ppid)
		}
		f.Index[p.Ppid] = append(f.Index[p.Ppid], p)
	}

	// pid 0 is never a root
	delete(f.Index, 0)

	exclude := map[Pid]struct{}{}
	for _, ppid := range order {
		for _, c := range f.Index[ppid] {
			_, parent := f.Index[c.Pid]
			_, grandparent := f.Index[c.Ppid]
			if parent && grandparent {
				logrus.WithFields(logrus.Fields{
					"pid":  c.Pid,
					"ppid": c.Ppid,
				}).Debug("exclude root")
				exclude[c.Pid] = struct{}{}
				if !o.exhaustive {
					break
				}
			}
		}
	}

	for _, ppid := range order {
		if _, ok := f.Index[ppid]; !ok {
			continue
		}
		if _, ok := exclude[ppid]; ok {
			continue
		}
		f.Roots = append(f.Roots, ppid)
	}

	return f
}

// label renders the display text of a pid.
func (f *Forest) label(pid Pid) string {
	if p, ok := f.Lookup[pid]; ok {
		return pid.String() + " [" + p.Name + "] " + p.Path
	}
	return pid.String() + " [UNKNOWN]"
}
