// Copyright © 2026 The Gomon Project.

package proctree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func proc(pid, ppid Pid, name string) *Process {
	return &Process{
		ID:   "0xffffa0000" + pid.String(),
		Pid:  pid,
		Ppid: ppid,
		Name: name,
		Path: "/" + name,
	}
}

// branching has two children of init that each have children.
func branching() []*Process {
	return []*Process{
		proc(1, 0, "init"),
		proc(2, 1, "a"),
		proc(3, 1, "b"),
		proc(4, 2, "c"),
		proc(5, 3, "d"),
	}
}

func TestBuildEmpty(t *testing.T) {
	f := Build(nil)
	assert.Empty(t, f.Roots)
	assert.Empty(t, f.Index)
	assert.Empty(t, f.Lookup)
}

func TestBuildIndexOrder(t *testing.T) {
	f := Build([]*Process{
		proc(1, 0, "init"),
		proc(4, 1, "x"),
		proc(2, 1, "y"),
		proc(3, 1, "z"),
	})

	require.Len(t, f.Index[1], 3)
	var pids []Pid
	for _, p := range f.Index[1] {
		pids = append(pids, p.Pid)
	}
	assert.Equal(t, []Pid{4, 2, 3}, pids)
	assert.Equal(t, []Pid{1}, f.Roots)
}

func TestBuildDropsPidZero(t *testing.T) {
	f := Build([]*Process{
		proc(1, 0, "a"),
		proc(2, 0, "b"),
	})

	assert.NotContains(t, f.Index, Pid(0))
	assert.Empty(t, f.Roots)
	assert.Len(t, f.Lookup, 2)
}

func TestBuildLastWriteWins(t *testing.T) {
	f := Build([]*Process{
		proc(3, 1, "old"),
		proc(3, 1, "new"),
	})

	require.Contains(t, f.Lookup, Pid(3))
	assert.Equal(t, "new", f.Lookup[3].Name)
	assert.Len(t, f.Index[1], 2)
}

func TestBuildRootsFirstSeenOrder(t *testing.T) {
	f := Build([]*Process{
		proc(10, 30, "a"),
		proc(11, 20, "b"),
		proc(12, 30, "c"),
		proc(13, 40, "d"),
	})

	assert.Equal(t, []Pid{30, 20, 40}, f.Roots)
}

func TestBuildExcludesReachableChild(t *testing.T) {
	f := Build([]*Process{
		proc(10, 0, "p"),
		proc(11, 10, "c"),
		proc(12, 11, "d"),
		proc(13, 12, "e"),
	})

	assert.Equal(t, []Pid{10}, f.Roots)
	assert.NotContains(t, f.Roots, Pid(11))
}

func TestBuildExclusionStopsAtFirstMatch(t *testing.T) {
	f := Build(branching())
	assert.Equal(t, []Pid{1, 3}, f.Roots)
}

func TestBuildExhaustiveExclusion(t *testing.T) {
	f := Build(branching(), WithExhaustiveExclusion())
	assert.Equal(t, []Pid{1}, f.Roots)
}

func TestBuildUnknownParentIsRoot(t *testing.T) {
	f := Build([]*Process{proc(7, 99, "x")})

	assert.Equal(t, []Pid{99}, f.Roots)
	assert.NotContains(t, f.Lookup, Pid(99))
}

func TestProcessString(t *testing.T) {
	p := &Process{ID: "0xffff8001", Pid: 4, Ppid: 0, Name: "System", Path: "System"}
	assert.Equal(t, "0xffff8001 4 0 System System", p.String())
}

func TestProcessParent(t *testing.T) {
	p := proc(8, 4, "csrss")
	assert.True(t, p.HasParent())
	assert.Equal(t, Pid(4), p.Parent())

	p = proc(4, 0, "System")
	assert.False(t, p.HasParent())
}
