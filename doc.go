// Copyright © 2026 The Gomon Project.

/*
Package main defines the scantree command that prints a tree listing of the processes
recovered by a pool scan of a memory image. Each line of the scan log names an _EPROCESS
record with its pid, parent pid, image name and path. The tree organizes the records by
parent/child relationships; parents without a record show as UNKNOWN, and a parent link
that loops back onto its own ancestry is marked [LOOP] rather than followed.
*/
package main
