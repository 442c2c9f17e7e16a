// Package mazehost provides Static, a minimal concrete
// planner.Problem implementation over a bool wall grid, used by
// cmd/replan and by tests that need a real Problem instead of a
// hand-rolled test double.
//
// Construction validation follows gridgraph.NewGridGraph's pattern:
// reject an empty or non-rectangular grid, then deep-copy it so later
// external mutation of the caller's slice can't reach back into the
// Problem.
package mazehost
