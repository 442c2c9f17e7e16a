// Package baseline provides BFS, DFS, UCS, and A* search over a
// planner.Problem's ground-truth grid, for comparison against the
// incremental lpastar and dstarlite engines only. Nothing in this
// module calls into baseline during normal operation: a fresh,
// from-scratch search has none of the incremental engines' reason to
// exist, but it is the natural yardstick for checking their output
// and for measuring how many fewer cells an incremental replan
// expands versus a full re-search.
//
// Unlike the incremental engines, baseline searches see the grid's
// true wall layout directly; there is no notion of "naive" belief or
// sensing here.
package baseline
