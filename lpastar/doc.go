// Package lpastar implements Lifelong Planning A*: an incremental
// shortest-path search that recomputes only the part of the grid
// affected by a newly discovered wall, instead of re-running A* from
// scratch.
//
// Based on "Improved Fast Replanning for Robot Navigation in Unknown
// Terrain" (Koenig & Likhachev, ICRA 2002). Engine tracks a (g, rhs)
// pair per cell via grid.CostField and a priority queue of locally
// inconsistent cells via dpq.Queue; ComputeShortestPath drains that
// queue until the goal is locally consistent and no queued key could
// still beat it.
//
// Complexity: each call to ComputeShortestPath after a single wall
// discovery does O(k log k) work where k is the number of cells whose
// (g, rhs) pair actually changes, not O(V log V) as a fresh A* search
// would; the first call (no walls discovered yet) still costs the
// full search.
package lpastar
