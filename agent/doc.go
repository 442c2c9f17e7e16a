// Package agent wraps lpastar.Engine in the sense, inform, step loop
// an agent actually walks with: look at the adjacent cells for newly
// discovered walls, inform the engine of any, then take the next step
// of the freshly spliced route.
//
// dstarlite.Engine moves the agent itself in TakeStep, so cmd/replan
// drives it directly, sensing walls and calling MakeWallAt itself;
// Driver exists because lpastar.Engine does
// not move the agent itself — it only answers "what is the shortest
// path right now", leaving the walk-it-one-step-at-a-time and
// backtrack-splice bookkeeping to the caller.
package agent
