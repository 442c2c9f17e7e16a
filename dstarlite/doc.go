// Package dstarlite implements D* Lite: an incremental replanner that
// searches backward from the goal toward the agent's current start
// cell, so that as the agent moves, only its own motion needs to be
// folded into the priority keys via an accumulated k_m offset, rather
// than re-keying every queued cell.
//
// Based on "Improved Fast Replanning for Robot Navigation in Unknown
// Terrain" (Koenig & Likhachev, ICRA 2002), the same source as
// lpastar; the two engines share grid.CostField and dpq.Queue but are
// composed independently rather than one inheriting from the other,
// since their priority-key formulas, replan triggers, and movement
// APIs (TakeStep/GetRoute vs. ExtractPath/GetRoute with backtrack
// splicing) genuinely differ.
//
// Complexity: as with lpastar, a replan after a single newly
// discovered wall costs O(k log k) in the number of cells whose
// (g, rhs) pair changes, not a full O(V log V) re-search.
package dstarlite
