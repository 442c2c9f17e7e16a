package planner

import "errors"

// Sentinel errors shared by the engines and the agent driver. Each
// engine package also declares any sentinel errors specific to its
// own internal invariants (e.g. dpq.ErrInvalidArity).
var (
	// ErrNonAdjacentWall is returned by D* Lite's MakeWallAt when the
	// reported coordinate is not a 4-neighbour of the current start.
	// The k_m bookkeeping depends on walls only ever being discovered
	// adjacent to the agent, so this is a hard, non-recoverable error
	// indicating a driver bug rather than a domain outcome.
	ErrNonAdjacentWall = errors.New("planner: wall reported at a non-adjacent coordinate")
)
