package baseline

import "errors"

// Sentinel errors returned by the baseline searches, named after the
// teacher package's own ErrGraphNil/ErrStartVertexNotFound style.
var (
	// ErrProblemNil indicates a nil planner.Problem was passed in.
	ErrProblemNil = errors.New("baseline: problem is nil")

	// ErrStartIsWall indicates the problem's start cell is a wall,
	// which no search in this package can recover from.
	ErrStartIsWall = errors.New("baseline: start cell is a wall")
)
