package mazehost

import "errors"

// Sentinel errors for mazehost construction, grounded on
// gridgraph.ErrEmptyGrid/ErrNonRectangular.
var (
	// ErrEmptyGrid indicates the input wall grid has no rows or columns.
	ErrEmptyGrid = errors.New("mazehost: input grid must have at least one row and one column")

	// ErrNonRectangular indicates the input grid's rows differ in length.
	ErrNonRectangular = errors.New("mazehost: all rows must have the same length")

	// ErrStateOutOfBounds indicates a start or goal coordinate lies
	// outside the grid.
	ErrStateOutOfBounds = errors.New("mazehost: start or goal coordinate out of bounds")

	// ErrStateIsWall indicates a start or goal coordinate is a wall.
	ErrStateIsWall = errors.New("mazehost: start or goal coordinate is a wall")
)
