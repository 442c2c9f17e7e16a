package grid

import "errors"

// Sentinel errors for grid construction and access, grounded on
// gridgraph's own validation sentinels and generalized from
// integer-valued land/water cells to wall bitmaps.
var (
	// ErrEmptyGrid indicates the input wall grid has no rows or columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")

	// ErrNonRectangular indicates the input grid's rows differ in length.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrOutOfBounds indicates a coordinate lies outside the field.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)
