package grid

import (
	"math"

	"github.com/hwbehrens/dstarlite/planner"
)

// Unchanged is a sentinel value passed to SetCost to mean "leave this
// component as it is". A real g or rhs value is never negative, so
// negative infinity is free to use as the marker, standing in for a
// nullable float64 setter argument.
var Unchanged = math.Inf(-1)

// Inf is the cost assigned to a cell (or an edge into a wall) that
// has not yet been reached, or cannot be reached at all.
var Inf = math.Inf(1)

// CostPair holds the two cost estimates LPA* and D* Lite maintain per
// cell: G, the best cost found so far, and RHS, the one-step
// lookahead cost computed from G's neighbours.
type CostPair struct {
	G, RHS float64
}

// CostField is a rectangular grid of CostPair plus a wall bitmap.
// Both are indexed [x][y]. A freshly constructed field has every
// pair set to (+Inf, +Inf), i.e. "never looked at".
type CostField struct {
	Width, Height int
	costs         [][]CostPair
	walls         [][]bool
}

// New returns a width x height field with no walls and every cell at
// (+Inf, +Inf).
func New(width, height int) *CostField {
	costs := make([][]CostPair, width)
	walls := make([][]bool, width)
	for x := 0; x < width; x++ {
		costs[x] = make([]CostPair, height)
		walls[x] = make([]bool, height)
		for y := 0; y < height; y++ {
			costs[x][y] = CostPair{G: Inf, RHS: Inf}
		}
	}
	return &CostField{Width: width, Height: height, costs: costs, walls: walls}
}

// NewFromWalls builds a field from a [x][y]-indexed wall bitmap,
// deep-copying it so later external mutation of the input can't
// corrupt the field. Returns ErrEmptyGrid or ErrNonRectangular on a
// malformed grid.
func NewFromWalls(walls [][]bool) (*CostField, error) {
	if len(walls) == 0 || len(walls[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w, h := len(walls), len(walls[0])
	for _, col := range walls {
		if len(col) != h {
			return nil, ErrNonRectangular
		}
	}
	f := New(w, h)
	for x := 0; x < w; x++ {
		copy(f.walls[x], walls[x])
	}
	return f, nil
}

// InBounds reports whether c lies within the field.
func (f *CostField) InBounds(c planner.Coord) bool {
	return c.X >= 0 && c.X < f.Width && c.Y >= 0 && c.Y < f.Height
}

// IsWall reports whether c is a wall. Out-of-bounds coordinates are
// treated as walls, so neighbour enumeration at the field's edge
// behaves the same as at an interior wall.
func (f *CostField) IsWall(c planner.Coord) bool {
	if !f.InBounds(c) {
		return true
	}
	return f.walls[c.X][c.Y]
}

// SetWall marks or clears c as a wall. c must be in bounds.
func (f *CostField) SetWall(c planner.Coord, wall bool) error {
	if !f.InBounds(c) {
		return ErrOutOfBounds
	}
	f.walls[c.X][c.Y] = wall
	return nil
}

// Get returns c's current (g, rhs) pair. c must be in bounds.
func (f *CostField) Get(c planner.Coord) CostPair {
	return f.costs[c.X][c.Y]
}

// SetCost updates c's (g, rhs) pair. Pass Unchanged for whichever
// component should be left as-is, so a caller can update g and rhs
// independently without first reading the pair back.
func (f *CostField) SetCost(c planner.Coord, g, rhs float64) {
	cur := f.costs[c.X][c.Y]
	if g != Unchanged {
		cur.G = g
	}
	if rhs != Unchanged {
		cur.RHS = rhs
	}
	f.costs[c.X][c.Y] = cur
}

// EdgeCost returns the cost of the unit-length edge into c: Inf if c
// is a wall or out of bounds, 1 otherwise. Every traversable cell
// costs the same to enter; there is no weighted-terrain concept.
func (f *CostField) EdgeCost(c planner.Coord) float64 {
	if f.IsWall(c) {
		return Inf
	}
	return 1
}

// Neighbors returns c's four cardinal neighbours, in fixed N, E, S, W
// order, restricted to those in bounds. Wall status is not filtered
// here; callers check IsWall or EdgeCost themselves where it matters.
func (f *CostField) Neighbors(c planner.Coord) []planner.Coord {
	all := c.Neighbors4()
	out := make([]planner.Coord, 0, 4)
	for _, n := range all {
		if f.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}
