package planner

import "fmt"

// Coord is an integer grid coordinate. Equality and hashing are
// structural, so Coord is usable directly as a map key.
type Coord struct {
	X, Y int
}

// String renders the coordinate as "(x, y)", matching the notation
// used throughout the design documents.
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Direction enumerates the four cardinal neighbour offsets in the
// fixed order North, East, South, West. This order is load-bearing:
// it is what makes tie-breaking in path reconstruction deterministic.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// offsets holds the (dx, dy) step for each Direction, indexed by
// Direction. North increases Y, matching the grid convention of this
// module (see grid.CostField).
var offsets = [4][2]int{
	North: {0, 1},
	East:  {1, 0},
	South: {0, -1},
	West:  {-1, 0},
}

// Step returns the coordinate obtained by moving one cell from c in
// direction d.
func (c Coord) Step(d Direction) Coord {
	o := offsets[d]
	return Coord{X: c.X + o[0], Y: c.Y + o[1]}
}

// Neighbors4 returns the four cardinal neighbours of c in fixed
// N, E, S, W order, without any bounds checking. Callers that need
// in-bounds neighbours should use grid.CostField.Neighbors instead.
func (c Coord) Neighbors4() [4]Coord {
	return [4]Coord{
		c.Step(North),
		c.Step(East),
		c.Step(South),
		c.Step(West),
	}
}
