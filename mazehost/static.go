package mazehost

import "github.com/hwbehrens/dstarlite/planner"

// Static is a fixed-size planner.Problem backed by two wall grids:
// the ground truth (trueWalls) and the agent's initial belief
// (naiveWalls), which may under-report walls the agent hasn't sensed
// yet. Both are indexed [x][y].
type Static struct {
	width, height int
	trueWalls     [][]bool
	naiveWalls    [][]bool
	start, goal   planner.Coord
}

// NewStatic validates and deep-copies trueWalls and naiveWalls, then
// returns a Static problem with the given start and goal. trueWalls
// and naiveWalls must have identical, non-empty, rectangular
// dimensions. Returns ErrStateOutOfBounds or ErrStateIsWall if start
// or goal is invalid against trueWalls.
func NewStatic(trueWalls, naiveWalls [][]bool, start, goal planner.Coord) (*Static, error) {
	tw, w, h, err := copyGrid(trueWalls)
	if err != nil {
		return nil, err
	}
	nw, nwW, nwH, err := copyGrid(naiveWalls)
	if err != nil {
		return nil, err
	}
	if nwW != w || nwH != h {
		return nil, ErrNonRectangular
	}

	s := &Static{width: w, height: h, trueWalls: tw, naiveWalls: nw, start: start, goal: goal}
	for _, c := range []planner.Coord{start, goal} {
		if !s.inBounds(c) {
			return nil, ErrStateOutOfBounds
		}
		if tw[c.X][c.Y] {
			return nil, ErrStateIsWall
		}
	}
	return s, nil
}

// NewFullyKnown is NewStatic with naiveWalls identical to trueWalls,
// i.e. the agent starts out knowing the whole map (no replanning
// surprises will ever occur).
func NewFullyKnown(trueWalls [][]bool, start, goal planner.Coord) (*Static, error) {
	return NewStatic(trueWalls, trueWalls, start, goal)
}

func copyGrid(grid [][]bool) ([][]bool, int, int, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, 0, 0, ErrEmptyGrid
	}
	w, h := len(grid), len(grid[0])
	out := make([][]bool, w)
	for x := 0; x < w; x++ {
		if len(grid[x]) != h {
			return nil, 0, 0, ErrNonRectangular
		}
		out[x] = make([]bool, h)
		copy(out[x], grid[x])
	}
	return out, w, h, nil
}

func (s *Static) inBounds(c planner.Coord) bool {
	return c.X >= 0 && c.X < s.width && c.Y >= 0 && c.Y < s.height
}

// Dims returns the grid's width and height.
func (s *Static) Dims() (int, int) { return s.width, s.height }

// StartState returns the agent's current start cell.
func (s *Static) StartState() planner.Coord { return s.start }

// GoalState returns the fixed goal cell.
func (s *Static) GoalState() planner.Coord { return s.goal }

// IsWall reports the ground truth at c. Out-of-bounds coordinates
// read as walls.
func (s *Static) IsWall(c planner.Coord) bool {
	if !s.inBounds(c) {
		return true
	}
	return s.trueWalls[c.X][c.Y]
}

// NaiveWalls returns a defensive copy of the agent's initial belief
// about which cells are walls.
func (s *Static) NaiveWalls() [][]bool {
	out := make([][]bool, s.width)
	for x := range out {
		out[x] = make([]bool, s.height)
		copy(out[x], s.naiveWalls[x])
	}
	return out
}

// SetStart re-entrantly moves the problem's notion of "start".
func (s *Static) SetStart(c planner.Coord) { s.start = c }
