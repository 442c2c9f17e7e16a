package mazehost

import (
	"errors"

	"github.com/hwbehrens/dstarlite/planner"
)

// ErrNoStart and ErrNoGoal are returned by ParseASCII when the input
// is missing the single required 'S' or 'G' marker.
var (
	ErrNoStart      = errors.New("mazehost: no 'S' start marker found")
	ErrNoGoal       = errors.New("mazehost: no 'G' goal marker found")
	ErrMultipleMark = errors.New("mazehost: more than one 'S' or 'G' marker found")
)

// ParseASCII reads a maze from top-to-bottom text rows, one rune per
// cell: '#' is a wall, 'S' the single start cell, 'G' the single
// goal cell, anything else an open cell. The first row of the input
// becomes the northernmost (highest-Y) row, matching planner.Coord's
// convention that North increases Y.
func ParseASCII(rows []string) (walls [][]bool, start, goal planner.Coord, err error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, planner.Coord{}, planner.Coord{}, ErrEmptyGrid
	}
	h := len(rows)
	w := len([]rune(rows[0]))
	for _, r := range rows {
		if len([]rune(r)) != w {
			return nil, planner.Coord{}, planner.Coord{}, ErrNonRectangular
		}
	}

	walls = make([][]bool, w)
	for x := range walls {
		walls[x] = make([]bool, h)
	}

	haveStart, haveGoal := false, false
	for i, row := range rows {
		y := h - 1 - i
		for x, ch := range []rune(row) {
			switch ch {
			case '#':
				walls[x][y] = true
			case 'S':
				if haveStart {
					return nil, planner.Coord{}, planner.Coord{}, ErrMultipleMark
				}
				start = planner.Coord{X: x, Y: y}
				haveStart = true
			case 'G':
				if haveGoal {
					return nil, planner.Coord{}, planner.Coord{}, ErrMultipleMark
				}
				goal = planner.Coord{X: x, Y: y}
				haveGoal = true
			}
		}
	}
	if !haveStart {
		return nil, planner.Coord{}, planner.Coord{}, ErrNoStart
	}
	if !haveGoal {
		return nil, planner.Coord{}, planner.Coord{}, ErrNoGoal
	}
	return walls, start, goal, nil
}

// NewFromASCII parses rows with ParseASCII and builds a Static
// problem from the result. If fullyKnown is false, the agent starts
// with no knowledge of any interior wall (NaiveWalls is all-false),
// matching the "unknown terrain" framing the algorithms are designed
// for; if true, the agent starts out knowing the whole map.
func NewFromASCII(rows []string, fullyKnown bool) (*Static, error) {
	trueWalls, start, goal, err := ParseASCII(rows)
	if err != nil {
		return nil, err
	}
	if fullyKnown {
		return NewFullyKnown(trueWalls, start, goal)
	}
	naiveWalls := make([][]bool, len(trueWalls))
	for x := range naiveWalls {
		naiveWalls[x] = make([]bool, len(trueWalls[x]))
	}
	return NewStatic(trueWalls, naiveWalls, start, goal)
}
