package dstarlite_test

import (
	"testing"

	"github.com/hwbehrens/dstarlite/dstarlite"
	"github.com/hwbehrens/dstarlite/heuristic"
	"github.com/hwbehrens/dstarlite/planner"
)

type testProblem struct {
	width, height int
	walls         [][]bool
	start, goal   planner.Coord
}

func (p *testProblem) Dims() (int, int)          { return p.width, p.height }
func (p *testProblem) StartState() planner.Coord { return p.start }
func (p *testProblem) GoalState() planner.Coord  { return p.goal }
func (p *testProblem) IsWall(c planner.Coord) bool {
	if c.X < 0 || c.X >= p.width || c.Y < 0 || c.Y >= p.height {
		return true
	}
	return p.walls[c.X][c.Y]
}
func (p *testProblem) NaiveWalls() [][]bool {
	out := make([][]bool, p.width)
	for x := range out {
		out[x] = make([]bool, p.height)
		copy(out[x], p.walls[x])
	}
	return out
}
func (p *testProblem) SetStart(c planner.Coord) { p.start = c }

func newOpenGrid(w, h int, start, goal planner.Coord) *testProblem {
	walls := make([][]bool, w)
	for x := range walls {
		walls[x] = make([]bool, h)
	}
	return &testProblem{width: w, height: h, walls: walls, start: start, goal: goal}
}

func TestEngine_TakeStepReachesGoal(t *testing.T) {
	start, goal := planner.Coord{X: 0, Y: 0}, planner.Coord{X: 1, Y: 1}
	p := newOpenGrid(2, 2, start, goal)
	e, err := dstarlite.New(p, heuristic.L1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e.TakeStep()
	e.TakeStep()
	if e.Start() != goal {
		t.Fatalf("expected to reach %v after two steps on a 2x2 grid, got %v", goal, e.Start())
	}
	route := e.GetRoute()
	if route[len(route)-1] != goal {
		t.Fatalf("expected route to end at the goal, got %v", route)
	}
}

func TestEngine_ExtractPathMatchesOpenGridDistance(t *testing.T) {
	start, goal := planner.Coord{X: 0, Y: 0}, planner.Coord{X: 2, Y: 2}
	p := newOpenGrid(3, 3, start, goal)
	e, err := dstarlite.New(p, heuristic.L1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path := e.ExtractPath()
	if len(path) != 5 {
		t.Fatalf("expected a 5-cell path across an open 3x3 grid, got %v", path)
	}
	if path[0] != start || path[len(path)-1] != goal {
		t.Fatalf("expected path from %v to %v, got %v", start, goal, path)
	}
}

func TestEngine_MakeWallAtRejectsNonAdjacent(t *testing.T) {
	start, goal := planner.Coord{X: 0, Y: 0}, planner.Coord{X: 2, Y: 2}
	p := newOpenGrid(3, 3, start, goal)
	e, err := dstarlite.New(p, heuristic.L1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = e.MakeWallAt(planner.Coord{X: 2, Y: 2})
	if err != planner.ErrNonAdjacentWall {
		t.Fatalf("expected ErrNonAdjacentWall for a non-adjacent wall, got %v", err)
	}
}

func TestEngine_MakeWallAtTriggersReplan(t *testing.T) {
	start, goal := planner.Coord{X: 0, Y: 0}, planner.Coord{X: 2, Y: 0}
	p := newOpenGrid(3, 2, start, goal)
	e, err := dstarlite.New(p, heuristic.L1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := e.ExtractPath()

	if err := e.MakeWallAt(planner.Coord{X: 1, Y: 0}); err != nil {
		t.Fatalf("unexpected error making an adjacent wall: %v", err)
	}
	after := e.ExtractPath()

	if after == nil {
		t.Fatalf("expected a path to still exist around the wall")
	}
	if len(after) == len(before) {
		same := true
		for i := range after {
			if after[i] != before[i] {
				same = false
				break
			}
		}
		if same {
			t.Fatalf("expected the route to change after a blocking wall was discovered")
		}
	}
}

func TestEngine_TrivialStartEqualsGoal(t *testing.T) {
	c := planner.Coord{X: 4, Y: 4}
	p := newOpenGrid(10, 10, c, c)
	e, err := dstarlite.New(p, heuristic.L1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path := e.ExtractPath()
	if len(path) != 1 || path[0] != c {
		t.Fatalf("expected a single-cell trivial path, got %v", path)
	}
	if e.TakeStep() != c {
		t.Fatalf("expected TakeStep to stay put when already at the goal")
	}
}

func TestEngine_UnreachableGoalReturnsNil(t *testing.T) {
	start, goal := planner.Coord{X: 0, Y: 0}, planner.Coord{X: 2, Y: 0}
	p := newOpenGrid(3, 1, start, goal)
	e, err := dstarlite.New(p, heuristic.L1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.MakeWallAt(planner.Coord{X: 1, Y: 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path := e.ExtractPath(); path != nil {
		t.Fatalf("expected a nil path once the only route is walled off, got %v", path)
	}
	if e.TakeStep() != start {
		t.Fatalf("expected TakeStep to refuse to move with no path, stayed at %v, got %v", start, e.Start())
	}
}
