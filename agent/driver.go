package agent

import (
	"github.com/hwbehrens/dstarlite/heuristic"
	"github.com/hwbehrens/dstarlite/lpastar"
	"github.com/hwbehrens/dstarlite/planner"
)

// Driver walks a planner.Problem using an lpastar.Engine, sensing the
// four cells adjacent to its current position before every step and
// informing the engine of any newly discovered wall. The engine's
// replanned route is spliced with the path already walked via
// Engine.GetRoute, so a wall discovered mid-walk never strands the
// agent on a now-invalid prefix.
type Driver struct {
	problem planner.Problem
	engine  *lpastar.Engine
	current planner.Coord
	goal    planner.Coord
}

// NewDriver builds a Driver over problem using h as the engine's
// heuristic, starting at the problem's current start cell.
func NewDriver(problem planner.Problem, h heuristic.Func) (*Driver, error) {
	e, err := lpastar.New(problem, h)
	if err != nil {
		return nil, err
	}
	return &Driver{
		problem: problem,
		engine:  e,
		current: problem.StartState(),
		goal:    problem.GoalState(),
	}, nil
}

// Position returns the agent's current cell.
func (d *Driver) Position() planner.Coord { return d.current }

// Done reports whether the agent has reached the goal.
func (d *Driver) Done() bool { return d.current == d.goal }

// Route returns the route the agent would walk from its current
// position if it kept stepping: the backtrack-spliced path with
// everything up to and including the current position removed.
func (d *Driver) Route() []planner.Coord {
	return d.engine.GetRoute(d.current)
}

// sense checks the four cells adjacent to the agent's current
// position against ground truth and informs the engine of any that
// turn out to be walls it didn't already know about. MakeWallAt is a
// no-op for cells already known as walls, so re-sensing a cell costs
// nothing extra.
func (d *Driver) sense() {
	w, h := d.problem.Dims()
	for _, n := range d.current.Neighbors4() {
		if n.X < 0 || n.X >= w || n.Y < 0 || n.Y >= h {
			continue
		}
		if d.problem.IsWall(n) {
			d.engine.MakeWallAt(n)
		}
	}
}

// Step senses for newly discovered walls, then advances the agent one
// cell along the freshly computed route. It is a no-op, returning the
// current position unchanged, once the agent has reached the goal or
// no route to the goal exists.
func (d *Driver) Step() planner.Coord {
	if d.Done() {
		return d.current
	}
	d.sense()

	route := d.Route()
	if len(route) == 0 {
		return d.current
	}
	d.current = route[0]
	return d.current
}

// Run steps the agent until it reaches the goal or maxSteps is
// exhausted, returning every cell visited (including the start cell).
func (d *Driver) Run(maxSteps int) []planner.Coord {
	visited := []planner.Coord{d.current}
	for i := 0; i < maxSteps && !d.Done(); i++ {
		before := d.current
		after := d.Step()
		visited = append(visited, after)
		if after == before {
			break // stuck: no route currently exists
		}
	}
	return visited
}
