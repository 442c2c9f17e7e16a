package lpastar

import (
	"math"

	"github.com/hwbehrens/dstarlite/dpq"
	"github.com/hwbehrens/dstarlite/grid"
	"github.com/hwbehrens/dstarlite/heuristic"
	"github.com/hwbehrens/dstarlite/planner"
)

// Engine runs Lifelong Planning A* over a planner.Problem's grid,
// searching from the problem's start state to its goal state.
type Engine struct {
	h     heuristic.Func
	u     *dpq.Queue
	field *grid.CostField

	start, goal planner.Coord

	hasPath  bool
	bestPath []planner.Coord
	lastPath []planner.Coord
	popCount int
}

// New builds an Engine over problem using h as the admissible
// heuristic, and runs the initial full search so ExtractPath and
// GetRoute are immediately usable.
func New(problem planner.Problem, h heuristic.Func) (*Engine, error) {
	field, err := grid.NewFromWalls(problem.NaiveWalls())
	if err != nil {
		return nil, err
	}
	e := &Engine{
		h:     h,
		u:     dpq.New(),
		field: field,
		start: problem.StartState(),
		goal:  problem.GoalState(),
	}

	e.field.SetCost(e.start, grid.Unchanged, 0)
	e.u.Push(e.start, e.computeKeys(e.start))

	e.ComputeShortestPath()
	return e, nil
}

// computeKeys returns coord's priority key: (baseline + h(coord,
// goal), baseline), where baseline is the smaller of g(coord) and
// rhs(coord).
func (e *Engine) computeKeys(coord planner.Coord) dpq.Key {
	pair := e.field.Get(coord)
	baseline := math.Min(pair.G, pair.RHS)
	return dpq.Key{baseline + e.h(coord, e.goal), baseline}
}

// UpdateVertex recomputes coord's rhs from its neighbours' g values
// (unless coord is the start cell) and re-queues it if it is locally
// inconsistent.
func (e *Engine) UpdateVertex(coord planner.Coord) {
	e.updateVertex(coord, e.start)
}

func (e *Engine) updateVertex(coord, exclusion planner.Coord) {
	if coord != exclusion {
		newRHS := grid.Inf
		if !e.field.IsWall(coord) {
			for _, n := range e.field.Neighbors(coord) {
				g := e.field.Get(n).G
				newRHS = math.Min(newRHS, g+1)
			}
		}
		e.field.SetCost(coord, grid.Unchanged, newRHS)
	}

	e.u.DeleteKey(coord)

	pair := e.field.Get(coord)
	if pair.G != pair.RHS {
		e.u.Push(coord, e.computeKeys(coord))
	}
}

// ComputeShortestPath drains the priority queue until the goal is
// locally consistent and no remaining queued key could still improve
// it. It is idempotent: calling it again before any wall is
// discovered is a no-op.
func (e *Engine) ComputeShortestPath() {
	if e.hasPath {
		return
	}

	for {
		goalPair := e.field.Get(e.goal)
		goalKey := e.computeKeys(e.goal)

		continueLoop := goalPair.G != goalPair.RHS
		if !continueLoop {
			if topKey, ok := e.u.TopKey(); ok {
				less, _ := dpq.Less(topKey, goalKey)
				continueLoop = less
			}
		}
		if !continueLoop {
			break
		}

		item, _, err := e.u.Pop()
		if err != nil {
			break
		}
		u := item.(planner.Coord)
		e.popCount++

		pair := e.field.Get(u)
		if pair.G > pair.RHS {
			e.field.SetCost(u, pair.RHS, grid.Unchanged)
		} else {
			e.field.SetCost(u, grid.Inf, grid.Unchanged)
			e.updateVertex(u, e.start)
		}
		for _, s := range e.field.Neighbors(u) {
			e.updateVertex(s, e.start)
		}

		if e.u.Size() == 0 {
			break
		}
	}

	e.hasPath = true
}

// MakeWallAt informs the engine that coord is a wall. It is a no-op
// if coord is already known to be a wall. The shortest path is not
// recomputed until the next call to ComputeShortestPath, ExtractPath,
// or GetRoute.
func (e *Engine) MakeWallAt(coord planner.Coord) {
	if e.field.IsWall(coord) {
		return
	}

	e.hasPath = false
	e.lastPath = e.bestPath
	e.bestPath = nil

	e.field.SetWall(coord, true)
	e.UpdateVertex(coord)
}

// ExtractPath returns the shortest known path. If backward is true,
// the path runs goal-to-start internally and is reversed before
// returning (LPA*'s natural gradient-descent direction); if false, it
// is read start-to-goal directly, the reading suited to a cost field
// rooted at the goal (dstarlite.Engine has its own ExtractPath and
// does not call this). Returns nil if no path exists, including when
// the descent reaches a cell with no neighbour of finite rhs.
func (e *Engine) ExtractPath(backward bool) []planner.Coord {
	if e.start == e.goal {
		return []planner.Coord{e.start}
	}

	e.ComputeShortestPath()
	if e.bestPath != nil {
		return e.bestPath
	}

	var cur, target planner.Coord
	if !backward {
		cur, target = e.start, e.goal
	} else {
		cur, target = e.goal, e.start
	}

	if e.field.Get(cur).G == grid.Inf {
		return nil
	}

	path := []planner.Coord{}
	for cur != target {
		path = append(path, cur)
		best := cur
		bestRHS := math.Inf(1)
		for _, n := range e.field.Neighbors(cur) {
			if rhs := e.field.Get(n).RHS; rhs < bestRHS {
				bestRHS = rhs
				best = n
			}
		}
		if best == cur {
			return nil
		}
		cur = best
	}
	path = append(path, cur)

	if backward {
		reverse(path)
	}
	e.bestPath = path
	return e.bestPath
}

// GetPathIntersectionPoint returns the last coordinate shared by the
// previous path and the freshly recomputed one, scanning both from
// their start. It returns the zero Coord and false if there is no
// previous path to compare against.
func (e *Engine) GetPathIntersectionPoint() (planner.Coord, bool) {
	if e.lastPath == nil || e.bestPath == nil {
		return planner.Coord{}, false
	}

	var pos planner.Coord
	found := false
	n := len(e.bestPath)
	if len(e.lastPath) < n {
		n = len(e.lastPath)
	}
	for i := 0; i < n; i++ {
		if e.bestPath[i] != e.lastPath[i] {
			return pos, found
		}
		pos = e.bestPath[i]
		found = true
	}
	return pos, found
}

// GetBacktrackPath returns the portion of the previous path that must
// be walked backward from its far end to rejoin the freshly
// recomputed path at their intersection point, ending at that
// intersection. GetRoute uses the part of it from the agent's current
// position on. Returns nil if there is nothing to backtrack.
func (e *Engine) GetBacktrackPath() []planner.Coord {
	intersect, ok := e.GetPathIntersectionPoint()
	if !ok {
		return nil
	}

	var backpath []planner.Coord
	for i := len(e.lastPath) - 1; i >= 0; i-- {
		point := e.lastPath[i]
		if point == intersect {
			break
		}
		backpath = append(backpath, point)
	}
	backpath = append(backpath, intersect)
	return backpath
}

// GetRoute returns the route the agent should actually walk from the
// start cell: the previous path up to the agent's current position,
// the walk back along it to the intersection point (if the agent is
// past that point), then the newly recomputed path from there on.
// indexCoord is the agent's current position; when it is omitted the
// agent is taken to be at the start cell and the whole route is
// returned. If indexCoord is given, the returned route is truncated
// to everything after it.
func (e *Engine) GetRoute(indexCoord ...planner.Coord) []planner.Coord {
	path := e.ExtractPath(true)
	current := e.start
	if len(indexCoord) > 0 {
		current = indexCoord[0]
	}

	route := path
	backPath := e.GetBacktrackPath()
	if b := indexOf(backPath, current); b >= 0 {
		intersection := backPath[len(backPath)-1]
		sliceIndex := indexOf(path, intersection)
		prefix := e.lastPath[:indexOf(e.lastPath, current)]
		route = append(append(append([]planner.Coord{}, prefix...), backPath[b:]...), path[sliceIndex+1:]...)
	}

	if len(indexCoord) > 0 {
		if i := indexOf(route, current); i >= 0 {
			route = route[i+1:]
		}
	}
	return route
}

// PopCount returns the number of cells popped from the priority queue
// across the engine's lifetime, for instrumentation and tests.
func (e *Engine) PopCount() int {
	return e.popCount
}

func reverse(path []planner.Coord) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}

func indexOf(path []planner.Coord, c planner.Coord) int {
	for i, p := range path {
		if p == c {
			return i
		}
	}
	return -1
}
