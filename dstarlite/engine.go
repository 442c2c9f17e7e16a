package dstarlite

import (
	"math"

	"github.com/hwbehrens/dstarlite/dpq"
	"github.com/hwbehrens/dstarlite/grid"
	"github.com/hwbehrens/dstarlite/heuristic"
	"github.com/hwbehrens/dstarlite/planner"
)

// Engine runs D* Lite over a planner.Problem's grid, searching
// backward from the goal so the agent can move one step at a time
// and fold newly discovered walls in without a full re-search.
type Engine struct {
	h     heuristic.Func
	u     *dpq.Queue
	field *grid.CostField

	start, last, goal planner.Coord
	kM                float64

	path         []planner.Coord // cells walked so far, oldest first
	changedEdges []planner.Coord
	popCount     int
}

// New builds an Engine over problem using h as the admissible
// heuristic, and runs the initial full search so TakeStep and
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
		last:  problem.StartState(),
		goal:  problem.GoalState(),
	}

	e.field.SetCost(e.goal, grid.Unchanged, 0)
	e.u.Push(e.goal, e.computeKeys(e.goal))
	e.ComputeShortestPath()
	return e, nil
}

// computeKeys returns coord's priority key, measured against the
// agent's current start rather than the goal (the search runs
// backward), offset by the accumulated k_m so previously queued keys
// don't need to be recomputed every time the agent moves.
func (e *Engine) computeKeys(coord planner.Coord) dpq.Key {
	hCost := e.h(e.start, coord)
	pair := e.field.Get(coord)
	secondary := math.Min(pair.G, pair.RHS)
	return dpq.Key{secondary + hCost + e.kM, secondary}
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

// ComputeShortestPath drains the priority queue until the start cell
// is locally consistent and no remaining queued key could still beat
// it. Unlike lpastar.Engine.ComputeShortestPath, it is not memoized:
// D* Lite's queue is rarely fully empty between replans, so every
// call does meaningful work.
func (e *Engine) ComputeShortestPath() {
	for {
		startPair := e.field.Get(e.start)
		topKey, ok := e.u.TopKey()

		queueBeatsStart := false
		if ok {
			if less, _ := dpq.Less(topKey, e.computeKeys(e.start)); less {
				queueBeatsStart = true
			}
		}
		if !queueBeatsStart && startPair.G == startPair.RHS {
			break
		}

		kOld := topKey
		item, _, err := e.u.Pop()
		if err != nil {
			break
		}
		u := item.(planner.Coord)
		e.popCount++

		pair := e.field.Get(u)
		newKey := e.computeKeys(u)
		if less, _ := dpq.Less(kOld, newKey); less {
			e.u.Push(u, newKey)
		} else if pair.G > pair.RHS {
			e.field.SetCost(u, pair.RHS, grid.Unchanged)
			for _, n := range e.field.Neighbors(u) {
				e.updateVertex(n, e.goal)
			}
		} else {
			e.field.SetCost(u, grid.Inf, grid.Unchanged)
			for _, n := range e.field.Neighbors(u) {
				e.updateVertex(n, e.goal)
			}
			e.updateVertex(u, e.goal)
		}
	}
}

// MakeWallAt informs the engine that coord is a wall. coord must be a
// 4-neighbour of the agent's current start cell; D* Lite's k_m
// bookkeeping assumes walls are only ever sensed adjacent to the
// agent, and ErrNonAdjacentWall is returned otherwise. The shortest
// path to the (possibly now-unreachable) goal is recomputed before
// this call returns.
func (e *Engine) MakeWallAt(coord planner.Coord) error {
	adjacent := false
	for _, n := range e.field.Neighbors(e.start) {
		if n == coord {
			adjacent = true
			break
		}
	}
	if !adjacent {
		return planner.ErrNonAdjacentWall
	}

	e.changedEdges = append(e.changedEdges, coord)
	e.field.SetWall(coord, true)
	for _, n := range e.field.Neighbors(coord) {
		e.changedEdges = append(e.changedEdges, n)
	}

	e.kM += e.h(e.last, e.start)
	e.last = e.start
	for _, c := range e.changedEdges {
		e.updateVertex(c, e.goal)
	}
	e.changedEdges = nil

	e.ComputeShortestPath()
	return nil
}

// TakeStep moves the agent one cell toward the goal, greedily
// choosing the in-bounds neighbour with the smallest g, and records
// the cell just left in the walked-path history. It is a no-op,
// returning the current start unchanged, once the agent has reached
// the goal or no path to the goal exists.
func (e *Engine) TakeStep() planner.Coord {
	if e.start == e.goal {
		return e.start
	}
	if e.field.Get(e.start).G == grid.Inf {
		return e.start
	}

	best := e.start
	bestWeight := grid.Inf
	for _, n := range e.field.Neighbors(e.start) {
		weight := 1 + e.field.Get(n).G
		if weight < bestWeight {
			bestWeight = weight
			best = n
		}
	}

	e.path = append(e.path, e.start)
	e.start = best
	return e.start
}

// ExtractPath returns the start-to-goal shortest path by descending
// the rhs gradient from the start cell, without consulting or
// mutating the walked-path history TakeStep maintains. Returns nil if
// no path currently exists, including when the descent reaches a cell
// with no neighbour of finite rhs. This is provided for interface parity
// with lpastar.Engine; GetRoute is the primary way to read back an
// agent's D* Lite route.
func (e *Engine) ExtractPath() []planner.Coord {
	if e.start == e.goal {
		return []planner.Coord{e.start}
	}
	e.ComputeShortestPath()
	if e.field.Get(e.start).G == grid.Inf {
		return nil
	}

	path := []planner.Coord{}
	cur := e.start
	for cur != e.goal {
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
	return path
}

// GetRoute returns the cells walked so far (via TakeStep) followed by
// the agent's current position.
func (e *Engine) GetRoute() []planner.Coord {
	route := make([]planner.Coord, 0, len(e.path)+1)
	route = append(route, e.path...)
	route = append(route, e.start)
	return route
}

// Start returns the agent's current start cell.
func (e *Engine) Start() planner.Coord { return e.start }

// PopCount returns the number of cells popped from the priority queue
// across the engine's lifetime, for instrumentation and tests.
func (e *Engine) PopCount() int { return e.popCount }
