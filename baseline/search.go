package baseline

import (
	"github.com/hwbehrens/dstarlite/planner"
)

// queueItem is one entry of BFS's FIFO queue. DFS keeps a plain
// []planner.Coord stack instead.
type queueItem struct {
	coord  planner.Coord
	parent planner.Coord
	hasP   bool
}

// BFS explores the grid in increasing number-of-steps order from the
// problem's start cell, matching lpastar/dstarlite's unit-cost
// assumption: since every traversable edge costs exactly 1, BFS's
// first visit to the goal is already a shortest path, same as UCS
// and A* would find.
func BFS(p planner.Problem, opts ...Option) (*Result, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	start, goal := p.StartState(), p.GoalState()
	visited := map[planner.Coord]bool{start: true}
	parent := map[planner.Coord]planner.Coord{}
	queue := []queueItem{{coord: start}}
	res := &Result{Order: []planner.Coord{}}

	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, item.coord)
		res.Expanded++

		if item.coord == goal {
			break
		}
		for _, n := range item.coord.Neighbors4() {
			if !inBounds(p, n) || p.IsWall(n) || visited[n] {
				continue
			}
			visited[n] = true
			parent[n] = item.coord
			queue = append(queue, queueItem{coord: n})
		}
	}

	res.Path = reconstructPath(parent, start, goal)
	return res, nil
}

// DFS explores the grid depth-first from the problem's start cell.
// Unlike BFS it gives no shortest-path guarantee; it exists purely as
// a second, contrasting point of comparison.
func DFS(p planner.Problem, opts ...Option) (*Result, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	start, goal := p.StartState(), p.GoalState()
	visited := map[planner.Coord]bool{}
	parent := map[planner.Coord]planner.Coord{}
	stack := []planner.Coord{start}
	res := &Result{Order: []planner.Coord{}}

	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		res.Order = append(res.Order, cur)
		res.Expanded++

		if cur == goal {
			break
		}
		for _, n := range cur.Neighbors4() {
			if !inBounds(p, n) || p.IsWall(n) || visited[n] {
				continue
			}
			if _, ok := parent[n]; !ok {
				parent[n] = cur
			}
			stack = append(stack, n)
		}
	}

	res.Path = reconstructPath(parent, start, goal)
	return res, nil
}

func inBounds(p planner.Problem, c planner.Coord) bool {
	w, h := p.Dims()
	return c.X >= 0 && c.X < w && c.Y >= 0 && c.Y < h
}
