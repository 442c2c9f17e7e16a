package baseline

import (
	"container/heap"

	"github.com/hwbehrens/dstarlite/heuristic"
	"github.com/hwbehrens/dstarlite/planner"
)

// pqItem is one entry in the priority frontier: a coordinate and its
// priority (cost for UCS, cost+heuristic for A*).
type pqItem struct {
	coord    planner.Coord
	priority float64
	index    int
}

// pqHeap implements container/heap.Interface with lazy decrease-key:
// stale entries for an already-settled coordinate are simply skipped
// when popped, rather than removed from the middle of the heap.
type pqHeap []*pqItem

func (h pqHeap) Len() int            { return len(h) }
func (h pqHeap) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h pqHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *pqHeap) Push(x interface{}) { item := x.(*pqItem); item.index = len(*h); *h = append(*h, item) }
func (h *pqHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// UCS runs uniform-cost search from the problem's start cell. Since
// every traversable edge in this domain costs exactly 1, UCS finds
// the same shortest path BFS does; it is included as a comparison
// baseline because it shares the priority-queue machinery with A*.
func UCS(p planner.Problem, opts ...Option) (*Result, error) {
	return priorityBest(p, func(planner.Coord) float64 { return 0 }, opts)
}

// AStar runs A* from the problem's start cell to its goal cell using
// h as the admissible heuristic, expanding cells in order of
// cost-so-far plus estimated cost-to-goal.
func AStar(p planner.Problem, h heuristic.Func, opts ...Option) (*Result, error) {
	goal := p.GoalState()
	return priorityBest(p, func(c planner.Coord) float64 { return h(c, goal) }, opts)
}

func priorityBest(p planner.Problem, h func(planner.Coord) float64, opts []Option) (*Result, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	start, goal := p.StartState(), p.GoalState()
	gCost := map[planner.Coord]float64{start: 0}
	parent := map[planner.Coord]planner.Coord{}
	settled := map[planner.Coord]bool{}
	res := &Result{Order: []planner.Coord{}}

	pq := &pqHeap{}
	heap.Init(pq)
	heap.Push(pq, &pqItem{coord: start, priority: h(start)})

	for pq.Len() > 0 {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		item := heap.Pop(pq).(*pqItem)
		if settled[item.coord] {
			continue
		}
		settled[item.coord] = true
		res.Order = append(res.Order, item.coord)
		res.Expanded++

		if item.coord == goal {
			break
		}

		for _, n := range item.coord.Neighbors4() {
			if !inBounds(p, n) || p.IsWall(n) || settled[n] {
				continue
			}
			candidate := gCost[item.coord] + 1
			if existing, ok := gCost[n]; !ok || candidate < existing {
				gCost[n] = candidate
				parent[n] = item.coord
				heap.Push(pq, &pqItem{coord: n, priority: candidate + h(n)})
			}
		}
	}

	res.Path = reconstructPath(parent, start, goal)
	return res, nil
}
