package baseline

import (
	"context"

	"github.com/hwbehrens/dstarlite/planner"
)

// Result collects a search's output: the shortest path found (nil if
// none), the order in which cells were settled, and how many cells
// were expanded (popped off the frontier and had their neighbours
// examined) — the figure worth comparing against
// lpastar.Engine.PopCount / dstarlite.Engine.PopCount.
type Result struct {
	Path     []planner.Coord
	Order    []planner.Coord
	Expanded int
}

// Options configures a baseline search.
type Options struct {
	Ctx context.Context
}

// Option is a functional option for configuring a baseline search.
type Option func(*Options)

// WithContext sets the context used for cancellation checks during
// the search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

func defaultOptions() Options {
	return Options{Ctx: context.Background()}
}

func buildOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// reconstructPath walks parent links from goal back to start and
// reverses them into a start-to-goal path.
func reconstructPath(parent map[planner.Coord]planner.Coord, start, goal planner.Coord) []planner.Coord {
	if start == goal {
		return []planner.Coord{start}
	}
	if _, ok := parent[goal]; !ok {
		return nil
	}
	path := []planner.Coord{goal}
	cur := goal
	for cur != start {
		p := parent[cur]
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func validate(p planner.Problem) error {
	if p == nil {
		return ErrProblemNil
	}
	if p.IsWall(p.StartState()) {
		return ErrStartIsWall
	}
	return nil
}
