// Package heuristic provides the distance estimates used by LPA* and
// D* Lite's priority keys.
package heuristic

import (
	"math"

	"github.com/hwbehrens/dstarlite/planner"
)

// Func estimates the cost from a to b.
type Func func(a, b planner.Coord) float64

// L1 is the Manhattan distance between a and b.
func L1(a, b planner.Coord) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

// L2 is the Euclidean distance between a and b.
func L2(a, b planner.Coord) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
