package heuristic_test

import (
	"testing"

	"github.com/hwbehrens/dstarlite/heuristic"
	"github.com/hwbehrens/dstarlite/planner"
)

func TestL1(t *testing.T) {
	a := planner.Coord{X: 0, Y: 0}
	b := planner.Coord{X: 3, Y: 4}
	if got := heuristic.L1(a, b); got != 7 {
		t.Fatalf("expected L1 distance 7, got %v", got)
	}
}

func TestL2(t *testing.T) {
	a := planner.Coord{X: 0, Y: 0}
	b := planner.Coord{X: 3, Y: 4}
	if got := heuristic.L2(a, b); got != 5 {
		t.Fatalf("expected L2 distance 5, got %v", got)
	}
}

func TestSymmetric(t *testing.T) {
	a := planner.Coord{X: 2, Y: -1}
	b := planner.Coord{X: -3, Y: 5}
	if heuristic.L1(a, b) != heuristic.L1(b, a) {
		t.Fatalf("expected L1 to be symmetric")
	}
	if heuristic.L2(a, b) != heuristic.L2(b, a) {
		t.Fatalf("expected L2 to be symmetric")
	}
}
