package planner

// Problem is the external collaborator that supplies ground truth
// about the grid: its dimensions, the start and goal cells, the
// agent's initial ("naive") belief about which cells are walls, and
// the true wall status of any cell the agent probes. Engines in this
// module only ever read from a Problem; they never mutate it, with
// the sole exception of SetStart, which lets a caller re-evaluate a
// path's cost from a new starting cell after planning.
//
// Problem implementations (the game/maze host, CLI harnesses,
// visualisers) are out of scope for this module; mazehost.Static is a
// minimal concrete implementation used for tests and the cmd/replan
// demo.
type Problem interface {
	// Dims returns the grid's width and height.
	Dims() (width, height int)

	// StartState returns the agent's current start cell.
	StartState() Coord

	// GoalState returns the fixed goal cell.
	GoalState() Coord

	// IsWall reports the ground truth: is c actually a wall? Used by
	// the agent driver for sensing; engines never call this directly.
	IsWall(c Coord) bool

	// NaiveWalls returns the agent's initial belief about which cells
	// are walls, indexed [x][y]. Typically all false except any
	// boundary cells the Problem chooses to mark.
	NaiveWalls() [][]bool

	// SetStart re-entrantly moves the problem's notion of "start",
	// for path-cost evaluation after planning. It does not affect
	// GoalState or wall ground truth.
	SetStart(c Coord)
}
