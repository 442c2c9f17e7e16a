package agent_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hwbehrens/dstarlite/agent"
	"github.com/hwbehrens/dstarlite/heuristic"
	"github.com/hwbehrens/dstarlite/mazehost"
	"github.com/hwbehrens/dstarlite/planner"
)

func TestDriver_ReachesGoalOnOpenGrid(t *testing.T) {
	rows := []string{
		"#####",
		"#S..#",
		"#...#",
		"#..G#",
		"#####",
	}
	p, err := mazehost.NewFromASCII(rows, false)
	require.NoError(t, err)
	d, err := agent.NewDriver(p, heuristic.L1)
	require.NoError(t, err)

	visited := d.Run(20)
	require.True(t, d.Done(), "expected the agent to reach the goal within 20 steps, stopped at %v", d.Position())
	require.Equal(t, p.GoalState(), visited[len(visited)-1])
}

func TestDriver_SensesAndDetoursAroundHiddenWall(t *testing.T) {
	// The agent starts believing the corridor is clear; a wall at
	// (2,2) is only discovered once the agent is adjacent to it.
	rows := []string{
		"#####",
		"#..G#",
		"#.#.#",
		"#S..#",
		"#####",
	}
	p, err := mazehost.NewFromASCII(rows, false)
	require.NoError(t, err)
	d, err := agent.NewDriver(p, heuristic.L1)
	require.NoError(t, err)

	visited := d.Run(30)
	require.True(t, d.Done(), "expected the agent to eventually reach the goal around the hidden wall, stopped at %v", d.Position())
	for i := 1; i < len(visited); i++ {
		dx := visited[i].X - visited[i-1].X
		dy := visited[i].Y - visited[i-1].Y
		require.Equalf(t, 1, dx*dx+dy*dy, "expected every step to move one cell, got %v -> %v", visited[i-1], visited[i])
	}
}

func TestDriver_TrivialStartEqualsGoal(t *testing.T) {
	c := planner.Coord{X: 1, Y: 1}
	walls := [][]bool{{false, false, false}, {false, false, false}, {false, false, false}}
	p, err := mazehost.NewStatic(walls, walls, c, c)
	require.NoError(t, err)
	d, err := agent.NewDriver(p, heuristic.L1)
	require.NoError(t, err)
	require.True(t, d.Done(), "expected a driver whose start equals its goal to already be done")
	require.Equal(t, c, d.Step(), "expected Step to stay put once already done")
}
