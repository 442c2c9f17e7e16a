// Command replan walks a small ASCII maze from S to G using either
// the lpastar or dstarlite engine, discovering walls only as it
// reaches their neighbouring cells, and prints the route it actually
// walked.
//
// This is a demo harness, not a component of the planning algorithms
// themselves: flag parsing and maze loading are out-of-scope external
// collaborators, not planning logic.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/hwbehrens/dstarlite/agent"
	"github.com/hwbehrens/dstarlite/dstarlite"
	"github.com/hwbehrens/dstarlite/heuristic"
	"github.com/hwbehrens/dstarlite/mazehost"
	"github.com/hwbehrens/dstarlite/planner"
)

var defaultMaze = []string{
	"##########",
	"#S.......#",
	"#.######.#",
	"#.#....#.#",
	"#.#.##.#.#",
	"#...#..#.#",
	"#.###.##.#",
	"#.....#..#",
	"#.#####.G#",
	"##########",
}

func main() {
	mazePath := flag.String("maze", "", "path to an ASCII maze file (defaults to a built-in sample)")
	engineName := flag.String("engine", "lpastar", "engine to use: lpastar or dstarlite")
	maxSteps := flag.Int("max-steps", 200, "give up after this many steps")
	flag.Parse()

	rows := defaultMaze
	if *mazePath != "" {
		loaded, err := readMazeFile(*mazePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "replan: %v\n", err)
			os.Exit(1)
		}
		rows = loaded
	}

	problem, err := mazehost.NewFromASCII(rows, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replan: building maze: %v\n", err)
		os.Exit(1)
	}

	var route []planner.Coord
	switch *engineName {
	case "lpastar":
		route, err = runLPAStar(problem, *maxSteps)
	case "dstarlite":
		route, err = runDStarLite(problem, *maxSteps)
	default:
		err = fmt.Errorf("unknown engine %q (want lpastar or dstarlite)", *engineName)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "replan: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("route (%d cells):\n", len(route))
	for _, c := range route {
		fmt.Println(" ", c)
	}
}

func runLPAStar(problem planner.Problem, maxSteps int) ([]planner.Coord, error) {
	d, err := agent.NewDriver(problem, heuristic.L1)
	if err != nil {
		return nil, err
	}
	return d.Run(maxSteps), nil
}

func runDStarLite(problem planner.Problem, maxSteps int) ([]planner.Coord, error) {
	e, err := dstarlite.New(problem, heuristic.L1)
	if err != nil {
		return nil, err
	}
	w, h := problem.Dims()
	for i := 0; i < maxSteps; i++ {
		if e.Start() == problem.GoalState() {
			break
		}
		for _, n := range e.Start().Neighbors4() {
			if n.X < 0 || n.X >= w || n.Y < 0 || n.Y >= h {
				continue
			}
			if problem.IsWall(n) {
				if err := e.MakeWallAt(n); err != nil {
					return nil, err
				}
			}
		}
		before := e.Start()
		if e.TakeStep() == before {
			break
		}
	}
	return e.GetRoute(), nil
}

func readMazeFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		rows = append(rows, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
