// Command eikonalbench runs a configuration-driven Eikonal solver
// benchmark: it loads a grid.dimsize/problem.start/solvers.<name>-style
// INI configuration, runs every enabled solver benchmark.runs times, and
// writes results_<name>/benchmark.log plus one grid file per run if
// benchmark.savegrid is set. Mirrors original_source/main.cpp's
// flag-driven single-config run.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jvgomez/eikonal/benchmark"
	"github.com/jvgomez/eikonal/grid"
	"github.com/jvgomez/eikonal/reachability"
	"github.com/jvgomez/eikonal/solver"
)

func main() {
	configPath := flag.String("config", "", "path to the benchmark INI configuration file")
	flag.Parse()

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "eikonalbench: -config is required")
		os.Exit(1)
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "eikonalbench:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := benchmark.LoadConfig(configPath)
	if err != nil {
		return err
	}

	g, err := grid.NewGrid(cfg.DimSize, 1.0)
	if err != nil {
		return err
	}

	sources, goal, err := resolveProblem(g, cfg)
	if err != nil {
		return err
	}

	if goal != nil && !reachability.SameComponent(g, sources[0], *goal) {
		_, cost, err := reachability.MinCrossingPath(g, sources, []int{*goal})
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "eikonalbench: warning: start and goal are in disconnected regions (%d obstacle cells would need clearing)\n", cost)
	}

	solvers := make([]solver.Solver, 0, len(cfg.Solvers))
	for _, name := range cfg.Solvers {
		s, err := benchmark.NewSolverByName(name)
		if err != nil {
			return err
		}
		solvers = append(solvers, s)
	}

	h := benchmark.NewHarness(g, solvers, cfg.Runs)
	results, err := h.Run(sources, goal)
	if err != nil {
		return err
	}

	outDir := "results_" + cfg.Name
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	logFile, err := os.Create(filepath.Join(outDir, "benchmark.log"))
	if err != nil {
		return err
	}
	defer logFile.Close()
	if err := benchmark.WriteLog(logFile, results); err != nil {
		return err
	}

	if cfg.SaveGrid {
		for _, r := range results {
			gridFile, err := os.Create(filepath.Join(outDir, fmt.Sprintf("%d.grid", r.RunID)))
			if err != nil {
				return err
			}
			err = benchmark.WriteGridValues(gridFile, g, cfg.Cell)
			gridFile.Close()
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func resolveProblem(g *grid.Grid, cfg *benchmark.Config) (sources []int, goal *int, err error) {
	startIdx, err := g.Coord2Idx(cfg.Start)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Goal == nil {
		return []int{startIdx}, nil, nil
	}
	goalIdx, err := g.Coord2Idx(cfg.Goal)
	if err != nil {
		return nil, nil, err
	}
	return []int{startIdx}, &goalIdx, nil
}
