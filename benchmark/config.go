package benchmark

import (
	"errors"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// KnownSolvers lists every solver name the solvers.<name> configuration
// key recognizes, in the order spec.md §6 enumerates them.
var KnownSolvers = []string{
	"fmm", "fmmfib", "sfmm", "gmm", "fim", "ufmm", "fsm", "lsm", "ddqm",
	"fmmstar", "sfmmstar",
}

// Config is a parsed benchmark configuration file: grid shape, problem
// start/goal, run parameters, and the set of enabled solvers.
type Config struct {
	NDims    int
	Cell     string
	DimSize  []int
	Start    []int
	Goal     []int // nil means no goal configured
	Name     string
	Runs     int
	SaveGrid bool
	Solvers  []string
}

// LoadConfig parses an INI-like configuration file against the key
// schema in spec.md §6, using a flat default section (keys are the
// literal dotted strings, e.g. "grid.ndims", not nested INI sections).
func LoadConfig(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, &ConfigurationError{Path: path, Err: err}
	}
	sec := file.Section("")

	c := &Config{}

	ndims, err := sec.Key("grid.ndims").Int()
	if err != nil {
		return nil, &ConfigurationError{Path: path, Err: err}
	}
	c.NDims = ndims
	c.Cell = sec.Key("grid.cell").MustString("default")

	if c.DimSize, err = parseIntList(sec.Key("grid.dimsize").String()); err != nil {
		return nil, &ConfigurationError{Path: path, Err: err}
	}
	if len(c.DimSize) != c.NDims {
		return nil, &ConfigurationError{Path: path, Err: errors.New("grid.dimsize length does not match grid.ndims")}
	}

	if c.Start, err = parseIntList(sec.Key("problem.start").String()); err != nil {
		return nil, &ConfigurationError{Path: path, Err: err}
	}

	if goalRaw := strings.TrimSpace(sec.Key("problem.goal").String()); goalRaw != "" && goalRaw != "-1" {
		if c.Goal, err = parseIntList(goalRaw); err != nil {
			return nil, &ConfigurationError{Path: path, Err: err}
		}
	}

	c.Name = sec.Key("benchmark.name").MustString("default")
	c.Runs = sec.Key("benchmark.runs").MustInt(1)
	c.SaveGrid = sec.Key("benchmark.savegrid").MustBool(false)

	for _, name := range KnownSolvers {
		if sec.Key("solvers." + name).MustBool(false) {
			c.Solvers = append(c.Solvers, name)
		}
	}
	if len(c.Solvers) == 0 {
		return nil, &ConfigurationError{Path: path, Err: errors.New("no solvers.<name> key is enabled")}
	}

	return c, nil
}

// parseIntList parses a comma-separated list of integers, e.g. the
// grid.dimsize or problem.start values.
func parseIntList(raw string) ([]int, error) {
	fields := strings.Split(raw, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, errors.New("expected a comma-separated integer list, got none")
	}
	return out, nil
}
