package fm2

import (
	"math"
	"time"

	"github.com/jvgomez/eikonal/grid"
	"github.com/jvgomez/eikonal/solver"
	"gonum.org/v1/gonum/floats"
)

// NewBaseSolver constructs a fresh, unconfigured solver.Solver instance.
// FM2Solver calls one of these per wave, since a solver cannot be rerun
// against a different source set without losing its internal narrow-band
// state.
type NewBaseSolver func() solver.Solver

// FM2Solver runs Fast Marching Square: a velocity wave from every
// obstacle cell, normalized into a safety-weighted speed field, followed
// by a time wave from the goal terminating at the start. See
// original_source/fm2/fm2.hpp, whose fmm2_sources_ are exactly the
// "black cell" (obstacle) indices the velocity wave seeds from.
type FM2Solver struct {
	g           *grid.Grid
	newVelocity NewBaseSolver
	newTime     NewBaseSolver
	maxDistance float64 // <=0 disables saturation
	directional *Directional

	start, goal int
	isSetup     bool
	elapsed     time.Duration
}

// New returns an FM2Solver using the same solver variant for both waves.
// maxDistance <= 0 disables velocity saturation.
func New(newBase NewBaseSolver, maxDistance float64) *FM2Solver {
	return NewWithWaves(newBase, newBase, maxDistance)
}

// NewWithWaves returns an FM2Solver with independently chosen solver
// variants for the velocity wave and the time wave (see NewStar, which
// uses this to run FMM* only for the goal-driven time wave).
func NewWithWaves(newVelocity, newTime NewBaseSolver, maxDistance float64) *FM2Solver {
	return &FM2Solver{newVelocity: newVelocity, newTime: newTime, maxDistance: maxDistance}
}

// SetDirectional attaches the optional directional bias described in
// directional.go; pass nil to remove it.
func (f *FM2Solver) SetDirectional(d *Directional) {
	f.directional = d
}

func (f *FM2Solver) SetGrid(g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	f.g = g
	f.isSetup = false
	return nil
}

// SetStartGoal records the start (gradient descent's origin) and goal
// (the time wave's source) cells. Both must be passable.
func (f *FM2Solver) SetStartGoal(start, goal int) error {
	if f.g == nil {
		return ErrNilGrid
	}
	n := f.g.Size()
	if start < 0 || start >= n || goal < 0 || goal >= n {
		return ErrOutOfRange
	}
	if f.g.Cell(start).Impassable() {
		return ErrStartImpassable
	}
	if f.g.Cell(goal).Impassable() {
		return ErrGoalImpassable
	}
	f.start, f.goal = start, goal
	f.isSetup = true
	return nil
}

// Grid returns the attached grid, holding the final time-wave T field
// once Compute has returned.
func (f *FM2Solver) Grid() *grid.Grid { return f.g }

// TimeMS returns the wall-clock duration of the last Compute call, in
// milliseconds, summed across both waves.
func (f *FM2Solver) TimeMS() float64 { return float64(f.elapsed.Microseconds()) / 1000.0 }

// Compute runs both waves in sequence.
func (f *FM2Solver) Compute() error {
	if !f.isSetup {
		return ErrNotSetup
	}
	start := time.Now()
	err := f.run()
	f.elapsed = time.Since(start)
	return err
}

func (f *FM2Solver) run() error {
	if err := f.computeVelocityWave(); err != nil {
		return err
	}
	timeWave := f.newTime()
	if err := timeWave.SetGrid(f.g); err != nil {
		return err
	}
	start := f.start
	if err := timeWave.SetSources([]int{f.goal}, &start); err != nil {
		return err
	}
	if err := timeWave.Setup(); err != nil {
		return err
	}
	return timeWave.Compute()
}

// computeVelocityWave runs the obstacle-seeded first wave and rewrites
// every cell's Velocity in place from the resulting distance field,
// leaving Value/State reset to the clean-equivalent OPEN/+Inf the second
// wave needs.
func (f *FM2Solver) computeVelocityWave() error {
	obstacles := f.g.OccupiedIndices()
	if len(obstacles) == 0 {
		// No obstacles at all: every passable cell is maximally safe: the
		// default velocity of 1 already in place is exactly right, and
		// there is nothing to propagate.
		if f.directional != nil {
			f.directional.apply(f.g, f.start)
		}
		f.g.SetClean()
		return nil
	}

	vw := f.newVelocity()
	if err := vw.SetGrid(f.g); err != nil {
		return err
	}
	if err := vw.SetObstacleSources(obstacles, nil); err != nil {
		return err
	}
	if err := vw.Setup(); err != nil {
		return err
	}
	if err := vw.Compute(); err != nil {
		return err
	}

	n := f.g.Size()
	values := make([]float64, n)
	tmax := f.g.MaxFiniteValue()
	if tmax <= 0 {
		tmax = 1
	}
	for i := 0; i < n; i++ {
		v := f.g.Cell(i).Value
		if math.IsInf(v, 1) {
			v = tmax
		}
		values[i] = v
	}
	// Normalize every distance to a relative velocity in [0,1] via a
	// vectorized scale rather than a per-cell division loop.
	floats.Scale(1/tmax, values)

	// maxVelocity is the normalized-distance threshold beyond which a
	// cell saturates to full speed; below it, velocity is rescaled
	// proportionally toward full speed. See original_source/fm2/fm2.hpp.
	saturate := f.maxDistance > 0
	var maxVelocity float64
	if saturate {
		maxVelocity = f.maxDistance / f.g.LeafSize()
	}
	for i := 0; i < n; i++ {
		c := f.g.Cell(i)
		vel := values[i]
		if saturate {
			if vel < maxVelocity {
				vel /= maxVelocity
			} else {
				vel = 1
			}
		}
		c.Velocity = vel
		c.Value = math.Inf(1)
		c.State = grid.Open
	}

	if f.directional != nil {
		f.directional.apply(f.g, f.start)
	}

	f.g.SetClean()
	return nil
}
