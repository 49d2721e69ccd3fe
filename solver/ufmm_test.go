package solver_test

import (
	"math"
	"testing"

	"github.com/jvgomez/eikonal/narrowband"
	"github.com/jvgomez/eikonal/solver"
)

// Non-positive numBuckets/delta must fall back to
// narrowband.DefaultBuckets/DefaultIncrement rather than produce a
// degenerate (zero-bucket or zero-width) queue: a UFMM(0, 0) solve
// should be bounded by the same Δ·leafsize error as an explicit
// UFMM(narrowband.DefaultBuckets, narrowband.DefaultIncrement) solve,
// and every cell must be reached (finite T, no Inf left behind).
func TestUFMM_DefaultsOnNonPositiveParams(t *testing.T) {
	dims := []int{4, 4}
	leafsize := 1.0
	src := 0

	exactG := uniformGrid(t, dims, leafsize)
	exact := solver.NewFMMDary(2)
	run(t, exact, exactG, []int{src}, nil)

	defaultedG := uniformGrid(t, dims, leafsize)
	defaulted := solver.NewUFMM(0, 0)
	run(t, defaulted, defaultedG, []int{src}, nil)

	bound := narrowband.DefaultIncrement * leafsize
	for i := 0; i < exactG.Size(); i++ {
		got := defaultedG.Cell(i).Value
		if math.IsInf(got, 1) {
			t.Fatalf("cell %d: UFMM(0,0) left T=+Inf, want every cell reached", i)
		}
		want := exactG.Cell(i).Value
		if diff := math.Abs(got - want); diff > bound+1e-6 {
			t.Errorf("cell %d: UFMM(0,0) T=%v, exact T=%v, diff=%v exceeds bound %v", i, got, want, diff, bound)
		}
	}
}

func TestUFMM_ErrorBoundedByDeltaTimesLeafsize(t *testing.T) {
	dims := []int{8, 8}
	leafsize := 1.0
	delta := 2.0
	src := 0

	exactG := uniformGrid(t, dims, leafsize)
	exact := solver.NewFMMDary(2)
	run(t, exact, exactG, []int{src}, nil)

	untidyG := uniformGrid(t, dims, leafsize)
	untidy := solver.NewUFMM(50, delta)
	run(t, untidy, untidyG, []int{src}, nil)

	// The untidy queue trades exactness for an approximate pop order; each
	// cell's T stays within one bucket width (Δ·leafsize) of the exact one.
	bound := delta * leafsize
	for i := 0; i < exactG.Size(); i++ {
		want := exactG.Cell(i).Value
		got := untidyG.Cell(i).Value
		if math.IsInf(want, 1) {
			continue
		}
		if diff := math.Abs(got - want); diff > bound+1e-6 {
			t.Errorf("cell %d: UFMM T=%v, exact T=%v, diff=%v exceeds bound %v", i, got, want, diff, bound)
		}
	}
}
