package solver

import (
	"github.com/jvgomez/eikonal/narrowband"
)

// NewUFMM returns an FMMSolver identical in structure to FMMDary/FMMFib
// but backed by the untidy bucket queue, trading exactness for
// near-linear-time approximate solutions (error bounded by Δ·leafsize/F,
// see narrowband.UntidyBucketQueue). numBuckets<=0 or delta<=0 fall back
// to narrowband's defaults.
func NewUFMM(numBuckets int, delta float64) *FMMSolver {
	return &FMMSolver{
		newQueue: func(capacity int) narrowband.Queue {
			return narrowband.NewUntidyBucketQueue(numBuckets, delta)
		},
		variant: "UFMM",
	}
}
