package rdp

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// randomSamples returns n samples with irregularly spaced, strictly increasing
// x and y uniformly distributed in [0, 1).
func randomSamples(rng *rand.Rand, n int) Points {
	pts := make(Points, n)
	x := 0.0
	for i := range pts {
		x += 0.1 + rng.Float64()
		pts[i] = Pt(x, rng.Float64())
	}
	return pts
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
