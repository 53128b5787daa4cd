package rdp

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/plotter"
)

// CheckSamples reports whether samples satisfy the precondition of the
// simplifiers: at least one sample, only finite values, and strictly
// increasing x. The simplifiers themselves don't call it; violating the
// precondition makes their output undefined, not an error.
func CheckSamples(samples plotter.XYer) error {
	if samples == nil || samples.Len() == 0 {
		return ErrNoSamples
	}
	prev := math.Inf(-1)
	for i := range samples.Len() {
		x, y := samples.XY(i)
		if err := plotter.CheckFloats(x, y); err != nil {
			return fmt.Errorf("rdp: sample %d: %w", i, err)
		}
		if x <= prev {
			return fmt.Errorf("%w: x[%d] = %g after %g", ErrNotIncreasing, i, x, prev)
		}
		prev = x
	}
	return nil
}
