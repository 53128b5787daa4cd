package rdp

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot/plotter"
)

var (
	// ErrInvalidTolerance is returned when epsilon is negative or NaN.
	ErrInvalidTolerance = errors.New("rdp: tolerance must be a non-negative number")
	// ErrNoSamples is returned for nil or empty sample sequences.
	ErrNoSamples = errors.New("rdp: no samples")
	// ErrInvalidIndices is returned for index lists that don't describe a
	// simplification of the sample sequence.
	ErrInvalidIndices = errors.New("rdp: invalid index list")
	// ErrNotIncreasing is returned by [CheckSamples] when x doesn't strictly
	// increase.
	ErrNotIncreasing = errors.New("rdp: x values must strictly increase")
)

func checkTolerance(epsilon float64) error {
	// Written as a negation so that NaN is rejected, too.
	if !(epsilon >= 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidTolerance, epsilon)
	}
	return nil
}

func checkInput(samples plotter.XYer, epsilon float64) error {
	if err := checkTolerance(epsilon); err != nil {
		return err
	}
	if samples == nil || samples.Len() == 0 {
		return ErrNoSamples
	}
	return nil
}

// checkIndices verifies that indices is strictly ascending, starts at 0 and
// ends at n-1.
func checkIndices(indices []int, n int) error {
	if len(indices) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidIndices)
	}
	if indices[0] != 0 {
		return fmt.Errorf("%w: first index is %d, not 0", ErrInvalidIndices, indices[0])
	}
	if last := indices[len(indices)-1]; last != n-1 {
		return fmt.Errorf("%w: last index is %d, not %d", ErrInvalidIndices, last, n-1)
	}
	for i := 1; i < len(indices); i++ {
		if indices[i] <= indices[i-1] {
			return fmt.Errorf("%w: %d follows %d", ErrInvalidIndices, indices[i], indices[i-1])
		}
	}
	return nil
}
