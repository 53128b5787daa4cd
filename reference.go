package rdp

import (
	"slices"

	"gonum.org/v1/plot/plotter"
)

// SimplifyReference selects the significant samples of samples using the
// classic Ramer–Douglas–Peucker algorithm, measuring vertical instead of
// perpendicular distance. It returns the indices in ascending order, always
// including the first and last one.
//
// A range of samples is split at the sample that deviates the most from the
// chord between the range's endpoints, for as long as that deviation exceeds
// epsilon. If several samples share the maximum deviation, the last one is
// used. Average runtime is O(n log n), the worst case is O(n²).
//
// SimplifyReference exists mainly to validate [Simplify], which produces the
// same result in linear time on well-behaved input.
//
// It returns [ErrInvalidTolerance] if epsilon is negative or NaN and
// [ErrNoSamples] if samples is empty.
func SimplifyReference(samples plotter.XYer, epsilon float64) ([]int, error) {
	if err := checkInput(samples, epsilon); err != nil {
		return nil, err
	}
	n := samples.Len()
	if n == 1 {
		return []int{0}, nil
	}

	type span struct{ start, end int }

	// Spans are processed depth-first, left before right, so that the start
	// of every span that needs no further splitting is emitted in ascending
	// order. This replaces recursion, which can get as deep as n.
	var out []int
	stack := []span{{0, n - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		i, d := farthest(samples, s.start, s.end)
		if d > epsilon {
			stack = append(stack, span{i, s.end}, span{s.start, i})
			continue
		}
		out = append(out, s.start)
	}
	out = append(out, n-1)
	// The last span ends at n-1 but never starts there; drop a trailing
	// duplicate all the same.
	return slices.Compact(out), nil
}

// farthest returns the index and deviation of the sample in (start, end) that
// deviates the most from the chord between start and end. Later samples win
// ties. If there are no samples between start and end, it returns (start, 0).
func farthest(samples plotter.XYer, start, end int) (int, float64) {
	chord := Line{at(samples, start), at(samples, end)}
	iMax := start
	dMax := 0.0
	for i := start + 1; i < end; i++ {
		if d := chord.Deviation(at(samples, i)); d >= dMax {
			iMax = i
			dMax = d
		}
	}
	return iMax, dMax
}
