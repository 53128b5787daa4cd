package rdp

import (
	"iter"
	"slices"

	"gonum.org/v1/plot/plotter"
)

// Simplify selects the significant samples of samples in a single linear pass
// and returns their indices in ascending order. The first and last index are
// always included. The x coordinates of samples must be strictly increasing.
//
// See [SimplifySeq] for a description of the algorithm.
func Simplify(samples plotter.XYer, epsilon float64) ([]int, error) {
	seq, err := SimplifySeq(samples, epsilon)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// SimplifySeq is like [Simplify] but returns an iterator that produces the
// indices as they're found. Input is validated before SimplifySeq returns; the
// iterator itself can't fail. The iterator doesn't remember its position:
// every range over it runs the scan again from the first sample, the same as
// calling SimplifySeq again.
//
// Starting at an anchor, which is initially the first sample, SimplifySeq
// keeps track of the [Corridor] of slopes that keep every sample seen since the
// anchor within epsilon. Each new sample narrows the corridor. When it
// collapses, the previous sample becomes the new anchor and the scan restarts
// from there. This takes O(n) time and constant memory.
//
// It returns [ErrInvalidTolerance] if epsilon is negative or NaN and
// [ErrNoSamples] if samples is empty.
func SimplifySeq(samples plotter.XYer, epsilon float64) (iter.Seq[int], error) {
	if err := checkInput(samples, epsilon); err != nil {
		return nil, err
	}
	return func(yield func(int) bool) {
		funnel(samples, epsilon, yield)
	}, nil
}

func funnel(samples plotter.XYer, epsilon float64, yield func(int) bool) {
	n := samples.Len()
	last := n - 1

	anchor := 0
	for anchor < last {
		// The anchor is always significant.
		if !yield(anchor) {
			return
		}

		p0 := at(samples, anchor)
		// A corridor through two samples is always valid.
		c := corridor(p0, at(samples, anchor+1), epsilon)
		next := -1
		for i := anchor + 2; i < n; i++ {
			c = c.Narrow(corridor(p0, at(samples, i), epsilon))
			if c.Collapsed() {
				// Sample i can't be represented, i-1 was the last one that could.
				next = i - 1
				break
			}
		}
		if next == -1 {
			break
		}
		anchor = next
	}
	yield(last)
}
