package rdp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/plot/plotter"
)

// Reconstruction is the piecewise-linear curve through the samples retained by
// a simplification.
type Reconstruction struct {
	pl interp.PiecewiseLinear
	// constant is used instead of pl when only one sample was retained.
	constant *float64
}

// Reconstruct returns the piecewise-linear curve through the samples at
// indices, which must be strictly ascending, start at 0 and end at
// samples.Len()-1, as returned by [Simplify] and [SimplifyReference]. It
// returns [ErrNotIncreasing] if the x coordinates of the selected samples don't
// strictly increase.
func Reconstruct(samples plotter.XYer, indices []int) (*Reconstruction, error) {
	if samples == nil || samples.Len() == 0 {
		return nil, ErrNoSamples
	}
	if err := checkIndices(indices, samples.Len()); err != nil {
		return nil, err
	}
	if len(indices) == 1 {
		_, y := samples.XY(0)
		return &Reconstruction{constant: &y}, nil
	}

	xs := make([]float64, len(indices))
	ys := make([]float64, len(indices))
	for i, idx := range indices {
		xs[i], ys[i] = samples.XY(idx)
		// Fit panics on xs that don't strictly increase.
		if i > 0 && !(xs[i] > xs[i-1]) {
			return nil, fmt.Errorf("%w: x[%d] = %g after %g", ErrNotIncreasing, idx, xs[i], xs[i-1])
		}
	}
	r := &Reconstruction{}
	if err := r.pl.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("rdp: reconstructing: %w", err)
	}
	return r, nil
}

// Predict returns the y coordinate of the reconstruction at x. Outside the
// sampled range it returns the y coordinate of the nearest endpoint.
func (r *Reconstruction) Predict(x float64) float64 {
	if r.constant != nil {
		return *r.constant
	}
	return r.pl.Predict(x)
}

// MaxDeviation returns the largest vertical distance between an omitted sample
// and the reconstruction through the samples at indices, together with the
// omitted sample's index. If no omitted sample deviates at all, it returns
// (0, -1).
func MaxDeviation(samples plotter.XYer, indices []int) (dev float64, idx int, err error) {
	r, err := Reconstruct(samples, indices)
	if err != nil {
		return 0, -1, err
	}
	idx = -1
	next := 0
	for i := range samples.Len() {
		if next < len(indices) && indices[next] == i {
			next++
			continue
		}
		x, y := samples.XY(i)
		if d := math.Abs(y - r.Predict(x)); d > dev {
			dev = d
			idx = i
		}
	}
	return dev, idx, nil
}

// Select returns a copy of the samples at indices. It returns an error if an
// index is out of range or a selected sample isn't finite.
func Select(samples plotter.XYer, indices []int) (plotter.XYs, error) {
	if samples == nil {
		return nil, ErrNoSamples
	}
	n := samples.Len()
	out := make(plotter.XYs, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidIndices, idx, n)
		}
		out[i].X, out[i].Y = samples.XY(idx)
		if err := plotter.CheckFloats(out[i].X, out[i].Y); err != nil {
			return nil, fmt.Errorf("rdp: sample %d: %w", idx, err)
		}
	}
	return out, nil
}
