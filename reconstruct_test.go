package rdp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
)

var steps = Points{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0), Pt(4, 10), Pt(5, 10), Pt(6, 10), Pt(7, 10)}

func TestReconstruct(t *testing.T) {
	r, err := Reconstruct(steps, []int{0, 3, 4, 7})
	require.NoError(t, err)
	for _, tt := range []struct{ x, y float64 }{
		{-1, 0},
		{1.5, 0},
		{3, 0},
		{3.5, 5},
		{6, 10},
		{10, 10},
	} {
		if y := r.Predict(tt.x); y != tt.y {
			t.Errorf("Predict(%g) = %g, want %g", tt.x, y, tt.y)
		}
	}

	r, err = Reconstruct(Points{Pt(1, 5)}, []int{0})
	require.NoError(t, err)
	if y := r.Predict(100); y != 5 {
		t.Errorf("got %g, want 5", y)
	}
}

func TestReconstructInvalidIndices(t *testing.T) {
	for _, indices := range [][]int{
		nil,
		{1, 7},
		{0, 6},
		{0, 4, 3, 7},
		{0, 3, 3, 7},
		{0, 8},
	} {
		_, err := Reconstruct(steps, indices)
		require.ErrorIs(t, err, ErrInvalidIndices, "%v", indices)
	}

	_, err := Reconstruct(Points{}, []int{0})
	require.ErrorIs(t, err, ErrNoSamples)
}

func TestReconstructNotIncreasing(t *testing.T) {
	for _, samples := range []Points{
		{Pt(0, 0), Pt(0, 1)},
		{Pt(0, 0), Pt(2, 1), Pt(1, 3)},
		{Pt(0, 0), Pt(math.NaN(), 1)},
	} {
		_, err := Reconstruct(samples, allIndices(len(samples)))
		require.ErrorIs(t, err, ErrNotIncreasing, "%v", samples)
		_, _, err = MaxDeviation(samples, allIndices(len(samples)))
		require.ErrorIs(t, err, ErrNotIncreasing, "%v", samples)
	}

	// Only the retained samples are fitted.
	samples := Points{Pt(0, 0), Pt(2, 1), Pt(1, 3), Pt(3, 0)}
	_, err := Reconstruct(samples, []int{0, 3})
	require.NoError(t, err)
}

func TestMaxDeviation(t *testing.T) {
	dev, idx, err := MaxDeviation(steps, []int{0, 3, 4, 7})
	require.NoError(t, err)
	if dev != 0 || idx != -1 {
		t.Errorf("got (%g, %d), want (0, -1)", dev, idx)
	}

	samples := Points{Pt(1, 1), Pt(2, 1), Pt(3, 1), Pt(4, 100)}
	dev, idx, err = MaxDeviation(samples, []int{0, 3})
	require.NoError(t, err)
	if dev != 66 || idx != 2 {
		t.Errorf("got (%g, %d), want (66, 2)", dev, idx)
	}
}

func TestSelect(t *testing.T) {
	samples := Points{Pt(1, 1), Pt(2, 1), Pt(3, 1), Pt(4, 100)}
	got, err := Select(samples, []int{0, 2, 3})
	require.NoError(t, err)
	diff(t, plotter.XYs{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 100}}, got)

	_, err = Select(samples, []int{0, 4})
	require.ErrorIs(t, err, ErrInvalidIndices)

	_, err = Select(Points{Pt(0, math.NaN())}, []int{0})
	require.ErrorIs(t, err, plotter.ErrNaN)
}
