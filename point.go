package rdp

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
)

// Point is a single sample of a function-like curve.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Points is a sample sequence backed by a slice. It implements
// [plotter.XYer].
type Points []Point

var _ plotter.XYer = Points(nil)

func (pts Points) Len() int { return len(pts) }

func (pts Points) XY(i int) (float64, float64) {
	return pts[i].X, pts[i].Y
}

// at returns the i-th sample of samples as a Point.
func at(samples plotter.XYer, i int) Point {
	x, y := samples.XY(i)
	return Point{X: x, Y: y}
}
