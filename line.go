package rdp

import "math"

// Line is the chord between two retained samples. Its start and end must have
// distinct x coordinates.
type Line struct {
	P0 Point
	P1 Point
}

// YAt returns the y coordinate of the line, extended to infinity, at x.
func (l Line) YAt(x float64) float64 {
	dx := l.P1.X - l.P0.X
	dy := l.P1.Y - l.P0.Y
	// The multiplication happens before the division so that the result matches
	// the chord test of SimplifyReference bit for bit.
	return l.P0.Y + (x-l.P0.X)*dy/dx
}

// Deviation returns the absolute vertical distance between pt and the line.
func (l Line) Deviation(pt Point) float64 {
	return math.Abs(pt.Y - l.YAt(pt.X))
}
