package rdp

// Corridor is a range of slopes, rooted at an anchor sample, of lines that stay
// within a vertical tolerance of one or more other samples.
//
// For a single candidate the corridor is [(Δy−ε)/Δx, (Δy+ε)/Δx]. Intersecting
// the corridors of several candidates with [Corridor.Narrow] yields the slopes
// that keep all of them within tolerance. Once no such slope exists the
// corridor is [Corridor.Collapsed].
type Corridor struct {
	Top    float64
	Bottom float64
}

// NewCorridor returns the corridor of slopes from anchor through candidate's
// y±epsilon. Anchor and candidate must have distinct x coordinates. It returns
// [ErrInvalidTolerance] if epsilon is negative or NaN.
func NewCorridor(anchor, candidate Point, epsilon float64) (Corridor, error) {
	if err := checkTolerance(epsilon); err != nil {
		return Corridor{}, err
	}
	return corridor(anchor, candidate, epsilon), nil
}

// corridor is NewCorridor without validation of epsilon.
func corridor(anchor, candidate Point, epsilon float64) Corridor {
	dx := candidate.X - anchor.X
	dy := candidate.Y - anchor.Y
	return Corridor{
		Top:    (dy + epsilon) / dx,
		Bottom: (dy - epsilon) / dx,
	}
}

// Narrow returns the intersection of c and o.
func (c Corridor) Narrow(o Corridor) Corridor {
	return Corridor{
		Top:    min(c.Top, o.Top),
		Bottom: max(c.Bottom, o.Bottom),
	}
}

// Collapsed reports whether the corridor is empty. A corridor whose bounds are
// equal still admits exactly one slope and is not collapsed.
func (c Corridor) Collapsed() bool {
	return c.Top < c.Bottom
}

