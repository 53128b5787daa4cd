package rdp

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
)

// Method selects a simplification algorithm.
type Method int

const (
	// Funnel is the linear-time algorithm of [Simplify].
	Funnel Method = iota
	// Reference is the divide-and-conquer algorithm of [SimplifyReference].
	Reference
)

// DefaultMethod is the method to use when there's no reason to prefer one.
var DefaultMethod = Funnel

func (m Method) String() string {
	switch m {
	case Funnel:
		return "funnel"
	case Reference:
		return "reference"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Simplify runs the algorithm selected by m.
func (m Method) Simplify(samples plotter.XYer, epsilon float64) ([]int, error) {
	switch m {
	case Funnel:
		return Simplify(samples, epsilon)
	case Reference:
		return SimplifyReference(samples, epsilon)
	default:
		panic(fmt.Sprintf("invalid Method %d", int(m)))
	}
}
