// Package rdp selects the significant samples of function-like data, reducing
// a sequence of (x, y) samples with strictly increasing x to a subsequence such
// that omitted samples stay within a vertical tolerance of the piecewise-linear
// curve through the retained ones.
//
// # Algorithms
//
// The package provides two variants of the Ramer–Douglas–Peucker algorithm:
//
//   - [Simplify] and [SimplifySeq] run in a single left-to-right pass in O(n)
//     time and constant memory, tracking a narrowing [Corridor] of slopes from
//     the most recently retained sample.
//   - [SimplifyReference] is the classic divide-and-conquer algorithm that
//     splits at the sample farthest from the chord. It takes O(n log n) time on
//     average and O(n²) in the worst case and serves as a reference for the
//     former.
//
// Both measure the vertical distance between a sample and a line, not the
// perpendicular one, which only makes sense for data that has exactly one y per
// x. Closed shapes, curves that double back on themselves, and higher
// dimensions are not supported.
//
// [Method] lets callers choose between the two by value.
//
// # Samples and results
//
// Samples are read through [plotter.XYer], the interface used by gonum's
// plotting package, so [plotter.XYs] and other plot data can be simplified
// directly. [Points] adapts a slice of [Point].
//
// The simplifiers don't validate the samples beyond requiring at least one.
// Repeated or decreasing x coordinates make the output undefined. Use
// [CheckSamples] to verify input of unknown provenance.
//
// Results are ascending lists of indices into the samples. They always contain
// the first and the last index. [Select] copies the retained samples,
// [Reconstruct] builds the simplified curve, and [MaxDeviation] measures how
// far the omitted samples are from it.
//
// # Tolerance
//
// Epsilon is the maximum permitted vertical deviation and must not be negative.
// Negative and NaN tolerances are rejected with [ErrInvalidTolerance] before any
// work is done.
//
// # Literature
//
//   - [An iterative procedure for the polygonal approximation of plane curves] by Urs Ramer
//   - [Algorithms for the reduction of the number of points required to represent a digitized line or its caricature] by David Douglas and Thomas Peucker
//
// [An iterative procedure for the polygonal approximation of plane curves]: https://doi.org/10.1016/S0146-664X(72)80017-0
// [Algorithms for the reduction of the number of points required to represent a digitized line or its caricature]: https://doi.org/10.3138/FM57-6770-U75U-7727
package rdp
