package decompose

import "github.com/ajroetker/gomorph/pattern"

// SubtractSegments returns a Minkowski decomposition of the "increment"
// pattern that, summed with a segment of length fromLen along axis, yields a
// segment of length toLen along the same axis (toLen > fromLen >= 1). The
// increment itself is the segment of length toLen-fromLen+1, further split
// by recursive halving so chaining it costs O(log toLen) shifts rather than
// O(toLen) — the same doubling trick as building any segment from scratch
// (minkowskiSegmentDecomposition, unexported below), just applied to the gap
// between two neighboring group lengths instead of to a length from zero.
//
// Using the increment only pays off over decomposing toLen from scratch when
// fromLen*2 <= toLen; Compact (compactor.go) applies it unconditionally for
// simplicity, leaving the crossover as a tuning opportunity rather than a
// correctness concern — see DESIGN.md's Open Question note.
func SubtractSegments(dim, axis, fromLen, toLen int) []*pattern.Pattern {
	if toLen <= fromLen {
		return nil
	}
	return minkowskiSegmentDecomposition(dim, axis, toLen-fromLen+1)
}

// minkowskiSegmentDecomposition decomposes the segment {0,...,length-1} along
// axis into O(log length) summands: segment(a) ⊕ segment(b) == segment(a+b-1),
// so splitting length into half+1 and length-half and recursing on the
// smaller remainder halves the problem each step.
func minkowskiSegmentDecomposition(dim, axis, length int) []*pattern.Pattern {
	if length <= 1 {
		return nil // identity: no increment needed
	}
	if length <= 2 {
		return []*pattern.Pattern{pattern.Segment(dim, axis, length)}
	}
	half := length / 2
	rest := minkowskiSegmentDecomposition(dim, axis, length-half)
	return append([]*pattern.Pattern{pattern.Segment(dim, axis, half+1)}, rest...)
}
