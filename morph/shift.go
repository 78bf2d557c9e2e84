package morph

import "github.com/ajroetker/gomorph/pattern"

// computeShifts is the Shift-Index Computer (C1): it maps a pattern's
// points to cyclic 1-D shift offsets relative to dims, per §4.1.
//
// cyclicToLinear(p, dims) = sum_i (p_i mod dims[i]) * stride[i], mod L,
// where stride[N-1]=1 and stride[i]=stride[i+1]*dims[i+1]. Points with N+1
// coordinates carry a trailing rational "last-coordinate increment"; points
// with exactly N coordinates carry increment 0. Any other coordinate count
// is a DimensionMismatchError.
//
// When symmetric is set, every nonzero shift s is replaced by L-s and every
// increment is negated — the Minkowski-symmetric pattern erosion uses, and
// the leftward-shift convention the in-place kernel (C3) assumes.
func computeShifts(points []pattern.Point, dims []int, symmetric bool) (shifts []int, increments []float64, err error) {
	n := len(dims)
	l := length(dims)
	strideVec := strides(dims)

	shifts = make([]int, len(points))
	increments = make([]float64, len(points))

	for i, p := range points {
		switch len(p) {
		case n:
			// plain integer point
		case n + 1:
			increments[i] = p[n]
		default:
			return nil, nil, &DimensionMismatchError{PatternDims: len(p), MatrixDims: n}
		}

		s := 0
		for axis := 0; axis < n; axis++ {
			c := int(p[axis])
			m := dims[axis]
			if m <= 0 {
				continue
			}
			c = ((c % m) + m) % m
			s += c * strideVec[axis]
		}
		if l > 0 {
			s %= l
		} else {
			s = 0
		}
		if symmetric {
			if s != 0 {
				s = l - s
			}
			increments[i] = -increments[i]
		}
		shifts[i] = s
	}
	return shifts, increments, nil
}
