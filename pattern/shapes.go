package pattern

import "math"

// Segment returns the 1-D pattern {0, 1, ..., length-1} placed along axis in
// a dim-dimensional space, all other coordinates 0. length must be >= 1.
func Segment(dim, axis, length int) *Pattern {
	if length < 1 {
		length = 1
	}
	return axisSegment(dim, axis, length)
}

// Rectangle returns the axis-aligned box pattern {0,...,dims[i]-1} on every
// axis i, i.e. the full Cartesian product of per-axis ranges.
func Rectangle(dims []int) *Pattern {
	axes := make([]int, len(dims))
	ranges := make([]IntRange, len(dims))
	for i, d := range dims {
		axes[i] = i
		if d < 1 {
			d = 1
		}
		ranges[i] = IntRange{Min: 0, Max: d - 1}
	}
	return axisProduct(len(dims), axes, ranges)
}

// Disk returns the 2-D Euclidean disk pattern of the given radius, centered
// at the origin: every integer point (x, y) with x^2+y^2 <= radius^2. This
// is the canonical example spec.md §4.6 cites for the union-of-segments
// decomposition: each row y is a contiguous horizontal run.
func Disk(radius float64) *Pattern {
	var pts []Point
	r := int(math.Ceil(radius))
	for y := -r; y <= r; y++ {
		rem := radius*radius - float64(y*y)
		if rem < 0 {
			continue
		}
		maxX := math.Sqrt(rem)
		xr := int(math.Floor(maxX + 1e-9))
		for x := -xr; x <= xr; x++ {
			pts = append(pts, Point{float64(x), float64(y)})
		}
	}
	return New(pts)
}

// Cross returns the N-dimensional "plus sign" pattern: the origin, plus the
// points at ±1 along each axis (spec.md §8's scenario S6).
func Cross(dim int) *Pattern {
	pts := []Point{make(Point, dim)}
	for axis := 0; axis < dim; axis++ {
		for _, delta := range []float64{-1, 1} {
			pt := make(Point, dim)
			pt[axis] = delta
			pts = append(pts, pt)
		}
	}
	return New(pts)
}
