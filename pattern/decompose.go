package pattern

import "sort"

// IsActuallyRectangular reports whether the pattern is exactly the integer
// Cartesian product of its per-axis coordinate ranges — an axis-aligned box.
func (p *Pattern) IsActuallyRectangular() bool {
	if len(p.points) == 0 {
		return false
	}
	ranges := make([]IntRange, p.dim)
	expected := 1
	for axis := 0; axis < p.dim; axis++ {
		r := p.RoundedCoordRange(axis)
		ranges[axis] = r
		expected *= r.Max - r.Min + 1
	}
	if expected != len(p.points) {
		return false
	}
	seen := make(map[string]bool, len(p.points))
	for _, pt := range p.points {
		for axis, c := range pt {
			if c != float64(int64(c)) || int(c) < ranges[axis].Min || int(c) > ranges[axis].Max {
				return false
			}
		}
		seen[pointKey(pt)] = true
	}
	return len(seen) == expected
}

// HasMinkowskiDecomposition reports whether MinkowskiDecomposition would
// return more than the trivial one-summand fallback.
func (p *Pattern) HasMinkowskiDecomposition(minPoints int) bool {
	return len(p.MinkowskiDecomposition(minPoints)) > 1
}

// MinkowskiDecomposition returns a list of sub-patterns whose Minkowski sum
// equals p. When p is an axis-aligned box, it decomposes into one segment
// per axis, merging any axes whose segment would have fewer than minPoints
// points into a single combined summand (the product of those small axes),
// so every returned summand has at least minPoints points where possible.
// Non-box patterns, or boxes that don't benefit, fall back to [p] itself —
// always a valid decomposition (§3's invariant).
func (p *Pattern) MinkowskiDecomposition(minPoints int) []*Pattern {
	if !p.IsActuallyRectangular() || p.dim == 0 {
		return []*Pattern{p}
	}

	origin := make([]int, p.dim)
	ranges := make([]IntRange, p.dim)
	for axis := 0; axis < p.dim; axis++ {
		ranges[axis] = p.RoundedCoordRange(axis)
		origin[axis] = ranges[axis].Min
	}

	var summands []*Pattern
	var smallAxes []int
	for axis := 0; axis < p.dim; axis++ {
		length := ranges[axis].Max - ranges[axis].Min + 1
		if length <= 1 {
			continue
		}
		if length < minPoints {
			smallAxes = append(smallAxes, axis)
			continue
		}
		summands = append(summands, axisSegment(p.dim, axis, length))
	}
	if len(smallAxes) > 0 {
		summands = append(summands, axisProduct(p.dim, smallAxes, ranges))
	}
	if len(summands) < 2 {
		return []*Pattern{p}
	}
	// Each summand's origin point is the pattern's own minimum corner; fold
	// that translation into one of the summands so the Minkowski sum
	// reconstructs p exactly rather than a copy centered at the all-zero
	// origin.
	translated := make(Point, p.dim)
	for axis := range translated {
		translated[axis] = float64(origin[axis])
	}
	summands[0] = summands[0].Shift(translated)
	return summands
}

// axisSegment returns the pattern {0, e_axis, 2*e_axis, ..., (length-1)*e_axis}
// in dim dimensions, i.e. a 1-D segment of the given length along axis.
func axisSegment(dim, axis, length int) *Pattern {
	pts := make([]Point, length)
	for i := 0; i < length; i++ {
		pt := make(Point, dim)
		pt[axis] = float64(i)
		pts[i] = pt
	}
	return New(pts)
}

// axisProduct returns the Cartesian product over the given axes' ranges
// (each range shifted to start at 0), all other axes held at 0.
func axisProduct(dim int, axes []int, ranges []IntRange) *Pattern {
	pts := []Point{make(Point, dim)}
	for _, axis := range axes {
		length := ranges[axis].Max - ranges[axis].Min + 1
		next := make([]Point, 0, len(pts)*length)
		for _, base := range pts {
			for i := 0; i < length; i++ {
				pt := append(Point(nil), base...)
				pt[axis] = float64(i)
				next = append(next, pt)
			}
		}
		pts = next
	}
	return New(pts)
}

// AllUnionDecompositions returns one or more alternative lists of patterns
// whose set-union equals p. The implementation here produces exactly one
// candidate list: p sliced along its widest axis into maximal same-position
// "rows" (points that share every other coordinate). When a row's points
// form a contiguous integer run, the row becomes a genuine Segment — the
// shape the Union Compactor (C5) is built to exploit — otherwise the row is
// returned as an isolated point-set pattern. Decompositions with fewer than
// two rows are not useful to the planner and are omitted; callers still get
// the one-element [p] fallback implicitly via the planner's naive branch.
func (p *Pattern) AllUnionDecompositions(minPoints int) [][]*Pattern {
	if p.dim == 0 || len(p.points) == 0 {
		return nil
	}
	axis := p.widestAxis()
	groups := p.groupByOtherAxes(axis)

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var rows []*Pattern
	for _, k := range keys {
		rows = append(rows, rowPattern(groups[k], axis, p.dim))
	}
	if len(rows) < 2 {
		return nil
	}
	_ = minPoints // minPoints informs the planner's grouping choices, not row construction itself
	return [][]*Pattern{rows}
}

// widestAxis returns the axis with the largest coordinate range, the axis
// the union decomposition slices rows along (ties broken toward axis 0).
func (p *Pattern) widestAxis() int {
	best, bestSpan := 0, -1.0
	for axis := 0; axis < p.dim; axis++ {
		span := p.CoordMax(axis) - p.CoordMin(axis)
		if span > bestSpan {
			best, bestSpan = axis, span
		}
	}
	return best
}

// groupByOtherAxes buckets points by their coordinates on every axis except
// the given one.
func (p *Pattern) groupByOtherAxes(axis int) map[string][]Point {
	groups := make(map[string][]Point)
	for _, pt := range p.points {
		key := make(Point, 0, p.dim-1)
		for j, c := range pt {
			if j != axis {
				key = append(key, c)
			}
		}
		k := pointKey(key)
		groups[k] = append(groups[k], pt)
	}
	return groups
}

// rowPattern builds the pattern for one row: if the row's coordinates on
// axis form a contiguous integer run, returns that axis-aligned segment
// (translated to the row's actual position); otherwise returns the raw
// point set.
func rowPattern(pts []Point, axis, dim int) *Pattern {
	sorted := append([]Point(nil), pts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i][axis] < sorted[j][axis] })

	contiguous := true
	for i := 1; i < len(sorted); i++ {
		c := sorted[i][axis]
		if c != float64(int64(c)) || c != sorted[i-1][axis]+1 {
			contiguous = false
			break
		}
	}
	first := sorted[0][axis]
	if first != float64(int64(first)) {
		contiguous = false
	}
	if !contiguous {
		return New(sorted)
	}
	seg := axisSegment(dim, axis, len(sorted))
	origin := append(Point(nil), sorted[0]...)
	origin[axis] = sorted[0][axis]
	return seg.Shift(origin)
}
