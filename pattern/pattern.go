// Package pattern implements the structuring-element oracle spec.md §3/§6
// treats as an external collaborator: a finite set of integer (or rational,
// N or N+1 dimensional) points, queryable for cardinality, coordinate
// ranges, Minkowski decomposition, and union decomposition.
//
// The decomposition algorithms here are deliberately simple and exact rather
// than exhaustively optimal — spec.md's planner (morph/decompose) only
// requires that MinkowskiDecomposition and AllUnionDecompositions return
// valid decompositions (sum/union reconstructs the original pattern); it
// does not require the minimum possible summand count.
package pattern

import "sort"

// Point is a coordinate tuple in N or N+1 dimensions. The last coordinate of
// an N+1-dimensional point is its "rational" last-coordinate increment, per
// spec.md §4.1; integer patterns never populate it.
type Point []float64

// Pattern is a finite, immutable set of points.
type Pattern struct {
	points []Point
	dim    int
}

// New builds a Pattern from an explicit point list. All points must share
// the same dimension count; duplicate points are deduplicated.
func New(points []Point) *Pattern {
	if len(points) == 0 {
		return &Pattern{}
	}
	dim := len(points[0])
	seen := make(map[string]bool, len(points))
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if len(p) != dim {
			panic("pattern: all points must share the same dimension count")
		}
		key := pointKey(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, append(Point(nil), p...))
	}
	sort.Slice(out, func(i, j int) bool { return lessPoint(out[i], out[j]) })
	return &Pattern{points: out, dim: dim}
}

func pointKey(p Point) string {
	b := make([]byte, 0, len(p)*9)
	for _, c := range p {
		b = append(b, byte(int64(c*1e6)>>56), byte(int64(c*1e6)>>48), byte(int64(c*1e6)>>40),
			byte(int64(c*1e6)>>32), byte(int64(c*1e6)>>24), byte(int64(c*1e6)>>16),
			byte(int64(c*1e6)>>8), byte(int64(c*1e6)), '|')
	}
	return string(b)
}

func lessPoint(a, b Point) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Points returns a copy of the pattern's point set, sorted for determinism.
func (p *Pattern) Points() []Point {
	out := make([]Point, len(p.points))
	for i, pt := range p.points {
		out[i] = append(Point(nil), pt...)
	}
	return out
}

// PointCount returns the pattern's cardinality.
func (p *Pattern) PointCount() int { return len(p.points) }

// DimCount returns the pattern's dimension count (0 for an empty pattern).
func (p *Pattern) DimCount() int { return p.dim }

// IsSurelyInteger reports whether every coordinate of every point is an
// exact integer. Non-integer patterns fall back to the naive algorithm
// (spec.md §1's Non-goals, §4.8 branch 1).
func (p *Pattern) IsSurelyInteger() bool {
	for _, pt := range p.points {
		for _, c := range pt {
			if c != float64(int64(c)) {
				return false
			}
		}
	}
	return true
}

// CoordMin returns the minimum coordinate on the given axis.
func (p *Pattern) CoordMin(axis int) float64 {
	return p.reduceAxis(axis, func(a, b float64) float64 {
		if a < b {
			return a
		}
		return b
	})
}

// CoordMax returns the maximum coordinate on the given axis.
func (p *Pattern) CoordMax(axis int) float64 {
	return p.reduceAxis(axis, func(a, b float64) float64 {
		if a > b {
			return a
		}
		return b
	})
}

func (p *Pattern) reduceAxis(axis int, reduce func(a, b float64) float64) float64 {
	if len(p.points) == 0 {
		return 0
	}
	acc := p.points[0][axis]
	for _, pt := range p.points[1:] {
		acc = reduce(acc, pt[axis])
	}
	return acc
}

// IntRange is an inclusive integer coordinate range.
type IntRange struct{ Min, Max int }

// RoundedCoordRange returns [floor(min), ceil(max)] on the given axis.
func (p *Pattern) RoundedCoordRange(axis int) IntRange {
	return IntRange{
		Min: int(floor(p.CoordMin(axis))),
		Max: int(ceil(p.CoordMax(axis))),
	}
}

func floor(x float64) float64 {
	i := float64(int64(x))
	if x < 0 && i != x {
		return i - 1
	}
	return i
}

func ceil(x float64) float64 {
	i := float64(int64(x))
	if x > 0 && i != x {
		return i + 1
	}
	return i
}

// MaxBound returns the maximum absolute coordinate magnitude on the given
// axis, the slice-wise bound spec.md §3 calls maxBound(i).
func (p *Pattern) MaxBound(axis int) float64 {
	m := 0.0
	for _, pt := range p.points {
		c := pt[axis]
		if c < 0 {
			c = -c
		}
		if c > m {
			m = c
		}
	}
	return m
}

// Shift returns a new pattern translated by delta (delta must have the same
// dimension count as the pattern).
func (p *Pattern) Shift(delta Point) *Pattern {
	out := make([]Point, len(p.points))
	for i, pt := range p.points {
		shifted := make(Point, len(pt))
		for j := range pt {
			shifted[j] = pt[j] + delta[j]
		}
		out[i] = shifted
	}
	return New(out)
}

// ProjectionAlongAxis collapses the pattern onto the hyperplane orthogonal
// to axis, dropping that coordinate from every point (duplicates merged).
func (p *Pattern) ProjectionAlongAxis(axis int) *Pattern {
	out := make([]Point, len(p.points))
	for i, pt := range p.points {
		proj := make(Point, 0, len(pt)-1)
		for j, c := range pt {
			if j != axis {
				proj = append(proj, c)
			}
		}
		out[i] = proj
	}
	return New(out)
}

// Equal reports whether p and other contain exactly the same point set.
func (p *Pattern) Equal(other *Pattern) bool {
	if len(p.points) != len(other.points) {
		return false
	}
	for i := range p.points {
		a, b := p.points[i], other.points[i]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}
