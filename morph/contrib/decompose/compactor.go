package decompose

import (
	"sort"

	"github.com/samber/lo"

	"github.com/ajroetker/gomorph/pattern"
)

// segmentKey groups segment members of a union decomposition by (axis,
// length): members sharing a key differ only in where they sit, so their
// union is just translates of one canonical Main segment (§4.6).
type segmentKey struct {
	axis, length int
}

// Compact is the Union Compactor (C5): given the rows of one union
// decomposition (pattern.Pattern.AllUnionDecompositions' result), groups the
// axis-aligned segments among them by (axis, length) and produces one
// MinkowskiPair per group, plus one degenerate MinkowskiPair (Shifts of
// length 1, zero increments) per non-segment row. Groups are returned sorted
// by (axis, length) so neighboring lengths are adjacent, letting
// IncrementToNext/IncrementFromPrevious (populated by linkNeighbors) chain
// cheaply from one group to the next instead of redoing a full pass.
func Compact(dim int, rows []*pattern.Pattern) []MinkowskiPair {
	type tagged struct {
		row    *pattern.Pattern
		key    segmentKey
		origin pattern.Point
		isSeg  bool
	}

	tags := lo.Map(rows, func(row *pattern.Pattern, _ int) tagged {
		axis, length, origin, ok := row.AsSegment()
		if !ok {
			return tagged{row: row, isSeg: false}
		}
		return tagged{row: row, key: segmentKey{axis: axis, length: length}, origin: origin, isSeg: true}
	})

	segGroups := lo.GroupBy(lo.Filter(tags, func(t tagged, _ int) bool { return t.isSeg }),
		func(t tagged) segmentKey { return t.key })

	keys := lo.Keys(segGroups)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].axis != keys[j].axis {
			return keys[i].axis < keys[j].axis
		}
		return keys[i].length < keys[j].length
	})

	pairs := make([]MinkowskiPair, 0, len(rows))
	for _, k := range keys {
		members := segGroups[k]
		main := pattern.Segment(dim, k.axis, k.length)
		shifts := make([]pattern.Point, len(members))
		for i, m := range members {
			shifts[i] = relativeOrigin(members[0].origin, m.origin)
		}
		pairs = append(pairs, MinkowskiPair{Main: main.Shift(members[0].origin), Shifts: shifts})
	}
	linkNeighbors(dim, pairs, keys)

	for _, t := range tags {
		if !t.isSeg {
			pairs = append(pairs, MinkowskiPair{Main: t.row, Shifts: []pattern.Point{make(pattern.Point, dim)}})
		}
	}
	return pairs
}

// linkNeighbors fills IncrementToNext/IncrementFromPrevious on consecutive
// same-axis pairs in keys (which Compact has already sorted by (axis,
// length)).
func linkNeighbors(dim int, pairs []MinkowskiPair, keys []segmentKey) {
	for i := 0; i+1 < len(keys); i++ {
		if keys[i].axis != keys[i+1].axis {
			continue
		}
		inc := SubtractSegments(dim, keys[i].axis, keys[i].length, keys[i+1].length)
		pairs[i].IncrementToNext = inc
		pairs[i+1].IncrementFromPrevious = inc
	}
}

// relativeOrigin returns b's offset from a, coordinate-wise.
func relativeOrigin(a, b pattern.Point) pattern.Point {
	out := make(pattern.Point, len(a))
	for i := range a {
		out[i] = b[i] - a[i]
	}
	return out
}
