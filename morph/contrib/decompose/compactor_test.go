package decompose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/gomorph/pattern"
)

func TestCompactGroupsSegmentsByAxisAndLength(t *testing.T) {
	rows := []*pattern.Pattern{
		pattern.Segment(2, 0, 3),
		pattern.Segment(2, 0, 3).Shift(pattern.Point{0, 1}),
		pattern.Segment(2, 0, 5).Shift(pattern.Point{0, 2}),
	}
	pairs := Compact(2, rows)
	require.Len(t, pairs, 2)

	assert.Equal(t, 3, pairs[0].Main.PointCount())
	assert.Len(t, pairs[0].Shifts, 2)
	assert.Equal(t, 5, pairs[1].Main.PointCount())
	assert.Len(t, pairs[1].Shifts, 1)
}

func TestCompactLinksNeighboringLengths(t *testing.T) {
	rows := []*pattern.Pattern{
		pattern.Segment(1, 0, 3),
		pattern.Segment(1, 0, 7),
	}
	pairs := Compact(1, rows)
	require.Len(t, pairs, 2)
	require.NotNil(t, pairs[0].IncrementToNext)
	require.NotNil(t, pairs[1].IncrementFromPrevious)

	// The increment from length 3 to length 7 is segment-decomposable and
	// its own Minkowski sum, composed with a length-3 segment, must recover
	// a length-7 segment: 3 + sum(increment lengths) - (count - 1) == 7.
	total := 3
	for _, inc := range pairs[0].IncrementToNext {
		total += inc.PointCount() - 1
	}
	assert.Equal(t, 7, total)
}

func TestCompactHandlesNonSegmentRows(t *testing.T) {
	rows := []*pattern.Pattern{
		pattern.New([]pattern.Point{{0, 0}, {2, 0}, {4, 1}}), // not contiguous: not a segment
	}
	pairs := Compact(2, rows)
	require.Len(t, pairs, 1)
	assert.Equal(t, 3, pairs[0].Main.PointCount())
	assert.Len(t, pairs[0].Shifts, 1)
}

func TestSubtractSegmentsRecoversTargetLength(t *testing.T) {
	for _, tc := range []struct{ from, to int }{
		{1, 2}, {2, 5}, {3, 16}, {1, 100},
	} {
		inc := SubtractSegments(1, 0, tc.from, tc.to)
		total := tc.from
		for _, p := range inc {
			total += p.PointCount() - 1
		}
		assert.Equal(t, tc.to, total, "from=%d to=%d", tc.from, tc.to)
	}
}

func TestSubtractSegmentsNoOpWhenNotLonger(t *testing.T) {
	assert.Nil(t, SubtractSegments(1, 0, 5, 5))
	assert.Nil(t, SubtractSegments(1, 0, 5, 3))
}
