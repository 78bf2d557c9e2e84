// Package decompose implements the pattern-level preprocessing of spec.md's
// union decomposition: the Union Compactor (C5), which groups segments of a
// union decomposition by axis and length and emits MinkowskiPair groups,
// plus minkowskiSubtractSegment (here SubtractSegments). It is deliberately
// self-contained — it only ever touches *pattern.Pattern values, never a
// Matrix or Array — so the planner that actually dilates/erodes (package
// morph, which recurses between the Minkowski and Union-Decomposition
// planners) can depend on it without creating an import cycle.
package decompose

import "github.com/ajroetker/gomorph/pattern"

// MinkowskiPair is a segment group from union decomposition (§3). Main is
// the group's first segment, left at its own position (or the pattern
// itself, for non-segment members); Shifts is the set of translations of
// Main, relative to that first segment, whose union recovers the group's
// contribution; IncrementToNext/IncrementFromPrevious are Minkowski
// decompositions of the difference between this segment and the
// neighboring group of the same axis, when both are segments.
type MinkowskiPair struct {
	Main                  *pattern.Pattern
	Shifts                []pattern.Point
	IncrementToNext       []*pattern.Pattern
	IncrementFromPrevious []*pattern.Pattern
}
